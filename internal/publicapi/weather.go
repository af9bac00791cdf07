package publicapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
)

const (
	geocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	forecastURL = "https://api.open-meteo.com/v1/forecast"

	DefaultCity      = "New York"
	DefaultLatitude  = 40.7128
	DefaultLongitude = -74.0060
)

// CurrentWeatherURL is the Open-Meteo current conditions endpoint for a coordinate.
func CurrentWeatherURL(lat, lon float64) string {
	return withQuery(forecastURL, url.Values{
		"latitude":        {formatCoord(lat)},
		"longitude":       {formatCoord(lon)},
		"current_weather": {"true"},
		"timezone":        {"auto"},
	})
}

type WeatherService struct {
	client Fetcher
}

func NewWeatherService(client Fetcher) *WeatherService {
	return &WeatherService{client: client}
}

// Geocode resolves a city name to its best Open-Meteo match.
func (s *WeatherService) Geocode(ctx context.Context, city string) (types.Location, error) {
	res, err := s.client.GetJSON(ctx, withQuery(geocodeURL, url.Values{
		"name":     {city},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}), nil)
	if err != nil {
		return types.Location{}, err
	}
	first := res.Get("results.0")
	if !first.Exists() {
		return types.Location{}, notFound("city", city)
	}
	return types.Location{
		Name:      first.Get("name").String(),
		Country:   first.Get("country").String(),
		Latitude:  first.Get("latitude").Float(),
		Longitude: first.Get("longitude").Float(),
		Timezone:  first.Get("timezone").String(),
	}, nil
}

// CurrentWeather geocodes city and then fetches current conditions. A city with
// no geocoder match returns ErrNotFound without a forecast call.
func (s *WeatherService) CurrentWeather(ctx context.Context, city string) (types.WeatherReport, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = DefaultCity
	}
	loc, err := s.Geocode(ctx, city)
	if err != nil {
		return types.WeatherReport{}, err
	}

	res, err := s.client.GetJSON(ctx, CurrentWeatherURL(loc.Latitude, loc.Longitude), nil)
	if err != nil {
		return types.WeatherReport{}, err
	}
	current := res.Get("current_weather")
	tempC := current.Get("temperature").Float()

	report := types.WeatherReport{
		City:         city,
		Location:     loc,
		TemperatureC: tempC,
		TemperatureF: tempC*9/5 + 32,
		Time:         current.Get("time").String(),
	}
	if v := current.Get("windspeed"); v.Exists() {
		f := v.Float()
		report.WindSpeedKmh = &f
	}
	if v := current.Get("winddirection"); v.Exists() {
		f := v.Float()
		report.WindDirection = &f
	}
	if v := current.Get("weathercode"); v.Exists() {
		code := int(v.Int())
		report.WeatherCode = &code
	}
	return report, nil
}
