package publicapi

import (
	"context"
	"net/url"
	"time"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
)

const sunriseSunsetURL = "https://api.sunrise-sunset.org/json"

type SunService struct {
	client Fetcher
}

func NewSunService(client Fetcher) *SunService {
	return &SunService{client: client}
}

// SunTimes returns sunrise, sunset and twilight times in UTC for a coordinate.
// An empty date means today.
func (s *SunService) SunTimes(ctx context.Context, lat, lon float64, date string) (types.SunTimes, error) {
	q := url.Values{
		"lat":       {formatCoord(lat)},
		"lng":       {formatCoord(lon)},
		"formatted": {"0"},
	}
	if date != "" {
		q.Set("date", date)
	}
	res, err := s.client.GetJSON(ctx, withQuery(sunriseSunsetURL, q), nil)
	if err != nil {
		return types.SunTimes{}, err
	}
	if status := res.Get("status").String(); status != "OK" {
		return types.SunTimes{}, &APIError{API: "Sunrise-Sunset", Message: orUnknown(status)}
	}
	r := res.Get("results")
	return types.SunTimes{
		Latitude:  lat,
		Longitude: lon,
		Date:      date,
		Sunrise:   r.Get("sunrise").String(),
		Sunset:    r.Get("sunset").String(),
		SolarNoon: r.Get("solar_noon").String(),
		DayLength: (time.Duration(r.Get("day_length").Int()) * time.Second).String(),
		CivilDawn: r.Get("civil_twilight_begin").String(),
		CivilDusk: r.Get("civil_twilight_end").String(),
	}, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown error"
	}
	return s
}
