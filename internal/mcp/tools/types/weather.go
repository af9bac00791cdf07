package types

// Location is a geocoder match.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

type WeatherReport struct {
	City          string   `json:"city"`
	Location      Location `json:"location"`
	TemperatureC  float64  `json:"temperature_c"`
	TemperatureF  float64  `json:"temperature_f"`
	WindSpeedKmh  *float64 `json:"wind_speed_kmh,omitempty"`
	WindDirection *float64 `json:"wind_direction_deg,omitempty"`
	WeatherCode   *int     `json:"weather_code,omitempty"`
	Time          string   `json:"time,omitempty"`
}

type SunTimes struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date,omitempty"`
	Sunrise   string  `json:"sunrise"`
	Sunset    string  `json:"sunset"`
	SolarNoon string  `json:"solar_noon"`
	DayLength string  `json:"day_length"`
	CivilDawn string  `json:"civil_twilight_begin,omitempty"`
	CivilDusk string  `json:"civil_twilight_end,omitempty"`
}
