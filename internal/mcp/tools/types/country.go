package types

type Country struct {
	CommonName   string   `json:"common_name"`
	OfficialName string   `json:"official_name"`
	Capital      string   `json:"capital,omitempty"`
	Region       string   `json:"region,omitempty"`
	Subregion    string   `json:"subregion,omitempty"`
	Population   int64    `json:"population"`
	AreaKm2      float64  `json:"area_km2"`
	Languages    []string `json:"languages,omitempty"`
	Currencies   []string `json:"currencies,omitempty"`
	Flag         string   `json:"flag,omitempty"`
	MapsURL      string   `json:"maps_url,omitempty"`
}
