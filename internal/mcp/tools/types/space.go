package types

// APOD is NASA's Astronomy Picture of the Day.
type APOD struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	MediaType   string `json:"media_type,omitempty"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
}

type ISSPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

type Astronaut struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

type Astronauts struct {
	Total  int         `json:"total"`
	People []Astronaut `json:"people"`
}
