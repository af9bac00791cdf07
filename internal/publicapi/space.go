package publicapi

import (
	"context"
	"errors"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
	"github.com/roivaz/curated-mcp/internal/textfmt"
	"github.com/roivaz/curated-mcp/internal/upstream"
)

const (
	apodURL      = "https://api.nasa.gov/planetary/apod"
	issNowURL    = "http://api.open-notify.org/iss-now.json"
	astronautURL = "http://api.open-notify.org/astros.json"

	APODExplanationLimit = 400
	MaxAstronauts        = 10
)

// APODURL builds the APOD request for key and an optional YYYY-MM-DD date.
func APODURL(key, date string) string {
	q := url.Values{"api_key": {key}}
	if date != "" {
		q.Set("date", date)
	}
	return withQuery(apodURL, q)
}

// ISSNowURL is the open-notify current position endpoint.
func ISSNowURL() string { return issNowURL }

type SpaceService struct {
	client Fetcher
	apiKey string
}

func NewSpaceService(client Fetcher, nasaAPIKey string) *SpaceService {
	if nasaAPIKey == "" {
		nasaAPIKey = "DEMO_KEY"
	}
	return &SpaceService{client: client, apiKey: nasaAPIKey}
}

// APOD fetches the picture of the day. Errors NASA reports in the body, with or
// without an error status, come back as *APIError.
func (s *SpaceService) APOD(ctx context.Context, date string) (types.APOD, error) {
	res, err := s.client.GetJSON(ctx, APODURL(s.apiKey, date), nil)
	if err != nil {
		var se *upstream.StatusError
		if errors.As(err, &se) {
			if msg := nasaErrorMessage(gjson.ParseBytes(se.Body)); msg != "" {
				return types.APOD{}, &APIError{API: "NASA", Message: msg, Err: err}
			}
		}
		return types.APOD{}, err
	}
	if msg := nasaErrorMessage(res); msg != "" {
		return types.APOD{}, &APIError{API: "NASA", Message: msg}
	}
	return types.APOD{
		Date:        textfmt.Or(res.Get("date").String(), "Today"),
		Title:       textfmt.Or(res.Get("title").String(), "Amazing Space Image"),
		Explanation: textfmt.Truncate(textfmt.Or(res.Get("explanation").String(), "No description available"), APODExplanationLimit),
		MediaType:   res.Get("media_type").String(),
		URL:         textfmt.Or(res.Get("url").String(), "N/A"),
		HDURL:       res.Get("hdurl").String(),
		Copyright:   res.Get("copyright").String(),
	}, nil
}

func nasaErrorMessage(res gjson.Result) string {
	if msg := res.Get("error.message").String(); msg != "" {
		return msg
	}
	if res.Get("error").Exists() {
		return "Unknown error"
	}
	if res.Get("code").Exists() {
		return textfmt.Or(res.Get("msg").String(), "Unknown error")
	}
	return ""
}

func (s *SpaceService) ISSPosition(ctx context.Context) (types.ISSPosition, error) {
	res, err := s.client.GetJSON(ctx, issNowURL, nil)
	if err != nil {
		return types.ISSPosition{}, err
	}
	if msg := res.Get("message").String(); msg != "" && msg != "success" {
		return types.ISSPosition{}, &APIError{API: "Open Notify", Message: msg}
	}
	pos := res.Get("iss_position")
	return types.ISSPosition{
		Latitude:  pos.Get("latitude").Float(),
		Longitude: pos.Get("longitude").Float(),
		Timestamp: res.Get("timestamp").Int(),
	}, nil
}

// Astronauts lists people currently in space, capped at MaxAstronauts entries.
func (s *SpaceService) Astronauts(ctx context.Context) (types.Astronauts, error) {
	res, err := s.client.GetJSON(ctx, astronautURL, nil)
	if err != nil {
		return types.Astronauts{}, err
	}
	people := res.Get("people").Array()
	out := types.Astronauts{Total: int(res.Get("number").Int())}
	if out.Total == 0 {
		out.Total = len(people)
	}
	for _, p := range textfmt.FirstN(people, MaxAstronauts) {
		out.People = append(out.People, types.Astronaut{
			Name:  p.Get("name").String(),
			Craft: textfmt.Or(p.Get("craft").String(), "Unknown"),
		})
	}
	return out, nil
}
