package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/curated-mcp/internal/publicapi"
)

// Resource is a URI whose content is the upstream JSON at URL, re-indented.
type Resource struct {
	URI         string
	Name        string
	Description string
	URL         string
}

func DefaultResources(nasaAPIKey string) []Resource {
	if nasaAPIKey == "" {
		nasaAPIKey = "DEMO_KEY"
	}
	return []Resource{
		{
			URI:         "weather://current",
			Name:        "Current weather",
			Description: "Current weather for New York from Open-Meteo",
			URL:         publicapi.CurrentWeatherURL(publicapi.DefaultLatitude, publicapi.DefaultLongitude),
		},
		{
			URI:         "nasa://apod",
			Name:        "NASA APOD",
			Description: "NASA Astronomy Picture of the Day",
			URL:         publicapi.APODURL(nasaAPIKey, ""),
		},
		{
			URI:         "jokes://random",
			Name:        "Random joke",
			Description: "A random joke from the Official Joke API",
			URL:         publicapi.RandomJokeURL(),
		},
		{
			URI:         "iss://location",
			Name:        "ISS location",
			Description: "Current position of the International Space Station",
			URL:         publicapi.ISSNowURL(),
		},
	}
}

func (r Resource) mcpResource() mcp.Resource {
	return mcp.NewResource(r.URI, r.Name,
		mcp.WithResourceDescription(r.Description),
		mcp.WithMIMEType("application/json"),
	)
}

func (r Resource) handler(client publicapi.Fetcher) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		body, err := client.Get(ctx, r.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", r.URI, err)
		}
		var out bytes.Buffer
		if err := json.Indent(&out, bytes.TrimSpace(body), "", "  "); err != nil {
			return nil, fmt.Errorf("read %s: upstream body is not JSON: %w", r.URI, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      r.URI,
				MIMEType: "application/json",
				Text:     out.String(),
			},
		}, nil
	}
}
