package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/curated-mcp/internal/mcp/tools/types"
	"github.com/roivaz/curated-mcp/internal/publicapi"
)

type WeatherService interface {
	CurrentWeather(ctx context.Context, city string) (types.WeatherReport, error)
}

type GetWeatherHandler struct {
	Service WeatherService
}

func (h *GetWeatherHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city := stringArgument(req.GetArguments(), "city")
	if city == "" {
		city = publicapi.DefaultCity
	}
	report, err := h.Service.CurrentWeather(ctx, city)
	if err != nil {
		return failure("Error getting weather data", err,
			fmt.Sprintf("%s City '%s' not found. Please check the spelling.", errorMarker, city)), nil
	}
	return success(renderWeather(report), report), nil
}

type SunService interface {
	SunTimes(ctx context.Context, lat, lon float64, date string) (types.SunTimes, error)
}

type GetSunriseSunsetHandler struct {
	Service SunService
}

func (h *GetSunriseSunsetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	lat, ok, err := parseFloatArgument(args, "latitude")
	if err != nil {
		return invalidArgument(err.Error()), nil
	}
	if !ok {
		lat = publicapi.DefaultLatitude
	}
	lon, ok, err := parseFloatArgument(args, "longitude")
	if err != nil {
		return invalidArgument(err.Error()), nil
	}
	if !ok {
		lon = publicapi.DefaultLongitude
	}
	if lat < -90 || lat > 90 {
		return invalidArgument("latitude must be between -90 and 90"), nil
	}
	if lon < -180 || lon > 180 {
		return invalidArgument("longitude must be between -180 and 180"), nil
	}
	date := stringArgument(args, "date")
	if date != "" && date != "today" && !validDate(date) {
		return invalidArgument("date must be in YYYY-MM-DD format"), nil
	}

	times, err := h.Service.SunTimes(ctx, lat, lon, date)
	if err != nil {
		return failure("Error fetching sunrise/sunset times", err, ""), nil
	}
	return success(renderSunTimes(times), times), nil
}
