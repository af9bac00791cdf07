package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/curated-mcp/internal/publicapi"
)

const errorMarker = "❌"

func stringArgument(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}

// parseIntArgument accepts JSON numbers, Go ints and numeric strings holding a
// whole number within int32 range. ok is false when the key is absent or null.
func parseIntArgument(args map[string]any, key string) (n int, ok bool, err error) {
	f, ok, err := parseFloatArgument(args, key)
	if !ok || err != nil {
		return 0, ok, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, true, fmt.Errorf("%s must be a whole number", key)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, true, fmt.Errorf("%s must be between %d and %d", key, math.MinInt32, math.MaxInt32)
	}
	return int(f), true, nil
}

func parseFloatArgument(args map[string]any, key string) (float64, bool, error) {
	switch v := args[key].(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, true, fmt.Errorf("%s must be a number", key)
		}
		return f, true, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, true, fmt.Errorf("%s must be a number", key)
		}
		return f, true, nil
	default:
		return 0, true, fmt.Errorf("%s must be a number", key)
	}
}

// limitArgument reads key, defaulting to def and clamping into [lo, hi].
// Fractions round down.
func limitArgument(args map[string]any, key string, def, lo, hi int) int {
	f, ok, err := parseFloatArgument(args, key)
	if !ok || err != nil || math.IsNaN(f) {
		return def
	}
	switch {
	case f < float64(lo):
		return lo
	case f > float64(hi):
		return hi
	default:
		return int(math.Floor(f))
	}
}

func validDate(date string) bool {
	_, err := time.Parse(time.DateOnly, date)
	return err == nil
}

func invalidArgument(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s %s", errorMarker, msg))
}

// failure renders a service error. Zero-match errors become notFound as an
// informational result; everything else is an error result prefixed by action.
func failure(action string, err error, notFound string) *mcp.CallToolResult {
	if errors.Is(err, publicapi.ErrNotFound) && notFound != "" {
		return mcp.NewToolResultText(notFound)
	}
	var apiErr *publicapi.APIError
	if errors.As(err, &apiErr) {
		return mcp.NewToolResultError(fmt.Sprintf("%s %s", errorMarker, apiErr.Error()))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s %s: %v", errorMarker, action, err))
}

// success returns the rendered text with record attached as structured content.
func success(text string, record any) *mcp.CallToolResult {
	res := mcp.NewToolResultText(text)
	res.StructuredContent = record
	return res
}
