// Package publicapi maps keyless public REST APIs onto the structured records in
// package types. Services only fetch and reshape; rendering happens in the tool
// adapters.
package publicapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrNotFound marks an upstream that answered successfully with zero matches.
var ErrNotFound = errors.New("no matches")

// Fetcher is the subset of *upstream.Client the services need.
type Fetcher interface {
	Get(ctx context.Context, rawURL string, header http.Header) ([]byte, error)
	GetJSON(ctx context.Context, rawURL string, header http.Header) (gjson.Result, error)
}

// APIError is a failure the upstream reported in its own payload.
type APIError struct {
	API     string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.API, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func notFound(what, query string) error {
	return fmt.Errorf("%s %q: %w", what, query, ErrNotFound)
}

func withQuery(base string, q url.Values) string {
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// stringsOf collects the string values of arr, skipping blanks.
func stringsOf(arr gjson.Result) []string {
	var out []string
	for _, v := range arr.Array() {
		if s := v.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
