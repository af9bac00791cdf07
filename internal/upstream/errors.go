package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable covers network failures, timeouts and non-success statuses.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrMalformed marks a body that could not be decoded as JSON.
	ErrMalformed = errors.New("malformed upstream response")
	// ErrTimeout is wrapped together with ErrUnavailable when the per-call ceiling expires.
	ErrTimeout = errors.New("request timed out")
)

// StatusError reports a non-2xx response. Body holds at most maxErrorBody bytes.
type StatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error { return ErrUnavailable }

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Classify maps err to the short category name used in logs.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}
