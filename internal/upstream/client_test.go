package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/curated-mcp/internal/logging"
	"github.com/roivaz/curated-mcp/internal/upstream"
	"github.com/roivaz/curated-mcp/internal/upstream/upstreamtest"
)

func newClient(tr *upstreamtest.Transport, opts ...upstream.Option) *upstream.Client {
	base := []upstream.Option{
		upstream.WithHTTPClient(tr),
		upstream.WithLogger(logging.New(logr.Discard())),
		upstream.WithUserAgent("curated-mcp-test/1.0"),
	}
	return upstream.New(append(base, opts...)...)
}

func TestGetJSONSetsHeadersAndParses(t *testing.T) {
	tr := upstreamtest.New().JSON("example.org/data", `{"name":"value","n":3}`)
	c := newClient(tr)

	res, err := c.GetJSON(context.Background(), "https://example.org/data", nil)
	require.NoError(t, err)
	assert.Equal(t, "value", res.Get("name").String())
	assert.Equal(t, int64(3), res.Get("n").Int())

	req := tr.Last()
	require.NotNil(t, req)
	assert.Equal(t, "curated-mcp-test/1.0", req.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestGetKeepsCallerAccept(t *testing.T) {
	tr := upstreamtest.New().JSON("example.org/plain", `ok`)
	c := newClient(tr)

	_, err := c.Get(context.Background(), "https://example.org/plain", http.Header{"Accept": []string{"text/plain"}})
	require.NoError(t, err)
	assert.Equal(t, "text/plain", tr.Last().Header.Get("Accept"))
}

func TestNonSuccessStatusIsUnavailable(t *testing.T) {
	tr := upstreamtest.New().Handle("example.org/boom", upstreamtest.Response{Status: 500, Body: `{"msg":"down"}`})
	c := newClient(tr)

	_, err := c.GetJSON(context.Background(), "https://example.org/boom", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
	assert.True(t, upstream.IsStatus(err, 500))
	assert.False(t, upstream.IsStatus(err, 404))

	var se *upstream.StatusError
	require.True(t, errors.As(err, &se))
	assert.JSONEq(t, `{"msg":"down"}`, string(se.Body))
	assert.Equal(t, "unavailable", upstream.Classify(err))
}

func TestMalformedBody(t *testing.T) {
	tr := upstreamtest.New().JSON("example.org/html", `<html>nope</html>`)
	c := newClient(tr)

	_, err := c.GetJSON(context.Background(), "https://example.org/html", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrMalformed)
	assert.Equal(t, "malformed", upstream.Classify(err))
}

func TestTimeoutIsBounded(t *testing.T) {
	tr := upstreamtest.New().Handle("example.org/slow", upstreamtest.Response{Delay: 2 * time.Second, Body: `{}`})
	c := newClient(tr, upstream.WithTimeout(20*time.Millisecond))

	start := time.Now()
	_, err := c.GetJSON(context.Background(), "https://example.org/slow", nil)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, err, upstream.ErrTimeout)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
	assert.Equal(t, "timeout", upstream.Classify(err))
}

func TestCallerCancellationReleasesRequest(t *testing.T) {
	tr := upstreamtest.New().Handle("example.org/slow", upstreamtest.Response{Delay: 2 * time.Second, Body: `{}`})
	c := newClient(tr)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := c.Get(ctx, "https://example.org/slow", nil)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}

func TestNetworkError(t *testing.T) {
	tr := upstreamtest.New().Handle("example.org/down", upstreamtest.Response{Err: errors.New("connection refused")})
	c := newClient(tr)

	_, err := c.Get(context.Background(), "https://example.org/down", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}
