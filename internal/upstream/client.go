// Package upstream is the single outbound HTTP path used by every public API
// adapter. It bounds each call with a fixed timeout, stamps a static User-Agent
// and classifies failures so adapters can render them uniformly.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/roivaz/curated-mcp/internal/logging"
)

const (
	DefaultTimeout   = 20 * time.Second
	DefaultUserAgent = "curated-mcp/1.0"

	maxBody      = 4 << 20
	maxErrorBody = 4 << 10
)

// HTTPClient is satisfied by *http.Client and by test transports.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	http      HTTPClient
	userAgent string
	timeout   time.Duration
	log       logging.Logger
}

type Option func(*Client)

func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) { c.http = h }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(opts ...Option) *Client {
	c := &Client{
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.log.Logr().GetSink() == nil {
		c.log = logging.New(logging.DefaultLogger())
	}
	c.log = c.log.WithName("upstream")
	return c
}

// Timeout returns the per-call ceiling.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Get performs a GET and returns the raw body of a 2xx response.
func (c *Client) Get(ctx context.Context, rawURL string, header http.Header) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", c.userAgent)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = c.annotate(ctx, err)
		c.log.Debug("request failed", "host", req.URL.Host, "elapsed", time.Since(start).String(), "kind", Classify(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Debug("non-success status", "host", req.URL.Host, "status", resp.StatusCode)
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Body: body}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, c.annotate(ctx, fmt.Errorf("read body: %w", err))
	}
	c.log.Debug("request complete", "host", req.URL.Host, "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start).String())
	return body, nil
}

// GetJSON performs a GET and parses the body for optimistic field access.
func (c *Client) GetJSON(ctx context.Context, rawURL string, header http.Header) (gjson.Result, error) {
	body, err := c.Get(ctx, rawURL, header)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: body is not JSON", ErrMalformed)
	}
	return gjson.ParseBytes(body), nil
}

func (c *Client) annotate(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w after %s", ErrUnavailable, ErrTimeout, c.timeout)
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
