// Package upstreamtest provides an in-memory HTTPClient that serves canned
// responses keyed by host and path and counts every request it sees.
package upstreamtest

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Response is a canned upstream reply. A non-nil Err is returned instead of a response.
type Response struct {
	Status int
	Body   string
	Delay  time.Duration
	Err    error
}

type Transport struct {
	mu       sync.Mutex
	routes   map[string]Response
	fallback *Response
	requests []*http.Request
}

func New() *Transport {
	return &Transport{routes: map[string]Response{}}
}

// JSON registers a 200 response for host+path, e.g. "api.tvmaze.com/search/shows".
func (t *Transport) JSON(hostPath, body string) *Transport {
	return t.Handle(hostPath, Response{Status: http.StatusOK, Body: body})
}

func (t *Transport) Handle(hostPath string, resp Response) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.routes[hostPath] = resp
	return t
}

// Fallback serves resp for every unregistered route instead of a 404.
func (t *Transport) Fallback(resp Response) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fallback = &resp
	return t
}

func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	key := req.URL.Host + req.URL.Path

	t.mu.Lock()
	t.requests = append(t.requests, req)
	resp, ok := t.routes[key]
	if !ok && t.fallback != nil {
		resp, ok = *t.fallback, true
	}
	t.mu.Unlock()

	if !ok {
		resp = Response{Status: http.StatusNotFound, Body: `{"error":"no route"}`}
	}
	if resp.Delay > 0 {
		select {
		case <-time.After(resp.Delay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(resp.Body)),
		Request:    req,
	}, nil
}

// Calls returns the number of requests served.
func (t *Transport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

// CallsTo counts requests whose host+path equals hostPath.
func (t *Transport) CallsTo(hostPath string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, r := range t.requests {
		if r.URL.Host+r.URL.Path == hostPath {
			n++
		}
	}
	return n
}

// Last returns the most recent request, or nil.
func (t *Transport) Last() *http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

// Requests returns a copy of every request served so far.
func (t *Transport) Requests() []*http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*http.Request(nil), t.requests...)
}
