package publicapi

import (
	"github.com/go-logr/logr"

	"github.com/roivaz/curated-mcp/internal/logging"
	"github.com/roivaz/curated-mcp/internal/upstream"
	"github.com/roivaz/curated-mcp/internal/upstream/upstreamtest"
)

func newFetcher(tr *upstreamtest.Transport) *upstream.Client {
	return upstream.New(
		upstream.WithHTTPClient(tr),
		upstream.WithLogger(logging.New(logr.Discard())),
	)
}
