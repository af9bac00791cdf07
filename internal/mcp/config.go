package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/curated-mcp/internal/config"
	"github.com/roivaz/curated-mcp/internal/logging"
	"github.com/roivaz/curated-mcp/internal/publicapi"
	"github.com/roivaz/curated-mcp/internal/upstream"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Resources    []Resource
	// Client backs resource reads.
	Client       publicapi.Fetcher
	EndpointPath string
	Options      []server.StreamableHTTPOption
	Logger       logging.Logger
}

// NewConfig wires every tool and resource to client.
func NewConfig(client publicapi.Fetcher, nasaAPIKey, endpointPath string, log logging.Logger) Config {
	if endpointPath == "" {
		endpointPath = "/mcp"
	}
	return Config{
		ToolAdapters: ToolAdapters(NewServices(client, nasaAPIKey)),
		Resources:    DefaultResources(nasaAPIKey),
		Client:       client,
		EndpointPath: endpointPath,
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(endpointPath),
			server.WithStateLess(true),
		},
		Logger: log,
	}
}

// DefaultConfig builds the process configuration from viper.
func DefaultConfig() Config {
	log := logging.New(logging.NewZap(logging.Options{
		Level:  config.LogLevel(),
		Format: config.LogFormat(),
	}))
	client := upstream.New(
		upstream.WithUserAgent(config.UserAgent()),
		upstream.WithTimeout(config.HTTPTimeout()),
		upstream.WithLogger(log),
	)
	return NewConfig(client, config.NASAAPIKey(), config.EndpointPath(), log)
}
