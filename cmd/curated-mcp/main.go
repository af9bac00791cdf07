package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/roivaz/curated-mcp/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:   "curated-mcp",
		Short: "MCP server exposing curated public APIs as tools and resources",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnvFile()
		},
	}

	flags := root.PersistentFlags()
	flags.String(config.KeyHost, "0.0.0.0", "HTTP host")
	flags.Int(config.KeyPort, 8000, "HTTP port")
	flags.String(config.KeyTransport, config.TransportStreamableHTTP, "Transport: streamable-http, sse or stdio")
	flags.String(config.KeyEndpointPath, "/mcp", "Streamable HTTP endpoint path")
	flags.String(config.KeyBaseURL, "", "Public base URL advertised to SSE clients (default: relative)")
	flags.String(config.KeyHTTPTimeout, "20s", "Per-request upstream timeout")
	flags.String(config.KeyNASAAPIKey, "DEMO_KEY", "NASA API key")
	flags.String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error")
	flags.String(config.KeyLogFormat, "console", "Log format: console or json")
	flags.String(config.KeyEnvFile, ".env", "Optional dotenv file")

	root.AddCommand(newServeCmd(), newCatalogCmd(), newCallCmd())

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}
