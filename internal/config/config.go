package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultHTTPTimeout = 20 * time.Second

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = viper.BindEnv(KeyHost, "MCP_HOST", "HOST")
	_ = viper.BindEnv(KeyPort, "MCP_PORT", "PORT")
	_ = viper.BindEnv(KeyTransport, "MCP_TRANSPORT", "TRANSPORT")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

// LoadEnvFile loads the dotenv file named by env_file. A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load(viper.GetString(KeyEnvFile))
}

func setDefaults() {
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyTransport, TransportStreamableHTTP)
	viper.SetDefault(KeyEndpointPath, "/mcp")
	viper.SetDefault(KeyBaseURL, "")
	viper.SetDefault(KeyHTTPTimeout, defaultHTTPTimeout.String())
	viper.SetDefault(KeyNASAAPIKey, "DEMO_KEY")
	viper.SetDefault(KeyUserAgent, "curated-mcp/1.0 (+https://github.com/roivaz/curated-mcp)")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "console")
	viper.SetDefault(KeyEnvFile, ".env")
}

func Host() string         { return viper.GetString(KeyHost) }
func Port() int            { return viper.GetInt(KeyPort) }
func EndpointPath() string { return viper.GetString(KeyEndpointPath) }
func NASAAPIKey() string   { return viper.GetString(KeyNASAAPIKey) }
func UserAgent() string    { return viper.GetString(KeyUserAgent) }
func LogLevel() string     { return viper.GetString(KeyLogLevel) }
func LogFormat() string    { return viper.GetString(KeyLogFormat) }

// BaseURL is the public origin advertised to SSE clients. Empty means relative endpoints.
func BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(viper.GetString(KeyBaseURL)), "/")
}

func Transport() string {
	return strings.ToLower(strings.TrimSpace(viper.GetString(KeyTransport)))
}

// HTTPTimeout returns the per-call ceiling for upstream requests, falling back to
// 20s when unset or unparseable.
func HTTPTimeout() time.Duration {
	d, err := parseDuration(viper.GetString(KeyHTTPTimeout), defaultHTTPTimeout)
	if err != nil || d <= 0 {
		return defaultHTTPTimeout
	}
	return d
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	return time.ParseDuration(trimmed)
}
