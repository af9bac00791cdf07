package config

const (
	KeyHost         = "host"
	KeyPort         = "port"
	KeyTransport    = "transport"
	KeyEndpointPath = "endpoint_path"
	KeyBaseURL      = "base_url"
	KeyHTTPTimeout  = "http_timeout"
	KeyNASAAPIKey   = "nasa_api_key"
	KeyUserAgent    = "user_agent"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyEnvFile      = "env_file"
)

const (
	TransportStreamableHTTP = "streamable-http"
	TransportSSE            = "sse"
	TransportStdio          = "stdio"
)
