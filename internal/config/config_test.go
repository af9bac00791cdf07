package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init(nil)

	assert.Equal(t, "0.0.0.0", Host())
	assert.Equal(t, 8000, Port())
	assert.Equal(t, TransportStreamableHTTP, Transport())
	assert.Equal(t, "/mcp", EndpointPath())
	assert.Empty(t, BaseURL())
	assert.Equal(t, "DEMO_KEY", NASAAPIKey())
	assert.Equal(t, 20*time.Second, HTTPTimeout())
}

func TestEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("MCP_PORT", "9100")
	t.Setenv("MCP_TRANSPORT", " STDIO ")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("BASE_URL", "https://mcp.example.org/ ")
	Init(nil)

	assert.Equal(t, 9100, Port())
	assert.Equal(t, TransportStdio, Transport())
	assert.Equal(t, 5*time.Second, HTTPTimeout())
	assert.Equal(t, "https://mcp.example.org", BaseURL())
}

func TestHTTPTimeoutFallback(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init(nil)

	viper.Set(KeyHTTPTimeout, "soon")
	assert.Equal(t, 20*time.Second, HTTPTimeout())

	viper.Set(KeyHTTPTimeout, "-1s")
	assert.Equal(t, 20*time.Second, HTTPTimeout())
}
