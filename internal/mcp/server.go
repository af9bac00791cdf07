package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/curated-mcp/internal/logging"
)

const (
	serverName    = "curated-mcp"
	serverVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler

	tools     map[string]mcp.Tool
	handlers  map[string]server.ToolHandlerFunc
	resources []Resource
	log       logging.Logger
}

func New(cfg Config) *Server {
	log := cfg.Logger.WithName("mcp")
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
	)

	s := &Server{
		MCP:      mcpServer,
		tools:    map[string]mcp.Tool{},
		handlers: map[string]server.ToolHandlerFunc{},
		log:      log,
	}

	toolDefinitions := ToolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			log.Error(fmt.Errorf("no definition for tool %q", name), "skipping tool")
			continue
		}
		handler := dispatch(tool, adapter, log)
		mcpServer.AddTool(tool, handler)
		s.tools[name] = tool
		s.handlers[name] = handler
	}

	if cfg.Client != nil {
		for _, r := range cfg.Resources {
			mcpServer.AddResource(r.mcpResource(), r.handler(cfg.Client))
			s.resources = append(s.resources, r)
		}
	}

	s.HTTP = server.NewStreamableHTTPServer(mcpServer, cfg.Options...)
	mux := http.NewServeMux()
	mux.Handle(cfg.EndpointPath, s.HTTP)
	s.Handler = mux

	log.Info("mcp server initialised", "tools", len(s.tools), "resources", len(s.resources))
	return s
}

// NewSSE returns an SSE transport for the same MCP server, serving /sse and /message.
// With an empty baseURL clients are sent a relative message endpoint.
func (s *Server) NewSSE(baseURL string) *server.SSEServer {
	var opts []server.SSEOption
	if baseURL != "" {
		opts = append(opts, server.WithBaseURL(baseURL))
	}
	return server.NewSSEServer(s.MCP, opts...)
}

// ServeStdio blocks serving JSON-RPC over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}

// Call runs a tool in-process through the same dispatch path the transports use.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return handler(ctx, req)
}

// Tool returns the registered definition for name.
func (s *Server) Tool(name string) (mcp.Tool, bool) {
	t, ok := s.tools[name]
	return t, ok
}

func (s *Server) ToolNames() []string {
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
