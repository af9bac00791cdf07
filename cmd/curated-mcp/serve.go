package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/curated-mcp/internal/config"
	"github.com/roivaz/curated-mcp/internal/mcp"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Run the MCP server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg := mcp.DefaultConfig()
	srv := mcp.New(cfg)
	log := cfg.Logger.WithName("serve")

	transport := config.Transport()
	if transport == config.TransportStdio {
		log.Info("serving MCP over stdio")
		return srv.ServeStdio()
	}

	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	var handler http.Handler
	switch transport {
	case config.TransportStreamableHTTP:
		handler = srv.Handler
	case config.TransportSSE:
		handler = srv.NewSSE(config.BaseURL())
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("MCP server listening", "addr", addr, "transport", transport, "endpoint", config.EndpointPath())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
