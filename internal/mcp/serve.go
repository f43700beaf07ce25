package mcp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/moolen/crewline/internal/agent/tools"
	"github.com/moolen/crewline/internal/bootstrap"
)

// ServeOptions configures Serve.
type ServeOptions struct {
	// Registry is the tool registry to expose.
	Registry *tools.Registry

	// Version is reported to MCP clients.
	Version string

	// MetricsAddr enables the Prometheus /metrics listener when non-empty.
	MetricsAddr string
}

// Serve runs the MCP stdio transport and, if configured, the metrics
// listener. It blocks until the client disconnects or the context is
// cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
	srv, err := NewServer(opts.Registry, opts.Version)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	manager := bootstrap.NewManager()
	if opts.MetricsAddr != "" {
		if err := manager.Register(NewMetricsServer(opts.MetricsAddr)); err != nil {
			return fmt.Errorf("failed to register metrics server: %w", err)
		}
	}

	if err := manager.Start(ctx); err != nil {
		return fmt.Errorf("failed to start components: %w", err)
	}
	defer func() {
		_ = manager.Stop(context.Background())
	}()

	g, _ := errgroup.WithContext(ctx)
	g.Go(srv.ServeStdio)

	return g.Wait()
}
