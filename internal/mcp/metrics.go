package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moolen/crewline/internal/logging"
)

// MetricsServer serves the Prometheus /metrics endpoint alongside the MCP
// transport. It implements bootstrap.Component.
type MetricsServer struct {
	addr   string
	srv    *http.Server
	logger *logging.Logger
}

// NewMetricsServer creates a metrics listener on the given address.
func NewMetricsServer(addr string) *MetricsServer {
	return &MetricsServer{
		addr:   addr,
		logger: logging.GetLogger("mcp.metrics"),
	}
}

// Name implements bootstrap.Component.
func (m *MetricsServer) Name() string {
	return "mcp.metrics"
}

// Start implements bootstrap.Component. It begins serving /metrics in the
// background and returns once the listener is set up.
func (m *MetricsServer) Start(ctx context.Context) error {
	if m.srv != nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	m.srv = &http.Server{
		Addr:              m.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	m.logger.Info("Serving metrics on %s", m.addr)
	srv := m.srv
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("Metrics server failed: %v", err)
		}
	}()

	return nil
}

// Stop implements bootstrap.Component.
func (m *MetricsServer) Stop(ctx context.Context) error {
	if m.srv == nil {
		return nil
	}
	if err := m.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down metrics server: %w", err)
	}
	m.srv = nil
	return nil
}
