package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moolen/crewline/internal/agent/tools"
	"github.com/moolen/crewline/internal/logging"
	"github.com/moolen/crewline/internal/mcp"
)

var mcpMetricsAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server that exposes the
deterministic crew tools for AI assistants over stdio.

All schema, query, metrics, documentation, and lifecycle tools are
available to connected clients. An optional Prometheus /metrics listener
reports tool call counts and latencies.`,
	Run: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpMetricsAddr, "metrics-addr", getEnv("CREWLINE_METRICS_ADDR", ""),
		"Address for the Prometheus /metrics listener (empty disables it)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) {
	// Set up logging
	if err := setupLog(logLevelFlags); err != nil {
		HandleError(err, "Failed to setup logging")
	}
	logger := logging.GetLogger("mcp")

	cfg, err := loadConfig()
	if err != nil {
		HandleError(err, "Failed to load config")
	}

	metricsAddr := mcpMetricsAddr
	if metricsAddr == "" {
		metricsAddr = cfg.MetricsAddr
	}

	// Logs go to stderr; stdout is reserved for the MCP transport.
	registry := tools.NewRegistry(tools.Dependencies{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	logger.Info("Starting Crewline MCP server (stdio, %d tools)", len(registry.List()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := mcp.Serve(ctx, mcp.ServeOptions{
		Registry:    registry,
		Version:     Version,
		MetricsAddr: metricsAddr,
	}); err != nil {
		logger.Fatal("MCP server failed: %v", err)
	}
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
