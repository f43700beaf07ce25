package tools

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for tool execution observability. Exposed on the
// /metrics endpoint when the MCP server runs with metrics enabled.
var (
	toolExecutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "crewline_tool_executions_total",
		Help: "Total number of tool executions by tool and outcome",
	}, []string{"tool", "status"})

	toolDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crewline_tool_duration_seconds",
		Help:    "Tool execution duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})
)

func init() {
	prometheus.MustRegister(toolExecutions, toolDuration)
}
