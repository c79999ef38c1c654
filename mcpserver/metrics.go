package mcpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeSuccess     = "success"
	outcomeError       = "error"
	outcomeRateLimited = "rate_limited"
)

var (
	toolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crawlcore_mcp_tool_duration_seconds",
			Help:    "Duration of MCP tool calls in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"tool", "outcome"},
	)

	toolCallTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crawlcore_mcp_tool_calls_total",
			Help: "Total number of MCP tool calls",
		},
		[]string{"tool", "outcome"},
	)
)

// recordToolCall records metrics for one tool invocation.
func recordToolCall(tool, outcome string, elapsed time.Duration) {
	labels := prometheus.Labels{
		"tool":    tool,
		"outcome": outcome,
	}

	toolCallDuration.With(labels).Observe(elapsed.Seconds())
	toolCallTotal.With(labels).Inc()
}

// outcomeOf classifies a handler result for metrics. Handler failures are
// reported as error results with a nil error, so both shapes count.
func outcomeOf(result *mcp.CallToolResult, err error) string {
	if err != nil || (result != nil && result.IsError) {
		return outcomeError
	}
	return outcomeSuccess
}

// ServeMetrics starts a Prometheus metrics HTTP server on the given port
// and blocks until it stops.
func ServeMetrics(port int) error {
	server := CreateMetricsServer(port)
	return server.ListenAndServe()
}

// CreateMetricsServer creates a configured HTTP server for Prometheus metrics.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
