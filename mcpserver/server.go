package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/linkrot/crawl-core/config"
	"github.com/linkrot/crawl-core/logutil"
	"github.com/linkrot/crawl-core/version"
)

// serverName identifies the server to MCP clients.
const serverName = "crawl-core"

// Server wraps an MCP stdio server with per-tool rate limiting and metrics.
type Server struct {
	mcp    *server.MCPServer
	cfg    config.ServeConfig
	logger *logutil.ComponentLogger
}

// New creates a Server with all tools registered. Rate limiting is
// configured from cfg; a zero or negative RateLimit disables it.
func New(cfg config.ServeConfig) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logutil.NewLogger("mcpserver"),
	}

	s.mcp = server.NewMCPServer(
		serverName,
		version.Get().Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()

	return s
}

// Serve runs the server on stdin/stdout and blocks until the client
// disconnects. When MetricsPort is nonzero the Prometheus endpoint is
// served concurrently on that port.
func (s *Server) Serve() error {
	if s.cfg.MetricsPort > 0 {
		metricsServer := CreateMetricsServer(s.cfg.MetricsPort)
		go func() {
			s.logger.Info("serving metrics", "port", s.cfg.MetricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	s.logger.Info("starting MCP server", "name", serverName, "version", version.Get().Version)
	return server.ServeStdio(s.mcp)
}

// register adds a tool to the underlying server with rate limiting and
// metrics wrapped around its handler.
func (s *Server) register(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcp.AddTool(tool, s.guard(tool.Name, handler))
}

// guard wraps a tool handler with a per-tool token bucket and call metrics.
// A limit hit is reported to the client as a tool error result so the
// session itself stays healthy.
func (s *Server) guard(name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	limiter := s.newLimiter()

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		if limiter != nil && !limiter.Allow() {
			recordToolCall(name, outcomeRateLimited, time.Since(start))
			s.logger.WithTool(name).Warn("rate limit exceeded")
			return mcp.NewToolResultError(fmt.Sprintf("rate limit exceeded for tool %q, please wait before retrying", name)), nil
		}

		result, err := handler(ctx, request)
		recordToolCall(name, outcomeOf(result, err), time.Since(start))
		return result, err
	}
}

// newLimiter builds the token bucket for one tool from the serve config.
func (s *Server) newLimiter() *rate.Limiter {
	if s.cfg.RateLimit <= 0 {
		return nil
	}

	burst := s.cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(s.cfg.RateLimit), burst)
}
