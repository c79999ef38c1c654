// Package logutil provides a structured logging abstraction built on top of slog.
//
// It wraps the standard library's slog package with a process-global logger,
// convenience functions, and environment-aware configuration, so the CLI and
// the MCP server log the same way without threading a logger through every
// call. The parsing packages themselves are pure functions and do not log.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("parsing list", "file", path)
//	logutil.Info("parse completed", "valid", len(result.Valid))
//	logutil.Warn("skipping unreadable file", "file", path)
//	logutil.Error("export failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set CRAWLCORE_DEBUG=true in the environment
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"parse completed","valid":12}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="parse completed" valid=12
//
// Logs always go to stderr so they never mix with results on stdout.
//
// # Component Loggers
//
// NewLogger returns a logger scoped to a named component, with chainable
// context for the list source or tool being worked on:
//
//	log := logutil.NewLogger("mcp").WithTool("parse_url_list")
//	log.Debug("tool invoked", "bytes", len(text))
package logutil
