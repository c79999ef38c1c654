// Package commands implements the linklist CLI verbs.
//
// The root command wires shared concerns: layered config loading, debug
// logging, color handling, and the output format and destination flags.
// Each verb is built by its own constructor and stays thin, delegating the
// actual work to the library packages (urllist, urlutil, urlfilter,
// sitemap, export, mcpserver).
//
// # Commands
//
//   - parse: clean URL lists into valid and invalid entries
//   - validate: check individual URLs
//   - normalize: print canonical URL forms
//   - stats: per-domain counts for a list
//   - sitemap: extract URLs from sitemap XML
//   - serve: run the MCP stdio server
//   - version: build information
package commands
