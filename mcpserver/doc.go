// Package mcpserver exposes the URL list library as an MCP stdio server so
// coding agents and other MCP clients can parse, validate, normalize, filter,
// and analyze URL lists without shelling out to the CLI.
//
// # Tools
//
// The server registers one tool per library operation:
//
//   - parse_url_list: split list text into valid and invalid entries
//   - validate_url: check one URL against the HTTP/HTTPS rules
//   - normalize_url: canonicalize one URL
//   - url_statistics: per-domain counts, with optional registrable-domain rollup
//   - parse_sitemap: extract URLs from sitemap XML
//   - filter_urls: apply include/exclude rules to a URL list
//
// Tool results are indented JSON documents. Handler failures, including
// rate limit hits, come back as MCP error results rather than protocol
// errors, so clients always receive a well-formed response.
//
// # Usage
//
//	srv := mcpserver.New(cfg.Serve)
//	if err := srv.Serve(); err != nil {
//		log.Fatal(err)
//	}
//
// Serve blocks until the client closes stdin. When Serve.MetricsPort is
// nonzero, Prometheus metrics for tool calls are exposed over HTTP on that
// port alongside the stdio transport.
package mcpserver
