// Package urllist parses free-form URL lists into validated, deduplicated
// results and summarizes them by domain.
//
// A URL list is plain text with one URL per line. Blank lines and lines
// starting with # are ignored, every other line is normalized
// (urlutil.Normalize) and validated (urlutil.IsValid), and the outcome is
// partitioned: valid URLs are collected in first-occurrence order with
// duplicates removed, invalid lines are kept verbatim so callers can report
// exactly what was rejected.
//
// The package is a pure text transform: no I/O, no shared state, safe for
// concurrent use. Malformed input is classified rather than rejected, so the
// only way to get nothing back is to pass nothing in.
//
// # Usage
//
// Parse text that is already in memory:
//
//	import "github.com/linkrot/crawl-core/urllist"
//
//	result := urllist.Parse("example.com\nhttp://EXAMPLE.com/\n# comment\nftp://bad.com")
//	// result.Valid == ["http://example.com"]
//	// result.Invalid == ["ftp://bad.com"]
//
// Parse raw file content without worrying about the encoding:
//
//	data, _ := os.ReadFile("urls.txt")
//	result := urllist.ParseBytes(data)
//
// Summarize a list by domain:
//
//	stats := urllist.Statistics(result.Valid)
//	fmt.Printf("%d URLs across %d domains\n", stats.Total, stats.UniqueDomains)
//
// # Encoding
//
// ParseBytes decodes UTF-8 content directly and falls back to Latin-1 for
// anything else, so exports from legacy tools still yield their ASCII-range
// URLs instead of failing outright.
package urllist
