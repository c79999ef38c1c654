package mcpserver

import (
	"context"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/linkrot/crawl-core/sitemap"
	"github.com/linkrot/crawl-core/urlfilter"
	"github.com/linkrot/crawl-core/urllist"
	"github.com/linkrot/crawl-core/urlutil"
)

// urlVerdict is the result of validating a single URL.
type urlVerdict struct {
	URL    string `json:"url"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// normalizedURL is the result of normalizing a single URL.
type normalizedURL struct {
	URL        string `json:"url"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
}

// urlStatistics extends the library stats with an optional rollup view.
type urlStatistics struct {
	urllist.Stats
	Rollup map[string]int `json:"rollup,omitempty"`
}

// filteredURLs is the result of applying filter rules to a URL list.
type filteredURLs struct {
	URLs    []string `json:"urls"`
	Kept    int      `json:"kept"`
	Dropped int      `json:"dropped"`
}

func (s *Server) registerTools() {
	s.register(
		mcp.NewTool("parse_url_list",
			mcp.WithDescription("Parse a newline-separated URL list. Blank lines and lines starting with # are skipped; the rest are normalized and validated. Returns valid URLs (normalized, deduplicated, in first-seen order) and the invalid entries."),
			mcp.WithString("text",
				mcp.Required(),
				mcp.Description("The URL list text, one URL per line."),
			),
		),
		s.handleParseURLList,
	)

	s.register(
		mcp.NewTool("validate_url",
			mcp.WithDescription("Check whether a single URL is a well-formed HTTP or HTTPS URL with a plausible host. Returns the verdict and the failure reason when invalid."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("The URL to validate."),
			),
		),
		s.handleValidateURL,
	)

	s.register(
		mcp.NewTool("normalize_url",
			mcp.WithDescription("Normalize a URL: add a missing http:// scheme, lowercase the host, and strip trailing slashes, fragments, and empty queries. Returns the normalized form and whether it validates."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("The URL to normalize."),
			),
		),
		s.handleNormalizeURL,
	)

	s.register(
		mcp.NewTool("url_statistics",
			mcp.WithDescription("Count URLs per domain for a list of URLs. Optionally roll subdomains up to their registrable domain and keep only the busiest domains."),
			mcp.WithArray("urls",
				mcp.Required(),
				mcp.Description("The URLs to analyze."),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithBoolean("rollup",
				mcp.Description("Also aggregate counts by registrable domain (eTLD+1), so a.example.com and b.example.com count together."),
			),
			mcp.WithNumber("top",
				mcp.Description("Keep only the N domains with the highest counts."),
			),
		),
		s.handleURLStatistics,
	)

	s.register(
		mcp.NewTool("parse_sitemap",
			mcp.WithDescription("Parse an XML sitemap or sitemap index document. Returns the page URLs of a urlset or the nested references of a sitemapindex."),
			mcp.WithString("xml",
				mcp.Required(),
				mcp.Description("The sitemap XML content."),
			),
		),
		s.handleParseSitemap,
	)

	s.register(
		mcp.NewTool("filter_urls",
			mcp.WithDescription("Filter a URL list by regular expressions, file extensions, and path globs. Returns the URLs that clear every configured rule, in their original order."),
			mcp.WithArray("urls",
				mcp.Required(),
				mcp.Description("The URLs to filter."),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithArray("include",
				mcp.Description("Regular expressions; when set, a URL must match at least one to be kept."),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithArray("exclude",
				mcp.Description("Regular expressions; a URL matching any of them is dropped."),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithArray("include_exts",
				mcp.Description("File extensions to keep, with or without the leading dot."),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithArray("exclude_exts",
				mcp.Description("File extensions to drop, with or without the leading dot."),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithArray("skip_globs",
				mcp.Description("Glob patterns matched against the URL path; a match drops the URL. Supports ** for multiple segments."),
				mcp.Items(map[string]any{"type": "string"}),
			),
		),
		s.handleFilterURLs,
	)
}

func (s *Server) handleParseURLList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)

	text, ok := GetStringParam(args, "text")
	if !ok {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	result := urllist.Parse(text)
	s.logger.WithTool("parse_url_list").Debug("parsed url list",
		"valid", len(result.Valid), "invalid", len(result.Invalid))

	return MarshalToolResult(result)
}

func (s *Server) handleValidateURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)

	rawURL, ok := GetStringParam(args, "url")
	if !ok {
		return mcp.NewToolResultError("missing required parameter: url"), nil
	}

	verdict := urlVerdict{URL: rawURL, Valid: true}
	if err := urlutil.Validate(rawURL); err != nil {
		verdict.Valid = false
		verdict.Reason = err.Error()
	}

	return MarshalToolResult(verdict)
}

func (s *Server) handleNormalizeURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)

	rawURL, ok := GetStringParam(args, "url")
	if !ok {
		return mcp.NewToolResultError("missing required parameter: url"), nil
	}

	normalized := urlutil.Normalize(rawURL)

	return MarshalToolResult(normalizedURL{
		URL:        rawURL,
		Normalized: normalized,
		Valid:      urlutil.IsValid(normalized),
	})
}

func (s *Server) handleURLStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)

	urls, ok := GetStringSlice(args, "urls")
	if !ok {
		return mcp.NewToolResultError("missing required parameter: urls"), nil
	}

	result := urlStatistics{Stats: urllist.Statistics(urls)}
	if GetBoolParam(args, "rollup") {
		result.Rollup = urllist.DomainRollup(urls)
	}

	if top, ok := GetIntParam(args, "top"); ok && top > 0 {
		result.Domains = topDomains(result.Domains, top)
		if result.Rollup != nil {
			result.Rollup = topDomains(result.Rollup, top)
		}
	}

	return MarshalToolResult(result)
}

func (s *Server) handleParseSitemap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)

	xmlText, ok := GetStringParam(args, "xml")
	if !ok {
		return mcp.NewToolResultError("missing required parameter: xml"), nil
	}

	doc, err := sitemap.Parse([]byte(xmlText))
	if err != nil {
		return mcp.NewToolResultError("failed to parse sitemap: " + err.Error()), nil
	}
	s.logger.WithTool("parse_sitemap").Debug("parsed sitemap",
		"urls", len(doc.URLs), "sitemaps", len(doc.Sitemaps))

	return MarshalToolResult(doc)
}

func (s *Server) handleFilterURLs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)

	urls, ok := GetStringSlice(args, "urls")
	if !ok {
		return mcp.NewToolResultError("missing required parameter: urls"), nil
	}

	rules := urlfilter.Rules{}
	rules.Include, _ = GetStringSlice(args, "include")
	rules.Exclude, _ = GetStringSlice(args, "exclude")
	rules.IncludeExts, _ = GetStringSlice(args, "include_exts")
	rules.ExcludeExts, _ = GetStringSlice(args, "exclude_exts")
	rules.SkipGlobs, _ = GetStringSlice(args, "skip_globs")

	filter, err := urlfilter.New(rules)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	kept := filter.Apply(urls)

	return MarshalToolResult(filteredURLs{
		URLs:    kept,
		Kept:    len(kept),
		Dropped: len(urls) - len(kept),
	})
}

// topDomains trims a count map to the n highest counts, breaking ties by
// domain name so the result is stable.
func topDomains(counts map[string]int, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}

	type domainCount struct {
		domain string
		count  int
	}
	entries := make([]domainCount, 0, len(counts))
	for domain, count := range counts {
		entries = append(entries, domainCount{domain, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].domain < entries[j].domain
	})

	kept := make(map[string]int, n)
	for _, entry := range entries[:n] {
		kept[entry.domain] = entry.count
	}
	return kept
}
