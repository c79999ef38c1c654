// Package urlfilter applies include/exclude rules to URL lists.
//
// A Filter is compiled once from a Rules value and then applied to any
// number of URLs. Rules combine regular expression matching on the full URL,
// extension allow/deny lists matched against the path, and glob patterns
// matched against the path. A URL must clear every configured rule group to
// pass; groups that are left empty do not participate.
//
// # Usage
//
//	import "github.com/linkrot/crawl-core/urlfilter"
//
//	filter, err := urlfilter.New(urlfilter.Rules{
//		Exclude:     []string{`/(login|logout)\b`},
//		ExcludeExts: []string{".pdf", ".zip"},
//		SkipGlobs:   []string{"/archive/**"},
//	})
//	if err != nil {
//		return err
//	}
//
//	kept := filter.Apply(result.Valid)
//
// # Rule Order
//
// Allow evaluates rule groups in a fixed order, rejecting on the first hit:
//
//  1. any Exclude pattern matches the URL
//  2. Include is non-empty and no Include pattern matches the URL
//  3. the path extension is in ExcludeExts
//  4. IncludeExts is non-empty, the path has an extension, and it is not in
//     the list (extensionless paths pass, they are usually pages)
//  5. any SkipGlobs pattern matches the path
//
// Extensions are compared lowercased with a leading dot, so "PDF", "pdf",
// and ".pdf" configure the same rule. Glob patterns support ** via
// github.com/bmatcuk/doublestar.
package urlfilter
