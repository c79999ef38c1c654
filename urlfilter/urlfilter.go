package urlfilter

import (
	"fmt"
	neturl "net/url"
	"path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rules configures a Filter. All fields are optional; an empty group takes
// no part in filtering. Include and Exclude are regular expressions matched
// against the full URL string, IncludeExts and ExcludeExts are file
// extensions matched against the path, and SkipGlobs are glob patterns
// matched against the path.
type Rules struct {
	Include     []string `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude     []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	IncludeExts []string `json:"include_exts,omitempty" yaml:"include_exts,omitempty"`
	ExcludeExts []string `json:"exclude_exts,omitempty" yaml:"exclude_exts,omitempty"`
	SkipGlobs   []string `json:"skip_globs,omitempty" yaml:"skip_globs,omitempty"`
}

// Empty reports whether no rules are configured.
func (r Rules) Empty() bool {
	return len(r.Include) == 0 &&
		len(r.Exclude) == 0 &&
		len(r.IncludeExts) == 0 &&
		len(r.ExcludeExts) == 0 &&
		len(r.SkipGlobs) == 0
}

// Filter is a compiled, reusable set of URL rules. The zero value and the
// nil pointer allow everything.
type Filter struct {
	include     []*regexp.Regexp
	exclude     []*regexp.Regexp
	includeExts map[string]struct{}
	excludeExts map[string]struct{}
	skipGlobs   []string
}

// New compiles a Filter from rules. Invalid regular expressions and glob
// patterns are reported with the offending pattern.
func New(rules Rules) (*Filter, error) {
	filter := &Filter{
		includeExts: normalizeExts(rules.IncludeExts),
		excludeExts: normalizeExts(rules.ExcludeExts),
		skipGlobs:   rules.SkipGlobs,
	}

	for _, pattern := range rules.Include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		filter.include = append(filter.include, re)
	}

	for _, pattern := range rules.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		filter.exclude = append(filter.exclude, re)
	}

	for _, pattern := range rules.SkipGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid skip glob %q", pattern)
		}
	}

	return filter, nil
}

// MustNew compiles a Filter from rules and panics on invalid patterns.
// Intended for fixed rules in tests and initialization.
func MustNew(rules Rules) *Filter {
	filter, err := New(rules)
	if err != nil {
		panic(err)
	}
	return filter
}

// Allow reports whether a URL clears every configured rule group.
func (f *Filter) Allow(rawURL string) bool {
	if f == nil {
		return true
	}

	for _, re := range f.exclude {
		if re.MatchString(rawURL) {
			return false
		}
	}

	if len(f.include) > 0 {
		matched := false
		for _, re := range f.include {
			if re.MatchString(rawURL) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Extension and glob rules need the path; a URL that does not parse
	// simply has no path to match against.
	urlPath := ""
	if parsed, err := neturl.Parse(rawURL); err == nil {
		urlPath = parsed.Path
	}
	ext := strings.ToLower(path.Ext(urlPath))

	if _, excluded := f.excludeExts[ext]; excluded {
		return false
	}

	if len(f.includeExts) > 0 && ext != "" {
		if _, included := f.includeExts[ext]; !included {
			return false
		}
	}

	for _, pattern := range f.skipGlobs {
		if matched, err := doublestar.Match(pattern, urlPath); err == nil && matched {
			return false
		}
	}

	return true
}

// Apply filters a URL list, preserving order.
func (f *Filter) Apply(urls []string) []string {
	if f == nil {
		return urls
	}

	kept := make([]string, 0, len(urls))
	for _, url := range urls {
		if f.Allow(url) {
			kept = append(kept, url)
		}
	}
	return kept
}

// normalizeExts lowercases extensions and guarantees the leading dot, so
// "PDF", "pdf", and ".pdf" all configure the same rule.
func normalizeExts(exts []string) map[string]struct{} {
	if len(exts) == 0 {
		return nil
	}

	normalized := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized[ext] = struct{}{}
	}
	return normalized
}
