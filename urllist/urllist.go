package urllist

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/linkrot/crawl-core/urlutil"
)

// Result partitions the lines of a URL list. Valid holds normalized URLs in
// first-occurrence order with duplicates removed; Invalid holds the original
// trimmed text of every line that failed validation, duplicates included.
type Result struct {
	Valid   []string `json:"valid" yaml:"valid"`
	Invalid []string `json:"invalid" yaml:"invalid"`
}

// Merge appends another result, keeping the dedup invariant on Valid.
func (r *Result) Merge(other Result) {
	seen := make(map[string]struct{}, len(r.Valid))
	for _, url := range r.Valid {
		seen[url] = struct{}{}
	}
	for _, url := range other.Valid {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		r.Valid = append(r.Valid, url)
	}
	r.Invalid = append(r.Invalid, other.Invalid...)
}

// Parse reads URLs from text, one per line.
//
// Lines are trimmed; blank lines and comment lines (first character #) are
// skipped. Each remaining line is normalized and validated: the normalized
// form of a valid line is appended to Valid unless an identical normalized
// URL was already seen, and the original text of an invalid line is appended
// to Invalid. Empty or whitespace-only input yields an empty Result.
func Parse(text string) Result {
	result := Result{Valid: []string{}, Invalid: []string{}}
	if strings.TrimSpace(text) == "" {
		return result
	}

	seen := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		normalized := urlutil.Normalize(line)
		if !urlutil.IsValid(normalized) {
			result.Invalid = append(result.Invalid, line)
			continue
		}

		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result.Valid = append(result.Valid, normalized)
	}

	return result
}

// ParseBytes decodes raw file content and parses it with Parse.
//
// Content that is valid UTF-8 is used directly; anything else is re-decoded
// as Latin-1. Content that cannot be decoded at all degrades to an empty
// Result rather than an error.
func ParseBytes(content []byte) Result {
	text, ok := decode(content)
	if !ok {
		return Result{Valid: []string{}, Invalid: []string{}}
	}
	return Parse(text)
}

// decode picks the text interpretation of raw list content. Latin-1 maps
// every byte to a rune, so the fallback only fails on decoder errors.
func decode(content []byte) (string, bool) {
	if utf8.Valid(content) {
		return string(content), true
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}
