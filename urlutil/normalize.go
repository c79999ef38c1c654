package urlutil

import (
	neturl "net/url"
	"strings"
)

// Normalize rewrites a URL-like string into canonical form: a missing
// scheme becomes http:// when the string plausibly names a host, trailing
// slashes are stripped from the path, the host is lowercased, and any
// fragment is dropped.
//
// Normalize is best-effort and never fails. Input that cannot be parsed is
// returned unchanged (apart from whitespace trimming) so that callers can
// hand it to the validator for classification instead of handling an error.
// The result is idempotent: Normalize(Normalize(u)) == Normalize(u).
//
// Example:
//
//	urlutil.Normalize("EXAMPLE.com/path/")
//	// Returns: "http://example.com/path"
func Normalize(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}
	rawURL = strings.TrimSpace(rawURL)

	candidate := rawURL
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		// Prepend a scheme only for strings that plausibly name a host
		// (contain a dot, or start with localhost). Anything else is left
		// untouched for the validator to reject.
		if !strings.Contains(candidate, ".") && !strings.HasPrefix(candidate, "localhost") {
			return rawURL
		}
		candidate = "http://" + candidate
	}

	normalized, err := reassemble(candidate)
	if err != nil {
		return rawURL
	}
	return normalized
}

// reassemble is the fallible half of Normalize: parse, canonicalize the
// components, and rebuild the string. Callers decide what a parse failure
// degrades to.
func reassemble(candidate string) (string, error) {
	parsed, err := neturl.Parse(candidate)
	if err != nil {
		return "", err
	}

	// Strip trailing slashes so /path/ and /path compare equal. The root
	// path reduces to the bare authority form, making example.com/ and
	// example.com the same entry.
	if strings.HasSuffix(parsed.Path, "/") {
		parsed.Path = strings.TrimRight(parsed.Path, "/")
		if parsed.RawPath != "" {
			parsed.RawPath = strings.TrimRight(parsed.RawPath, "/")
		}
	}

	parsed.Host = strings.ToLower(parsed.Host)

	parsed.Fragment = ""
	parsed.RawFragment = ""
	if parsed.RawQuery == "" {
		parsed.ForceQuery = false
	}

	return parsed.String(), nil
}
