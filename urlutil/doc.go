// Package urlutil provides URL normalization, validation, and domain helpers
// for HTTP/HTTPS URLs.
//
// This package is the foundation for the urllist parser: Normalize rewrites
// free-form URL strings into a canonical comparable form, and Validate/IsValid
// apply a deliberately narrow well-formedness policy (http or https, a host
// that names a domain or localhost). It uses the standard library's
// net/url.Parse for parsing and never panics on garbage input.
//
// # Usage
//
// Use Normalize to canonicalize user-supplied URL strings:
//
//	import "github.com/linkrot/crawl-core/urlutil"
//
//	normalized := urlutil.Normalize("EXAMPLE.com/path/")
//	// Returns: "http://example.com/path"
//
// Use IsValid for classification and Validate when the reason matters:
//
//	if err := urlutil.Validate(normalized); err != nil {
//		cliout.Warning("skipping %s: %s", normalized, err)
//	}
//
// Use the domain helpers to relate URLs to each other:
//
//	urlutil.SameSite("http://www.example.com/a", "http://example.com/b")
//	// Returns: true
//
//	domain, _ := urlutil.RegistrableDomain("docs.example.co.uk")
//	// Returns: "example.co.uk"
//
// # Normalization Rules
//
// Normalize applies, in order:
//   - a missing scheme becomes http:// when the string contains a dot or
//     begins with "localhost" (anything else is left for validation to reject)
//   - trailing slashes are stripped from the path; the root path reduces to
//     the bare authority form, so example.com/ and example.com compare equal
//   - the host is lowercased
//   - the fragment is dropped
//
// Normalize is best-effort and total: input that cannot be parsed comes back
// unchanged rather than producing an error. It is also idempotent, which is
// what makes normalized strings safe dedup keys.
//
// # Validation Rules
//
// Validate enforces, in order:
//   - URL must not be empty or only whitespace
//   - URL must not exceed 2048 characters (RFC 2616 practical limit)
//   - URL must be parseable by net/url.Parse
//   - URL must use http:// or https:// (rejects ftp://, file://, javascript://, etc.)
//   - host must be non-empty and either contain a dot or be exactly "localhost"
//
// There is deliberately no port, character-set, or path validation: this is a
// coarse filter for separating URL lists into usable and unusable entries,
// not an RFC 3986 conformance checker.
package urlutil
