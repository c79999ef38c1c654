package urlutil

import (
	"fmt"
	neturl "net/url"
	"strings"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

// Validate checks that a string is a usable HTTP/HTTPS URL.
// It validates that the URL:
//   - Is not empty or only whitespace
//   - Does not exceed MaxURLLength (2048 characters)
//   - Can be parsed by net/url.Parse
//   - Uses http:// or https:// protocol
//   - Has a host that contains a dot or is exactly "localhost"
//
// Returns an error with context if validation fails. Use IsValid when only
// the classification matters.
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)

	if rawURL == "" {
		return fmt.Errorf("url cannot be empty")
	}

	if len(rawURL) > MaxURLLength {
		return fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}

	// Validate protocol (http or https only)
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		if parsed.Scheme == "" {
			return fmt.Errorf("url must use http:// or https://")
		}
		return fmt.Errorf("url must use http:// or https://, got: %s", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("url missing host/domain")
	}

	// The host must look like a domain. localhost is the one allowed
	// dotless host; localhost:port is not, matching the narrow policy.
	if !strings.Contains(parsed.Host, ".") && parsed.Host != "localhost" {
		return fmt.Errorf("url host %q is not a domain or localhost", parsed.Host)
	}

	return nil
}

// IsValid reports whether rawURL passes Validate. It never panics and is
// safe to call with arbitrary garbage input.
func IsValid(rawURL string) bool {
	return Validate(rawURL) == nil
}

// ValidateHTTPSOnly enforces HTTPS-only URLs.
// It allows HTTP for localhost (127.0.0.1, ::1, localhost) for local
// development, but rejects all other HTTP URLs.
//
// This is useful when a URL list feeds an environment where encrypted
// connections are required, while still allowing local development entries.
//
// Example:
//
//	if err := urlutil.ValidateHTTPSOnly(entry); err != nil {
//		return fmt.Errorf("list entry must use HTTPS: %w", err)
//	}
func ValidateHTTPSOnly(rawURL string) error {
	// First perform standard validation
	if err := Validate(rawURL); err != nil {
		return err
	}

	// Parse URL (we know it's valid from Validate)
	parsed, _ := neturl.Parse(strings.TrimSpace(rawURL))

	// Allow HTTPS
	if parsed.Scheme == "https" {
		return nil
	}

	// Allow HTTP for localhost
	if parsed.Scheme == "http" && isLocalhost(parsed.Hostname()) {
		return nil
	}

	return fmt.Errorf("url must use https:// (http:// only allowed for localhost)")
}

// Parse validates and parses a URL string.
// It returns a *url.URL if the URL is valid, or an error if validation fails.
//
// This is a convenience wrapper around Validate and net/url.Parse.
//
// Example:
//
//	parsed, err := urlutil.Parse(userInput)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Host: %s\n", parsed.Host)
func Parse(rawURL string) (*neturl.URL, error) {
	if err := Validate(rawURL); err != nil {
		return nil, err
	}

	// Parse (we know it's valid)
	return neturl.Parse(strings.TrimSpace(rawURL))
}

// isLocalhost checks if the hostname is a localhost address
func isLocalhost(hostname string) bool {
	hostname = strings.ToLower(hostname)

	return hostname == "localhost" ||
		hostname == "127.0.0.1" ||
		hostname == "::1" ||
		hostname == "[::1]"
}
