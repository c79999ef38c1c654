package urlutil

import (
	"fmt"
	"net"
	neturl "net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Hostname extracts the lowercased host, without any port, from a URL.
// Returns an error when the URL cannot be parsed or has no host.
func Hostname(rawURL string) (string, error) {
	parsed, err := neturl.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", fmt.Errorf("url %q has no host", rawURL)
	}
	return host, nil
}

// StripWWW removes a single leading "www." label from a host.
// Deeper www labels are left alone: www.example.com becomes example.com,
// but sub.www.example.com is unchanged.
func StripWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}

// SameSite reports whether two URLs point at the same site, comparing hosts
// after lowercasing and leading-www stripping. Ports are significant, so
// http://example.com:8080 and http://example.com are different sites, while
// www.example.com and example.com are the same one.
//
// This is the internal/external link test: a crawl frontier treats SameSite
// URLs as internal and everything else as outbound.
func SameSite(a, b string) bool {
	hostA, err := siteHost(a)
	if err != nil {
		return false
	}
	hostB, err := siteHost(b)
	if err != nil {
		return false
	}
	return hostA == hostB
}

func siteHost(rawURL string) (string, error) {
	parsed, err := neturl.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url %q has no host", rawURL)
	}
	return StripWWW(strings.ToLower(parsed.Host)), nil
}

// RegistrableDomain returns the eTLD+1 for a host: docs.example.co.uk
// becomes example.co.uk. The host must not include a port. IP addresses
// and hosts on the public suffix list itself (like localhost) have no
// registrable domain and return an error.
func RegistrableDomain(host string) (string, error) {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return "", fmt.Errorf("host cannot be empty")
	}
	if net.ParseIP(strings.Trim(host, "[]")) != nil {
		return "", fmt.Errorf("host %q is an IP address", host)
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("no registrable domain for %q: %w", host, err)
	}
	return etld1, nil
}
