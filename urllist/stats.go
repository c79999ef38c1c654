package urllist

import (
	neturl "net/url"
	"strings"

	"github.com/linkrot/crawl-core/urlutil"
)

// Stats summarizes a URL list by domain.
type Stats struct {
	Total         int            `json:"total" yaml:"total"`
	UniqueDomains int            `json:"unique_domains" yaml:"unique_domains"`
	Domains       map[string]int `json:"domains" yaml:"domains"`
}

// Statistics counts the URLs in a list per domain (host, including any
// port). Total counts every input entry; Domains and UniqueDomains reflect
// only entries whose host could be extracted. Anything else is skipped
// silently, never reported as an error.
func Statistics(urls []string) Stats {
	stats := Stats{
		Total:   len(urls),
		Domains: map[string]int{},
	}

	for _, raw := range urls {
		parsed, err := neturl.Parse(raw)
		if err != nil || parsed.Host == "" {
			continue
		}
		stats.Domains[parsed.Host]++
	}

	stats.UniqueDomains = len(stats.Domains)
	return stats
}

// DomainRollup aggregates like Statistics but keys counts by registrable
// domain (eTLD+1), so a.example.com and b.example.com both roll up to
// example.com. Hosts without a registrable domain, such as IP addresses
// and localhost, are kept whole.
func DomainRollup(urls []string) map[string]int {
	rollup := map[string]int{}

	for _, raw := range urls {
		parsed, err := neturl.Parse(raw)
		if err != nil || parsed.Host == "" {
			continue
		}

		host := strings.ToLower(parsed.Hostname())
		domain, err := urlutil.RegistrableDomain(host)
		if err != nil {
			domain = host
		}
		rollup[domain]++
	}

	return rollup
}
