package urllist

import (
	"reflect"
	"testing"
)

func TestStatistics(t *testing.T) {
	tests := []struct {
		name        string
		urls        []string
		wantTotal   int
		wantUnique  int
		wantDomains map[string]int
	}{
		{
			name:        "empty list",
			urls:        nil,
			wantTotal:   0,
			wantUnique:  0,
			wantDomains: map[string]int{},
		},
		{
			name:        "counts per domain",
			urls:        []string{"http://a.com", "http://b.com", "http://a.com/x"},
			wantTotal:   3,
			wantUnique:  2,
			wantDomains: map[string]int{"a.com": 2, "b.com": 1},
		},
		{
			name:        "hostless entries count toward total only",
			urls:        []string{"http://a.com", "not a url", ""},
			wantTotal:   3,
			wantUnique:  1,
			wantDomains: map[string]int{"a.com": 1},
		},
		{
			name:        "port makes a distinct domain",
			urls:        []string{"http://a.com:8080", "http://a.com"},
			wantTotal:   2,
			wantUnique:  2,
			wantDomains: map[string]int{"a.com:8080": 1, "a.com": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := Statistics(tt.urls)

			if stats.Total != tt.wantTotal {
				t.Errorf("Statistics() Total = %d, want %d", stats.Total, tt.wantTotal)
			}
			if stats.UniqueDomains != tt.wantUnique {
				t.Errorf("Statistics() UniqueDomains = %d, want %d", stats.UniqueDomains, tt.wantUnique)
			}
			if !reflect.DeepEqual(stats.Domains, tt.wantDomains) {
				t.Errorf("Statistics() Domains = %v, want %v", stats.Domains, tt.wantDomains)
			}
		})
	}
}

func TestStatisticsNeverNilDomains(t *testing.T) {
	stats := Statistics(nil)
	if stats.Domains == nil {
		t.Error("Statistics(nil) Domains is nil, want empty map")
	}
}

func TestDomainRollup(t *testing.T) {
	tests := []struct {
		name string
		urls []string
		want map[string]int
	}{
		{
			name: "subdomains roll up",
			urls: []string{"http://a.example.com", "http://b.example.com", "http://example.org"},
			want: map[string]int{"example.com": 2, "example.org": 1},
		},
		{
			name: "multi-label public suffix",
			urls: []string{"http://docs.example.co.uk/guide"},
			want: map[string]int{"example.co.uk": 1},
		},
		{
			name: "ip and localhost kept whole",
			urls: []string{"http://127.0.0.1:8080/x", "http://localhost"},
			want: map[string]int{"127.0.0.1": 1, "localhost": 1},
		},
		{
			name: "hostless entries skipped",
			urls: []string{"not a url"},
			want: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainRollup(tt.urls); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DomainRollup() = %v, want %v", got, tt.want)
			}
		})
	}
}
