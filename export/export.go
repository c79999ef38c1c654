package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/linkrot/crawl-core/urllist"
)

// Format identifies an export encoding.
type Format string

const (
	// FormatJSON emits the report as indented JSON.
	FormatJSON Format = "json"
	// FormatCSV emits url,status rows, then domain,count rows when
	// statistics are present.
	FormatCSV Format = "csv"
	// FormatYAML emits the report as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (valid: json, csv, yaml)", name)
	}
}

// Report is the exportable outcome of a parse run: the partitioned URL
// list, and optionally the statistics computed over its valid entries.
type Report struct {
	Result urllist.Result `json:"result" yaml:"result"`
	Stats  *urllist.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Write serializes a report to w in the given format.
func Write(w io.Writer, report Report, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	case FormatCSV:
		return writeReportCSV(w, report)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// WriteStats serializes statistics alone, for stats-only runs.
func WriteStats(w io.Writer, stats urllist.Stats, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, stats)
	case FormatYAML:
		return writeYAML(w, stats)
	case FormatCSV:
		return writeStatsCSV(w, stats)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, data any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return nil
}

func writeReportCSV(w io.Writer, report Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"url", "status"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, url := range report.Result.Valid {
		if err := writer.Write([]string{url, "valid"}); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	for _, line := range report.Result.Invalid {
		if err := writer.Write([]string{line, "invalid"}); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	if report.Stats != nil {
		if err := writer.Write([]string{}); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		if err := writeDomainRows(writer, *report.Stats); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeStatsCSV(w io.Writer, stats urllist.Stats) error {
	writer := csv.NewWriter(w)
	if err := writeDomainRows(writer, stats); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// writeDomainRows emits domain,count rows in sorted domain order.
func writeDomainRows(writer *csv.Writer, stats urllist.Stats) error {
	if err := writer.Write([]string{"domain", "count"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	domains := make([]string, 0, len(stats.Domains))
	for domain := range stats.Domains {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	for _, domain := range domains {
		row := []string{domain, strconv.Itoa(stats.Domains[domain])}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	return nil
}
