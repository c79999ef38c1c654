package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/linkrot/crawl-core/cliout"
	"github.com/linkrot/crawl-core/export"
	"github.com/linkrot/crawl-core/urllist"
)

type statsOptions struct {
	*rootOptions

	rollup bool
}

func newStatsCommand(root *rootOptions) *cobra.Command {
	opts := &statsOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "stats [file...]",
		Short: "Report per-domain counts for URL lists",
		Long: `Stats parses URL lists and counts the valid URLs per domain.

By default domains are counted by full host, including any port. With
--rollup, subdomains aggregate to their registrable domain, so
a.example.com and b.example.com count together as example.com.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rollup") {
				opts.rollup = root.cfg.Stats.Rollup
			}
			return runStats(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.rollup, "rollup", false, "Aggregate by registrable domain (eTLD+1) instead of full host")

	return cmd
}

func runStats(opts *statsOptions, args []string) error {
	sources, err := readSources(args)
	if err != nil {
		return err
	}

	result := urllist.Result{Valid: []string{}, Invalid: []string{}}
	for _, src := range sources {
		result.Merge(urllist.ParseBytes(src.data))
	}

	stats := urllist.Statistics(result.Valid)
	if opts.rollup {
		stats.Domains = urllist.DomainRollup(result.Valid)
		stats.UniqueDomains = len(stats.Domains)
	}

	if opts.isDefaultFormat() {
		printStats(stats)
		return nil
	}

	format, err := opts.exportFormat()
	if err != nil {
		return err
	}

	out, flush := opts.resolveOutput()
	if err := export.WriteStats(out, stats, format); err != nil {
		return err
	}
	return flush()
}

// printStats renders the statistics block with a domain/count table.
func printStats(stats urllist.Stats) {
	cliout.Newline()
	cliout.Header("Domain Statistics")
	cliout.Label("Total URLs", fmt.Sprintf("%d", stats.Total))
	cliout.Label("Unique domains", fmt.Sprintf("%d", stats.UniqueDomains))

	if len(stats.Domains) == 0 {
		return
	}

	cliout.Newline()
	rows := make([]cliout.TableRow, 0, len(stats.Domains))
	for _, domain := range sortedByCount(stats.Domains) {
		rows = append(rows, cliout.TableRow{
			"domain": domain,
			"count":  strconv.Itoa(stats.Domains[domain]),
		})
	}
	cliout.Table([]string{"domain", "count"}, rows)
}

// sortedByCount orders domains by descending count, then by name so equal
// counts list predictably.
func sortedByCount(domains map[string]int) []string {
	names := make([]string, 0, len(domains))
	for domain := range domains {
		names = append(names, domain)
	}
	sort.Slice(names, func(i, j int) bool {
		if domains[names[i]] != domains[names[j]] {
			return domains[names[i]] > domains[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
