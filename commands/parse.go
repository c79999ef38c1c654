package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/linkrot/crawl-core/browser"
	"github.com/linkrot/crawl-core/cliout"
	"github.com/linkrot/crawl-core/export"
	"github.com/linkrot/crawl-core/fileutil"
	"github.com/linkrot/crawl-core/logutil"
	"github.com/linkrot/crawl-core/urlfilter"
	"github.com/linkrot/crawl-core/urllist"
	"github.com/linkrot/crawl-core/urlutil"
)

// confirmThreshold is the number of URLs above which --open asks first.
const confirmThreshold = 3

type parseOptions struct {
	*rootOptions

	stats bool
	open  int

	include     []string
	exclude     []string
	includeExts []string
	excludeExts []string
	skipGlobs   []string

	// openTarget lets tests disable the real browser launch.
	openTarget browser.Target
}

func newParseCommand(root *rootOptions) *cobra.Command {
	opts := &parseOptions{rootOptions: root, openTarget: browser.TargetDefault}

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse URL lists into valid and invalid entries",
		Long: `Parse reads URL lists, one URL per line, from files or stdin.

Blank lines and lines starting with # are skipped. Every other line is
normalized (scheme added, host lowercased, trailing slashes stripped)
and validated. Valid URLs are deduplicated across all inputs and keep
their first-seen order; invalid lines are reported as they appeared.

The exit code is zero even when invalid entries exist. It is nonzero
only for I/O and usage errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.stats, "stats", false, "Include per-domain statistics")
	flags.IntVar(&opts.open, "open", 0, "Open the first N valid URLs in the browser")
	flags.Lookup("open").NoOptDefVal = "1"
	addFilterFlags(flags, opts)

	return cmd
}

// addFilterFlags registers the filter rule flags. The flags extend any
// rules configured in the config file.
func addFilterFlags(flags *pflag.FlagSet, opts *parseOptions) {
	flags.StringSliceVar(&opts.include, "include", nil, "Keep only valid URLs matching this regular expression")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "Drop valid URLs matching this regular expression")
	flags.StringSliceVar(&opts.includeExts, "include-ext", nil, "Keep only these path extensions")
	flags.StringSliceVar(&opts.excludeExts, "exclude-ext", nil, "Drop these path extensions")
	flags.StringSliceVar(&opts.skipGlobs, "skip-glob", nil, "Drop URLs whose path matches this glob")
}

func runParse(opts *parseOptions, args []string) error {
	sources, err := readSources(args)
	if err != nil {
		return err
	}

	logger := logutil.NewLogger("parse")
	result := urllist.Result{Valid: []string{}, Invalid: []string{}}
	for _, src := range sources {
		partial := urllist.ParseBytes(src.data)
		logger.WithSource(src.name).Debug("parsed source",
			"valid", len(partial.Valid), "invalid", len(partial.Invalid))
		result.Merge(partial)
	}

	filter, err := opts.buildFilter()
	if err != nil {
		return err
	}
	result.Valid = filter.Apply(result.Valid)

	report := export.Report{Result: result}
	if opts.stats {
		stats := urllist.Statistics(result.Valid)
		report.Stats = &stats
	}

	if err := opts.writeReport(report); err != nil {
		return err
	}

	return opts.openURLs(result.Valid)
}

// buildFilter combines config file rules with the flag rules. A nil filter
// means nothing is configured and everything passes.
func (opts *parseOptions) buildFilter() (*urlfilter.Filter, error) {
	rules := opts.cfg.Filter
	rules.Include = append(rules.Include, opts.include...)
	rules.Exclude = append(rules.Exclude, opts.exclude...)
	rules.IncludeExts = append(rules.IncludeExts, opts.includeExts...)
	rules.ExcludeExts = append(rules.ExcludeExts, opts.excludeExts...)
	rules.SkipGlobs = append(rules.SkipGlobs, opts.skipGlobs...)

	if rules.Empty() {
		return nil, nil
	}
	return urlfilter.New(rules)
}

func (opts *parseOptions) writeReport(report export.Report) error {
	if opts.isDefaultFormat() {
		if opts.output != "" {
			return opts.writePlainList(report)
		}
		printReport(report)
		return nil
	}

	format, err := opts.exportFormat()
	if err != nil {
		return err
	}

	out, flush := opts.resolveOutput()
	if err := export.Write(out, report, format); err != nil {
		return err
	}
	return flush()
}

// writePlainList writes the valid URLs one per line, the same shape the
// parser accepts back as input.
func (opts *parseOptions) writePlainList(report export.Report) error {
	var buf bytes.Buffer
	for _, url := range report.Result.Valid {
		buf.WriteString(url)
		buf.WriteByte('\n')
	}

	if err := fileutil.AtomicWriteFile(opts.output, buf.Bytes(), fileutil.FilePermission); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	cliout.Success("Wrote %s valid URLs to %s", cliout.Count(len(report.Result.Valid)), opts.output)
	if len(report.Result.Invalid) > 0 {
		cliout.Warning("Skipped %s invalid entries", cliout.Count(len(report.Result.Invalid)))
	}
	return nil
}

// printReport renders the human-readable listing: valid URLs plain for
// piping, invalid entries with their reasons, then a summary.
func printReport(report export.Report) {
	for _, url := range report.Result.Valid {
		cliout.Plain("%s", url)
	}

	if len(report.Result.Invalid) > 0 {
		if len(report.Result.Valid) > 0 {
			cliout.Newline()
		}
		cliout.Warning("%s invalid entries:", cliout.Count(len(report.Result.Invalid)))
		for _, line := range report.Result.Invalid {
			cliout.Detail("%s  %s", line, invalidReason(line))
		}
	}

	cliout.Newline()
	cliout.Success("%s valid, %s invalid",
		cliout.Count(len(report.Result.Valid)), cliout.Count(len(report.Result.Invalid)))

	if report.Stats != nil {
		printStats(*report.Stats)
	}
}

// invalidReason re-derives why a line failed validation, for the listing.
// The line is checked as written rather than normalized first, so the
// message points at what the user typed.
func invalidReason(line string) string {
	if err := urlutil.Validate(line); err != nil {
		return err.Error()
	}
	return "invalid"
}

// openURLs launches the first N valid URLs, confirming first when N is
// large enough to be annoying.
func (opts *parseOptions) openURLs(valid []string) error {
	if opts.open <= 0 || len(valid) == 0 {
		return nil
	}

	n := opts.open
	if n > len(valid) {
		n = len(valid)
	}
	if n > confirmThreshold && !cliout.Confirm(fmt.Sprintf("Open %d URLs in your browser?", n)) {
		return nil
	}

	for _, url := range valid[:n] {
		if err := browser.Launch(browser.LaunchOptions{URL: url, Target: opts.openTarget}); err != nil {
			return fmt.Errorf("open %s: %w", url, err)
		}
	}
	return nil
}
