package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linkrot/crawl-core/cliout"
	"github.com/linkrot/crawl-core/export"
	"github.com/linkrot/crawl-core/logutil"
	"github.com/linkrot/crawl-core/sitemap"
	"github.com/linkrot/crawl-core/urllist"
)

type sitemapOptions struct {
	*rootOptions

	validate bool
}

func newSitemapCommand(root *rootOptions) *cobra.Command {
	opts := &sitemapOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "sitemap [file]",
		Short: "Extract URLs from a sitemap document",
		Long: `Sitemap parses a local sitemap XML file, or stdin, and lists the
URLs it contains. Gzipped sitemaps are decompressed transparently.
Sitemap index documents list their nested sitemap references instead;
references are never fetched.

With --validate the extracted URLs additionally run through the
standard normalization and validation pipeline.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSitemap(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Run extracted URLs through normalization and validation")

	return cmd
}

func runSitemap(opts *sitemapOptions, args []string) error {
	sources, err := readSources(args)
	if err != nil {
		return err
	}
	src := sources[0]

	doc, err := sitemap.Parse(src.data)
	if err != nil {
		return fmt.Errorf("parse sitemap %s: %w", src.name, err)
	}
	logutil.NewLogger("sitemap").WithSource(src.name).Debug("parsed sitemap",
		"urls", len(doc.URLs), "sitemaps", len(doc.Sitemaps))

	if opts.validate {
		return opts.writeValidated(doc)
	}
	return opts.writeDocument(doc)
}

// writeValidated runs the extracted URLs through the parse pipeline and
// reports them like the parse command does.
func (opts *sitemapOptions) writeValidated(doc sitemap.Document) error {
	result := urllist.Parse(strings.Join(doc.URLs, "\n"))
	report := export.Report{Result: result}

	if opts.isDefaultFormat() {
		printReport(report)
		printSitemapRefs(doc.Sitemaps)
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

// writeDocument reports the document as extracted, without validation.
func (opts *sitemapOptions) writeDocument(doc sitemap.Document) error {
	if opts.isDefaultFormat() {
		for _, url := range doc.URLs {
			cliout.Plain("%s", url)
		}
		printSitemapRefs(doc.Sitemaps)
		cliout.Newline()
		cliout.Success("%s URLs, %s nested sitemaps",
			cliout.Count(len(doc.URLs)), cliout.Count(len(doc.Sitemaps)))
		return nil
	}

	if opts.format == "json" {
		out, flush := opts.resolveOutput()
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return flush()
	}

	return fmt.Errorf("%s output for sitemaps requires --validate", opts.format)
}

func printSitemapRefs(sitemaps []string) {
	if len(sitemaps) == 0 {
		return
	}

	cliout.Newline()
	cliout.Info("Nested sitemaps:")
	for _, ref := range sitemaps {
		cliout.Bullet("%s", ref)
	}
}
