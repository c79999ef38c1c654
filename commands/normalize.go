package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linkrot/crawl-core/urlutil"
)

// normalized is one line's canonical form, for JSON output.
type normalized struct {
	URL        string `json:"url"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
}

func newNormalizeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [url...]",
		Short: "Print the canonical form of URLs",
		Long: `Normalize prints each URL in its canonical form: a missing scheme
becomes http://, the host is lowercased, and trailing slashes, fragments,
and empty queries are stripped.

URLs come from the arguments, or from stdin one per line when no
arguments are given. Blank lines and # comments are skipped. Lines that
cannot be parsed pass through trimmed but otherwise unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(root, args)
		},
	}
}

func runNormalize(opts *rootOptions, args []string) error {
	lines := args
	if len(args) == 0 {
		sources, err := readSources(nil)
		if err != nil {
			return err
		}
		lines = strings.Split(string(sources[0].data), "\n")
	}

	results := make([]normalized, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		norm := urlutil.Normalize(line)
		results = append(results, normalized{
			URL:        line,
			Normalized: norm,
			Valid:      urlutil.IsValid(norm),
		})
	}

	out, flush := opts.resolveOutput()

	if opts.format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
		return flush()
	}

	for _, r := range results {
		fmt.Fprintln(out, r.Normalized)
	}
	return flush()
}
