package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkrot/crawl-core/cliout"
	"github.com/linkrot/crawl-core/urlutil"
)

// verdict is one URL's validation outcome, for JSON output.
type verdict struct {
	URL    string `json:"url"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func newValidateCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <url>...",
		Short: "Check URLs against the HTTP/HTTPS validation rules",
		Long: `Validate checks each URL as given, without normalizing it first.

A URL passes when it parses, uses http or https, and has a host that
contains a dot or is exactly "localhost". The exit code is nonzero
when any URL fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
	verdicts := make([]verdict, 0, len(args))
	invalid := 0

	for _, url := range args {
		v := verdict{URL: url, Valid: true}
		if err := urlutil.Validate(url); err != nil {
			v.Valid = false
			v.Reason = err.Error()
			invalid++
		}
		verdicts = append(verdicts, v)
	}

	if cliout.IsJSON() {
		if err := cliout.PrintJSON(verdicts); err != nil {
			return err
		}
	} else {
		for _, v := range verdicts {
			if v.Valid {
				cliout.Plain("%s  %s", cliout.Status("valid"), v.URL)
			} else {
				cliout.Plain("%s  %s  %s", cliout.Status("invalid"), v.URL, cliout.Muted("%s", v.Reason))
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d urls failed validation", invalid, len(args))
	}
	return nil
}
