package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linkrot/crawl-core/cliout"
	"github.com/linkrot/crawl-core/config"
	"github.com/linkrot/crawl-core/export"
	"github.com/linkrot/crawl-core/fileutil"
	"github.com/linkrot/crawl-core/logutil"
	"github.com/linkrot/crawl-core/version"
)

// stdinName is the conventional file argument for reading from stdin.
const stdinName = "-"

// maxInputSize caps list and sitemap reads.
const maxInputSize = fileutil.DefaultMaxSize

// rootOptions carries the persistent flags and the loaded config, shared by
// every subcommand.
type rootOptions struct {
	debug      bool
	noColor    bool
	configPath string
	format     string
	output     string

	cfg *config.Config
}

// NewRootCommand builds the linklist command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "linklist",
		Short: "Parse, validate, and analyze URL lists",
		Long: `linklist cleans up URL lists: it reads newline-separated input,
normalizes each entry, separates valid HTTP/HTTPS URLs from the rest,
and reports per-domain statistics.

Input comes from files or stdin. Results print as styled text by
default and can be exported as JSON, CSV, or YAML, or written back
out as a plain list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.configPath, "config", "", "Config file path (default: user then project config)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: text, json, csv, or yaml")
	flags.StringVarP(&opts.output, "output", "o", "", "Write results to this file instead of stdout")

	cmd.AddCommand(
		newParseCommand(opts),
		newValidateCommand(opts),
		newNormalizeCommand(opts),
		newStatsCommand(opts),
		newSitemapCommand(opts),
		newServeCommand(opts),
		version.NewCommand(version.Get(), &opts.format),
	)

	return cmd
}

// setup runs before every subcommand: logging, config, format, and color.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	logutil.SetupLogger(o.debug || os.Getenv(logutil.EnvDebug) == "true", false)

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	o.cfg = cfg

	if o.format == "" {
		o.format = cfg.Output.Format
	}
	format, err := normalizeFormat(o.format)
	if err != nil {
		return err
	}
	o.format = format

	if o.noColor || !cfg.Output.Color {
		cliout.DisableColors()
	}

	if o.format == "json" {
		return cliout.SetFormat("json")
	}
	return nil
}

// loadConfig resolves the effective config: an explicit --config file, or
// the layered user and project files.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return config.NewLoader().Load()
	}

	if !fileutil.Exists(o.configPath) {
		return nil, fmt.Errorf("config file not found: %s", o.configPath)
	}
	cfg, err := config.LoadFromFile(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalizeFormat resolves a format name from the flag or config. The
// human format goes by both "text" and "default"; empty means default.
func normalizeFormat(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "default":
		return "default", nil
	case "json":
		return "json", nil
	case "csv":
		return "csv", nil
	case "yaml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("invalid format %q (valid: text, json, csv, yaml)", name)
	}
}

// isDefaultFormat reports whether output should be human-readable text.
func (o *rootOptions) isDefaultFormat() bool {
	return o.format == "default"
}

// exportFormat maps the format flag to an export encoding.
func (o *rootOptions) exportFormat() (export.Format, error) {
	return export.ParseFormat(o.format)
}

// resolveOutput returns the destination for exportable output. Without
// --output it is stdout with a no-op flush; with --output the content is
// buffered and written atomically by the flush func.
func (o *rootOptions) resolveOutput() (io.Writer, func() error) {
	if o.output == "" {
		return os.Stdout, func() error { return nil }
	}

	var buf bytes.Buffer
	return &buf, func() error {
		if err := fileutil.AtomicWriteFile(o.output, buf.Bytes(), fileutil.FilePermission); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		return nil
	}
}

// source is one named unit of input, from a file or stdin.
type source struct {
	name string
	data []byte
}

// readSources reads each named file in order. No arguments, or the
// argument "-", reads stdin instead.
func readSources(args []string) ([]source, error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}

	sources := make([]source, 0, len(args))
	for _, name := range args {
		if name == stdinName {
			data, err := io.ReadAll(io.LimitReader(os.Stdin, maxInputSize))
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			sources = append(sources, source{name: "stdin", data: data})
			continue
		}

		data, err := fileutil.ReadFile(name, maxInputSize)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{name: name, data: data})
	}

	return sources, nil
}
