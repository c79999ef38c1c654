package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linkrot/crawl-core/urlfilter"
)

// Config represents the complete crawl-core configuration.
type Config struct {
	Output OutputConfig    `yaml:"output"`
	Filter urlfilter.Rules `yaml:"filter"`
	Stats  StatsConfig     `yaml:"stats"`
	Serve  ServeConfig     `yaml:"serve"`
}

// OutputConfig configures CLI output behavior.
type OutputConfig struct {
	// Format is the default output format (default, json, csv, yaml)
	Format string `yaml:"format"`
	// Color enables ANSI colors (still auto-disabled when stdout is not a terminal)
	Color bool `yaml:"color"`
	// Quiet suppresses non-essential output
	Quiet bool `yaml:"quiet"`
}

// StatsConfig configures statistics reporting.
type StatsConfig struct {
	// Rollup aggregates per-host counts to registrable domains
	Rollup bool `yaml:"rollup"`
}

// ServeConfig configures the MCP server.
type ServeConfig struct {
	// RateLimit is the per-tool request rate in requests per second (0 = unlimited)
	RateLimit float64 `yaml:"rate_limit"`
	// RateBurst is the per-tool burst size
	RateBurst int `yaml:"rate_burst"`
	// MetricsPort exposes Prometheus metrics on this port when non-zero
	MetricsPort int `yaml:"metrics_port"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "default",
			Color:  true,
		},
		Serve: ServeConfig{
			RateLimit: 10,
			RateBurst: 20,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "default", "text", "json", "csv", "yaml":
	default:
		return fmt.Errorf("output.format must be one of: default, text, json, csv, yaml (got %q)", c.Output.Format)
	}

	if _, err := urlfilter.New(c.Filter); err != nil {
		return fmt.Errorf("invalid filter rules: %w", err)
	}

	if c.Serve.RateLimit < 0 {
		return fmt.Errorf("serve.rate_limit must not be negative")
	}
	if c.Serve.RateBurst < 0 {
		return fmt.Errorf("serve.rate_burst must not be negative")
	}
	if c.Serve.MetricsPort < 0 || c.Serve.MetricsPort > 65535 {
		return fmt.Errorf("serve.metrics_port must be between 0 and 65535")
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file. A missing file returns
// the defaults; a malformed file returns an error.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
