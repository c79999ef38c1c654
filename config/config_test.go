package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkrot/crawl-core/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "default", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Output.Quiet)
	assert.True(t, cfg.Filter.Empty())
	assert.False(t, cfg.Stats.Rollup)
	assert.Equal(t, 10.0, cfg.Serve.RateLimit)
	assert.Equal(t, 20, cfg.Serve.RateBurst)
	assert.Equal(t, 0, cfg.Serve.MetricsPort)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:   "empty format is valid",
			modify: func(c *Config) { c.Output.Format = "" },
		},
		{
			name:   "csv format is valid",
			modify: func(c *Config) { c.Output.Format = "csv" },
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "output.format must be one of",
		},
		{
			name:    "invalid filter regex",
			modify:  func(c *Config) { c.Filter.Include = []string{"("} },
			wantErr: "invalid filter rules",
		},
		{
			name:    "negative rate limit",
			modify:  func(c *Config) { c.Serve.RateLimit = -1 },
			wantErr: "serve.rate_limit must not be negative",
		},
		{
			name:    "negative rate burst",
			modify:  func(c *Config) { c.Serve.RateBurst = -5 },
			wantErr: "serve.rate_burst must not be negative",
		},
		{
			name:    "metrics port too large",
			modify:  func(c *Config) { c.Serve.MetricsPort = 70000 },
			wantErr: "serve.metrics_port must be between",
		},
		{
			name:   "zero rate limit is valid",
			modify: func(c *Config) { c.Serve.RateLimit = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("loads full config", func(t *testing.T) {
		tmpDir := testutil.TempDir(t)
		path := testutil.WriteFile(t, tmpDir, "config.yaml", `
output:
  format: json
  color: false
  quiet: true
filter:
  exclude:
    - "\\.staging\\."
  exclude_exts: [pdf, zip]
  skip_globs:
    - "/admin/**"
stats:
  rollup: true
serve:
  rate_limit: 2.5
  rate_burst: 5
  metrics_port: 9090
`)

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "json", cfg.Output.Format)
		assert.False(t, cfg.Output.Color)
		assert.True(t, cfg.Output.Quiet)
		assert.Equal(t, []string{`\.staging\.`}, cfg.Filter.Exclude)
		assert.Equal(t, []string{"pdf", "zip"}, cfg.Filter.ExcludeExts)
		assert.Equal(t, []string{"/admin/**"}, cfg.Filter.SkipGlobs)
		assert.True(t, cfg.Stats.Rollup)
		assert.Equal(t, 2.5, cfg.Serve.RateLimit)
		assert.Equal(t, 5, cfg.Serve.RateBurst)
		assert.Equal(t, 9090, cfg.Serve.MetricsPort)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		tmpDir := testutil.TempDir(t)
		path := testutil.WriteFile(t, tmpDir, "config.yaml", "stats:\n  rollup: true\n")

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.True(t, cfg.Stats.Rollup)
		assert.Equal(t, "default", cfg.Output.Format)
		assert.Equal(t, 10.0, cfg.Serve.RateLimit)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		tmpDir := testutil.TempDir(t)

		cfg, err := LoadFromFile(filepath.Join(tmpDir, "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("malformed file returns error", func(t *testing.T) {
		tmpDir := testutil.TempDir(t)
		path := testutil.WriteFile(t, tmpDir, "config.yaml", "output: [this is not\n  a mapping\n")

		_, err := LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}
