// Package config provides YAML configuration loading for crawl-core tools.
//
// Configuration is layered: defaults, then the user-level file at
// ~/.config/crawlcore/config.yaml, then the project-level .crawlcore.yaml in
// the working directory. Later layers only override the keys they set.
//
// # Usage
//
//	cfg, err := config.NewLoader().Load()
//	if err != nil {
//	    return err
//	}
//	if cfg.Stats.Rollup {
//	    // aggregate per-host counts by registrable domain
//	}
//
// An explicit file can be loaded without layering:
//
//	cfg, err := config.LoadFromFile("crawlcore.yaml")
//
// # File Format
//
//	output:
//	  format: default     # default, json, csv, yaml
//	  color: true
//	  quiet: false
//	filter:
//	  exclude:
//	    - "\\.staging\\."
//	  exclude_exts: [pdf, zip]
//	  skip_globs:
//	    - "/admin/**"
//	stats:
//	  rollup: false
//	serve:
//	  rate_limit: 10      # requests per second per tool, 0 = unlimited
//	  rate_burst: 20
//	  metrics_port: 0     # 0 disables the Prometheus endpoint
//
// Only two environment variables are consulted anywhere in the toolchain:
// CRAWLCORE_DEBUG for logging and NO_COLOR for output.
package config
