// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (default human-readable and JSON)
//   - ANSI color support with automatic downgrade for non-terminal output
//   - Unicode symbol detection with ASCII fallbacks for legacy terminals
//   - Tables, labeled values, and interactive prompts
//
// # Basic Usage
//
//	import "github.com/linkrot/crawl-core/cliout"
//
//	// Print success message
//	cliout.Success("Parsed %d URLs", len(result.Valid))
//
//	// Print error message
//	cliout.Error("Parse failed: %s", err)
//
//	// Print warning
//	cliout.Warning("%d lines failed validation", len(result.Invalid))
//
//	// Print info message
//	cliout.Info("Reading from stdin")
//
// # Output Formats
//
// The package supports two output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    log.Fatal(err)
//	}
//
// Check the current format:
//
//	if cliout.IsJSON() {
//	    // Skip interactive prompts
//	}
//
// # Color Handling
//
// Colors are enabled only when stdout is a terminal (golang.org/x/term) and
// the NO_COLOR environment variable is unset. DisableColors and ForceColor
// override the detection in either direction, for --no-color flags and for
// tests respectively.
//
// # Unicode Detection
//
// The package automatically detects terminal Unicode support and falls back to
// ASCII symbols on legacy terminals. Detection includes:
//   - Windows Terminal (via WT_SESSION environment variable)
//   - VS Code integrated terminal (via TERM_PROGRAM environment variable)
//   - PowerShell (via PSModulePath or POWERSHELL_DISTRIBUTION_CHANNEL)
//   - ConEmu (via ConEmuPID environment variable)
//   - Unix-like systems (assumed to support Unicode)
//
// Old Windows Command Prompt (cmd.exe) without these environment variables will
// use ASCII fallback symbols.
//
// # Hybrid Output
//
// The Print function supports hybrid output where you provide both JSON data and
// a formatter function:
//
//	err := cliout.Print(result, func() {
//	    cliout.Success("Valid: %s", cliout.Count(len(result.Valid)))
//	})
//
// In JSON mode, the data is marshaled to JSON. In default mode, the formatter is called.
//
// # Tables
//
// Create simple tables with automatic column width calculation:
//
//	headers := []string{"Domain", "URLs"}
//	rows := []cliout.TableRow{
//	    {"Domain": "example.com", "URLs": "12"},
//	    {"Domain": "github.com", "URLs": "3"},
//	}
//	cliout.Table(headers, rows)
//
// # Interactive Prompts
//
// The Confirm function prompts for user confirmation:
//
//	if cliout.Confirm("Open 25 URLs in the browser?") {
//	    // User confirmed
//	}
//
// In JSON mode, Confirm always returns true (non-interactive).
package cliout
