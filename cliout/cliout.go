package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	// Foreground colors
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	// Bright foreground colors
	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = "->"
	ASCIIDot     = "*"
)

// Global output format setting
var globalFormat Format = FormatDefault

// noColor disables all ANSI escapes. Starts true when stdout is not a
// terminal or the NO_COLOR environment variable is set.
var noColor = !detectColorSupport()

// mu protects global state variables
var mu sync.RWMutex

// detectColorSupport reports whether stdout can render ANSI colors.
func detectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// DisableColors disables color output.
func DisableColors() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ColorsEnabled returns true if color output is enabled.
func ColorsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return !noColor
}

// colorize wraps text in the given ANSI code, or returns it unchanged
// when colors are disabled.
func colorize(color, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return color + text + Reset
}

// supportsUnicode detects if the terminal supports Unicode symbols
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	// Check Windows version and console
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code terminal, and modern PowerShell support Unicode
		term := os.Getenv("TERM_PROGRAM")
		wtSession := os.Getenv("WT_SESSION")

		// Check for Windows Terminal
		if wtSession != "" {
			return true
		}

		// Check for VS Code
		if term == "vscode" {
			return true
		}

		// Check for ConEmu
		if os.Getenv("ConEmuPID") != "" {
			return true
		}

		// PowerShell (any version) generally supports Unicode symbols
		if os.Getenv("PSModulePath") != "" || os.Getenv("POWERSHELL_DISTRIBUTION_CHANNEL") != "" {
			return true
		}

		// Check TERM environment variable
		if os.Getenv("TERM") != "" {
			return true
		}

		// Default to ASCII for old Windows Console/CMD
		return false
	}

	// Unix-like systems generally support Unicode
	return true
}

// getIcon returns the appropriate icon based on Unicode support
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return globalFormat == FormatJSON
}

// PrintJSON prints data as JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintDefault prints data in default format using a custom formatter function.
func PrintDefault(formatter func()) {
	if globalFormat == FormatDefault {
		formatter()
	}
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON format, marshals the data object.
func Print(data interface{}, formatter func()) error {
	if globalFormat == FormatJSON {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	check := getIcon(SymbolCheck, ASCIICheck)
	fmt.Printf("%s %s\n", colorize(BrightGreen, check), msg)
}

// Error prints an error message with red X
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	cross := getIcon(SymbolCross, ASCIICross)
	fmt.Printf("%s %s\n", colorize(BrightRed, cross), msg)
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	warning := getIcon(SymbolWarning, ASCIIWarning)
	fmt.Printf("%s  %s\n", colorize(BrightYellow, warning), msg)
}

// Info prints an info message with blue info icon
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	info := getIcon(SymbolInfo, ASCIIInfo)
	fmt.Printf("%s  %s\n", colorize(BrightBlue, info), msg)
}

// Detail prints an indented dim detail line
func Detail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("   %s\n", colorize(Dim, msg))
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	bullet := getIcon(SymbolDot, ASCIIDot)
	fmt.Printf("  %s %s\n", bullet, msg)
}

// Newline prints a blank line
func Newline() {
	fmt.Println()
}

// Hint prints compact hints on a single line with bullet separators.
// Example: Hint("Press Ctrl+C to stop", "Use --format json for raw output")
func Hint(hints ...string) {
	if len(hints) == 0 {
		return
	}
	sep := getIcon(" "+SymbolDot+" ", " "+ASCIIDot+" ")
	fmt.Printf("%s\n", colorize(Dim, strings.Join(hints, sep)))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Confirm prompts the user for confirmation and returns true if they confirm.
// Returns true immediately if in JSON mode (non-interactive).
// The prompt displays the message and waits for y/n input.
func Confirm(message string) bool {
	if globalFormat == FormatJSON {
		return true // Non-interactive mode, assume yes
	}
	fmt.Printf("%s [y/N]: ", colorize(BrightYellow, message))
	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false // On read error, default to no
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Printf("   %s %s\n", colorize(Dim, fmt.Sprintf("%-16s", label+":")), value)
}

// Highlight returns text highlighted in bold cyan
func Highlight(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return colorize(Bold+Cyan, msg)
}

// Emphasize returns text in bold
func Emphasize(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return colorize(Bold, msg)
}

// Muted returns muted/dim text
func Muted(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return colorize(Dim, msg)
}

// URL returns a URL rendered in bright blue
func URL(url string) string {
	return colorize(BrightBlue, url)
}

// Count returns a count badge in bold
func Count(n int) string {
	return colorize(Bold, fmt.Sprintf("%d", n))
}

// Status returns a status badge with appropriate color
func Status(status string) string {
	switch strings.ToLower(status) {
	case "valid", "ok", "success":
		return colorize(BrightGreen, status)
	case "warning", "skipped", "duplicate":
		return colorize(BrightYellow, status)
	case "invalid", "error", "failed":
		return colorize(BrightRed, status)
	case "info", "unknown":
		return colorize(BrightBlue, status)
	default:
		return status
	}
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	// Print header
	fmt.Print("   ")
	for _, header := range headers {
		fmt.Printf("%s  ", colorize(Bold, fmt.Sprintf("%-*s", widths[header], header)))
	}
	fmt.Println()

	// Print separator
	fmt.Print("   ")
	for _, header := range headers {
		fmt.Print(strings.Repeat("─", widths[header]) + "  ")
	}
	fmt.Println()

	// Print rows
	for _, row := range rows {
		fmt.Print("   ")
		for _, header := range headers {
			fmt.Printf("%-*s  ", widths[header], row[header])
		}
		fmt.Println()
	}
}
