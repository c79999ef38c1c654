// Package browser provides cross-platform utilities for launching URLs in web browsers.
//
// The CLI uses it to open parsed results: after a list is cleaned up, the
// first N valid URLs can be handed to the system browser for a quick spot
// check. Launching delegates to github.com/pkg/browser; this package adds
// scheme validation, target selection, and a bounded wait.
//
// # Browser Targets
//
// Three targets are supported:
//   - TargetDefault: the system default browser (alias for TargetSystem)
//   - TargetSystem: the system default browser
//   - TargetNone: launching disabled, the no-op for scripts and CI
//
// # Usage
//
// Open the first valid URL from a parse result:
//
//	result := urllist.Parse(text)
//	if len(result.Valid) > 0 {
//	    err := browser.Launch(browser.LaunchOptions{
//	        URL:    result.Valid[0],
//	        Target: browser.TargetDefault,
//	    })
//	    if err != nil {
//	        log.Printf("could not open browser: %v", err)
//	    }
//	}
//
// Validate a target taken from a flag:
//
//	if !browser.IsValid(flagValue) {
//	    return fmt.Errorf("invalid browser target %q, valid targets: %s",
//	        flagValue, browser.FormatValidTargets())
//	}
//
// # Error Handling
//
// Launch returns immediately. It errors up front for non-http(s) schemes,
// so list entries like file: or javascript: URLs can never reach a shell
// handler. Failures of the actual launch are reported to stderr and do not
// fail the caller; opening a browser is never load-bearing.
//
// All functions are safe for concurrent use.
package browser
