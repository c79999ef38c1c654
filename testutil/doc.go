// Package testutil provides common testing utilities for crawl-core packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Writing fixture files into a directory (WriteFile)
//   - Common string assertions (Contains)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	import (
//	    "testing"
//	    "github.com/linkrot/crawl-core/testutil"
//	)
//
//	func TestCommand(t *testing.T) {
//	    // Capture stdout from a command
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runCommand()
//	    })
//
//	    // Check output contains expected text
//	    if !testutil.Contains(output, "Valid") {
//	        t.Error("expected valid URL count")
//	    }
//	}
//
//	func TestWithFixtures(t *testing.T) {
//	    // Create a URL list fixture on disk
//	    tmpDir := testutil.TempDir(t)
//	    listPath := testutil.WriteFile(t, tmpDir, "urls.txt", "example.com\n")
//	    // tmpDir is automatically cleaned up after test
//	}
package testutil
