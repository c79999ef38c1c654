// Package fileutil provides file system utilities for reading URL lists and
// writing report files.
//
// This package offers size-limited reads, atomic file writes, and directory
// management with retry logic. All operations are designed to be safe in
// concurrent environments and protect against common file system issues.
//
// # Key Features
//
//   - Size-limited file reads with an explicit error when the limit is exceeded
//   - Atomic file writes with retry logic to prevent partial writes
//   - Directory creation with secure permissions (0750)
//
// # Atomic Write Operations
//
// AtomicWriteFile ensures that files are never left in a partial state by
// writing to a temporary file first, then atomically renaming it to the
// target path. This approach includes:
//
//   - Unique temporary file names to avoid concurrent writer collisions
//   - Explicit sync operations to ensure data is flushed to disk
//   - Retry logic (5 attempts with 20ms backoff) for rename operations
//   - Automatic cleanup of temporary files on failure
//
// # Example Usage
//
//	// Read a URL list, refusing anything over the default limit
//	data, err := fileutil.ReadFile("urls.txt", fileutil.DefaultMaxSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Write a report atomically
//	if err := fileutil.AtomicWriteFile("report.json", data, fileutil.FilePermission); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Ensure the output directory exists with secure permissions
//	if err := fileutil.EnsureDir("./reports"); err != nil {
//	    log.Fatal(err)
//	}
//
// # File Permissions
//
// The package uses secure default permissions:
//
//   - DirPermission (0750): rwxr-x--- - Owner can read/write/execute, group can read/execute
//   - FilePermission (0644): rw-r--r-- - Owner can read/write, others can read only
//
// # Error Handling
//
// Functions return descriptive errors with context. Atomic writes clean up
// temporary files on any failure. All errors are wrapped with fmt.Errorf and
// %w for proper error chains.
package fileutil
