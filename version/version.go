// Package version provides build version information and a reusable version
// command, eliminating duplicated version boilerplate.
package version

import (
	"fmt"
	"runtime"
)

// Name is the binary name reported by the version command.
const Name = "linklist"

// Build metadata, overridden at build time via
// -ldflags "-X github.com/linkrot/crawl-core/version.Version=...".
var (
	Version   = "0.0.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info holds version information for the binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the version information for this build.
func Get() *Info {
	return &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", Name, i.Version, i.GitCommit, i.BuildDate)
}
