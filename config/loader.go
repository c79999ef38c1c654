package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/linkrot/crawl-core/fileutil"
	"github.com/linkrot/crawl-core/logutil"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = ".crawlcore.yaml"
	// UserConfigDir is the directory for user-level config, relative to home
	UserConfigDir = ".config/crawlcore"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger  *logutil.ComponentLogger
	homeDir string
	workDir string
}

// NewLoader creates a new configuration loader rooted at the user's home
// directory and the current working directory.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()
	return &Loader{
		logger:  logutil.NewLogger("config"),
		homeDir: home,
		workDir: cwd,
	}
}

// UserConfigPath returns the path of the user-level config file, or "" when
// the home directory is unknown.
func (l *Loader) UserConfigPath() string {
	if l.homeDir == "" {
		return ""
	}
	return filepath.Join(l.homeDir, UserConfigDir, UserConfigFile)
}

// ProjectConfigPath returns the path of the project-level config file, or ""
// when the working directory is unknown.
func (l *Loader) ProjectConfigPath() string {
	if l.workDir == "" {
		return ""
	}
	return filepath.Join(l.workDir, ProjectConfigFile)
}

// Load loads configuration with layered precedence:
//  1. Default config
//  2. User config (~/.config/crawlcore/config.yaml)
//  3. Project config (.crawlcore.yaml in the working directory)
//
// Later layers only override the keys they actually set, so a project file
// can flip a single flag without restating the user config.
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	for _, path := range []string{l.UserConfigPath(), l.ProjectConfigPath()} {
		if path == "" || !fileutil.Exists(path) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			l.logger.Warn("failed to read config layer", "path", path, "error", err.Error())
			continue
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		l.logger.Debug("loaded config layer", "path", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
