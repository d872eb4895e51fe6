// Package config loads the optional YAML settings file that supplies search
// defaults the command line grammar has no flags for.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/findfiles/internal/filesystem"
	"github.com/taigrr/findfiles/internal/pathfilter"
	"github.com/taigrr/findfiles/internal/search"
	"github.com/taigrr/findfiles/internal/types"
)

const (
	// EnvPath names the environment variable overriding the settings path.
	EnvPath = "FINDFILES_CONFIG"

	// DefaultPath is looked up in the working directory.
	DefaultPath = ".findfiles.yaml"
)

// Settings holds the values read from the settings file.
type Settings struct {
	// MaxDepth bounds recursion; negative means unlimited.
	MaxDepth int `yaml:"maxDepth"`
	// Ignore lists glob patterns, relative to the base directory, that are
	// never visited.
	Ignore []string `yaml:"ignore"`
	// Progress enables the "looking for" lines on stdout.
	Progress bool `yaml:"progress"`
	// WarnUnreadable reports directories that cannot be listed.
	WarnUnreadable bool `yaml:"warnUnreadable"`
	// FollowSymlinks treats links to directories as directories.
	FollowSymlinks bool `yaml:"followSymlinks"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		MaxDepth:       search.DefaultMaxDepth,
		Progress:       true,
		FollowSymlinks: true,
	}
}

// Path returns the settings file location.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the settings file at path. A missing file yields Default().
// Unknown keys are rejected.
func Load(path string) (Settings, error) {
	settings := Default()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to open settings: %s - %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("failed to parse settings: %s - %w", path, err)
	}

	return settings, nil
}

// SearchOptions converts the settings into engine options.
func (s Settings) SearchOptions() search.Options {
	return search.Options{
		MaxDepth:       s.MaxDepth,
		WarnUnreadable: s.WarnUnreadable,
		Filter:         pathfilter.New(&types.PathFilterConfig{IgnoredPatterns: s.Ignore}),
	}
}

// NewSearch builds a search service configured by s.
func (s Settings) NewSearch() *search.Service {
	return search.New(filesystem.New(s.FollowSymlinks), s.SearchOptions())
}
