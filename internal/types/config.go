// Package types defines the data structures shared by the option parser,
// the search engine and the command front ends.
package types

import (
	"os"
	"strings"
)

// DefaultBaseDir is the directory searched when -dir is not given.
const DefaultBaseDir = "." + string(os.PathSeparator)

type (
	// Config is the normalized result of parsing the command line.
	Config struct {
		Target     string   `json:"target" yaml:"target"`
		BaseDir    string   `json:"baseDir" yaml:"baseDir"`
		Recursive  bool     `json:"recursive,omitempty" yaml:"recursive,omitempty"`
		Regex      bool     `json:"regex,omitempty" yaml:"regex,omitempty"`
		Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	}
)

// NewConfig returns a Config for target rooted at the default directory.
func NewConfig(target string) Config {
	return Config{
		Target:  target,
		BaseDir: DefaultBaseDir,
	}
}

// Patterns returns the effective pattern of every search pass: the target
// itself, or target.ext for each extension.
func (c Config) Patterns() []string {
	if len(c.Extensions) == 0 {
		return []string{c.Target}
	}

	patterns := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		patterns = append(patterns, c.Target+"."+ext)
	}
	return patterns
}

// Dir returns BaseDir terminated by exactly one path separator.
func (c Config) Dir() string {
	return WithSeparator(c.BaseDir)
}

// WithSeparator appends a path separator to dir unless it already ends in one.
// An empty dir becomes the default base directory.
func WithSeparator(dir string) string {
	if dir == "" {
		return DefaultBaseDir
	}
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + string(os.PathSeparator)
}
