// Package pathfilter decides which paths a recursive search may visit.
package pathfilter

import (
	"regexp"
	"strings"

	"github.com/taigrr/findfiles/internal/types"
)

// PathFilter skips paths matching any of its ignore globs. Paths are
// relative to the search base directory and use '/' as separator;
// directories carry a trailing '/'.
type PathFilter struct {
	patterns []*regexp.Regexp
}

// New creates a PathFilter from config. A nil config ignores nothing.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{}
	if config == nil {
		return pf
	}

	for _, pattern := range config.IgnoredPatterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}
		pf.patterns = append(pf.patterns, globToRegexp(pattern))
	}
	return pf
}

// globToRegexp converts a glob pattern to an anchored regex.
// ** matches anything, * anything but '/', ? a single non-'/' character.
func globToRegexp(pattern string) *regexp.Regexp {
	normalized := strings.ReplaceAll(pattern, "\\", "/")

	expr := regexp.QuoteMeta(normalized)
	expr = strings.ReplaceAll(expr, `\*\*`, ".*")
	expr = strings.ReplaceAll(expr, `\*`, "[^/]*")
	expr = strings.ReplaceAll(expr, `\?`, "[^/]")

	// QuoteMeta output is always a valid expression.
	return regexp.MustCompile("^" + expr + "$")
}

// IsAllowed checks if a path is allowed based on the filter rules.
func (pf *PathFilter) IsAllowed(path string) bool {
	if pf == nil {
		return true
	}

	normalizedPath := strings.ReplaceAll(path, "\\", "/")
	for _, re := range pf.patterns {
		if re.MatchString(normalizedPath) {
			return false
		}
	}
	return true
}

// IsDirAllowed checks a directory path, which is matched with a trailing '/'
// so that "name/**" patterns exclude the directory itself.
func (pf *PathFilter) IsDirAllowed(path string) bool {
	normalizedPath := strings.ReplaceAll(path, "\\", "/")
	if !strings.HasSuffix(normalizedPath, "/") {
		normalizedPath += "/"
	}
	return pf.IsAllowed(normalizedPath)
}

// Empty reports whether the filter ignores nothing.
func (pf *PathFilter) Empty() bool {
	return pf == nil || len(pf.patterns) == 0
}
