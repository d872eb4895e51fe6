// Package uri builds file:// URIs for matched paths.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURI returns the file:// URI of an absolute path. Each path segment is
// percent-encoded; separators are kept as slashes.
func FileURI(absPath string) string {
	slashed := filepath.ToSlash(absPath)

	parts := strings.Split(slashed, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	encoded := strings.Join(parts, "/")

	// Windows drive paths have no leading slash.
	if !strings.HasPrefix(encoded, "/") {
		encoded = "/" + encoded
	}

	return "file://" + encoded
}
