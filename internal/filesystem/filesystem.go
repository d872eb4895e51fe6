// Package filesystem provides the read-only file system probes used by the
// search engine: directory listing, regular-file checks and canonical path
// resolution.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taigrr/findfiles/internal/types"
)

// Service provides file system operations for a search run.
type Service struct {
	followSymlinks bool
}

// New creates a new Service. When followSymlinks is set, symbolic links are
// classified by what they point to, so a link to a directory lists as a
// directory.
func New(followSymlinks bool) *Service {
	return &Service{followSymlinks: followSymlinks}
}

// ListDirectory reads dir. It never fails outright: an unreadable directory
// yields a listing whose Err is set, so callers can tell it apart from an
// empty one.
func (s *Service) ListDirectory(dir string) types.DirectoryListing {
	listing := types.DirectoryListing{Path: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			listing.Err = fmt.Errorf("directory not found: %s", dir)
		case errors.Is(err, fs.ErrPermission):
			listing.Err = fmt.Errorf("permission denied: %s", dir)
		default:
			listing.Err = fmt.Errorf("failed to list directory: %s - %w", dir, err)
		}
		return listing
	}

	listing.Entries = make([]types.Entry, 0, len(entries))
	for _, entry := range entries {
		e := types.Entry{
			Name:   entry.Name(),
			IsDir:  entry.IsDir(),
			IsFile: entry.Type().IsRegular(),
		}

		if s.followSymlinks && entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(dir, entry.Name()))
			if err == nil {
				e.IsDir = info.IsDir()
				e.IsFile = info.Mode().IsRegular()
			}
		}

		listing.Entries = append(listing.Entries, e)
	}

	return listing
}

// IsRegularFile reports whether path exists and is a regular file, following
// symbolic links.
func (s *Service) IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Canonical returns the absolute, symlink-free, cleaned form of path.
func (s *Service) Canonical(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return filepath.Clean(resolved), nil
}
