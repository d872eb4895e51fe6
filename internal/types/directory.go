package types

type (
	// Entry is one child of a listed directory. Symbolic links are classified
	// by their target.
	Entry struct {
		Name   string `json:"name"`
		IsDir  bool   `json:"isDir,omitempty"`
		IsFile bool   `json:"isFile,omitempty"`
	}

	// DirectoryListing is the result of reading one directory. A listing with
	// a nil Err and no Entries is an empty directory; a non-nil Err means the
	// directory could not be read at all.
	DirectoryListing struct {
		Path    string  `json:"path"`
		Entries []Entry `json:"entries"`
		Err     error   `json:"-"`
	}

	// PathFilterConfig contains configuration for the path filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns" yaml:"ignore"`
	}
)

// Readable reports whether the directory was listed successfully.
func (l DirectoryListing) Readable() bool {
	return l.Err == nil
}
