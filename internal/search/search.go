// Package search walks a directory tree looking for files by literal name or
// anchored regular expression.
package search

import (
	"fmt"
	"os"
	"regexp"

	"github.com/taigrr/findfiles/internal/filesystem"
	"github.com/taigrr/findfiles/internal/pathfilter"
	"github.com/taigrr/findfiles/internal/types"
)

// DefaultMaxDepth bounds recursion when no depth is configured.
const DefaultMaxDepth = 256

// Reporter receives the events of a search run in discovery order.
type Reporter interface {
	// Progress is called before every existence check of name in dir.
	Progress(name, dir string)
	// Match is called once per distinct canonical path.
	Match(path string)
	// Error is called for failures that do not stop the search.
	Error(err error)
}

// Options tune a Service.
type Options struct {
	// MaxDepth is the deepest directory level visited below the base
	// directory. Negative means unlimited.
	MaxDepth int
	// WarnUnreadable reports directories that cannot be listed instead of
	// silently treating them as empty.
	WarnUnreadable bool
	// Filter excludes paths relative to the base directory.
	Filter *pathfilter.PathFilter
}

// DefaultOptions returns the options used when no settings file exists.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// FileSystem is the set of probes a search needs. *filesystem.Service
// implements it.
type FileSystem interface {
	ListDirectory(dir string) types.DirectoryListing
	IsRegularFile(path string) bool
	Canonical(path string) (string, error)
}

// Service runs searches against the file system.
type Service struct {
	fs   FileSystem
	opts Options
}

// New creates a new search Service. A nil fsys uses the real file system,
// following symbolic links.
func New(fsys FileSystem, opts Options) *Service {
	if fsys == nil {
		fsys = filesystem.New(true)
	}
	if opts.Filter == nil {
		opts.Filter = pathfilter.New(nil)
	}
	return &Service{
		fs:   fsys,
		opts: opts,
	}
}

// PatternError is returned when a regular expression does not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regular expression %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Compile compiles pattern so that it must match a whole file name.
// pattern is validated on its own first: wrapped unchecked, an unbalanced
// ')' would close the anchoring group.
func Compile(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// Run searches according to cfg, one pass per pattern, reporting to r.
// The only error returned is an invalid regular expression, detected before
// anything is visited.
func (s *Service) Run(cfg types.Config, r Reporter) error {
	patterns := cfg.Patterns()

	var compiled []*regexp.Regexp
	if cfg.Regex {
		compiled = make([]*regexp.Regexp, 0, len(patterns))
		for _, pattern := range patterns {
			re, err := Compile(pattern)
			if err != nil {
				return err
			}
			compiled = append(compiled, re)
		}
	}

	w := &walker{
		Service:  s,
		reporter: r,
		seen:     make(map[string]bool),
	}
	base := cfg.Dir()

	for i, pattern := range patterns {
		w.visited = make(map[string]bool)

		switch {
		case cfg.Regex && cfg.Recursive:
			w.walkRegex(base, "", compiled[i], 0)
		case cfg.Regex:
			w.scanRegex(base, "", compiled[i])
		case cfg.Recursive:
			w.check(base, "", pattern)
			w.walkLiteral(base, "", pattern, 0)
		default:
			w.check(base, "", pattern)
		}
	}

	return nil
}

// walker holds the state of one Run.
type walker struct {
	*Service
	reporter Reporter
	// seen holds every canonical path already reported.
	seen map[string]bool
	// visited holds the canonical directories entered during the current pass.
	visited map[string]bool
}

// check looks for a regular file called name directly in dir.
func (w *walker) check(dir, rel, name string) {
	if !w.opts.Filter.Empty() && !w.opts.Filter.IsAllowed(rel+name) {
		return
	}

	w.reporter.Progress(name, dir)

	path := dir + name
	if !w.fs.IsRegularFile(path) {
		return
	}

	canonical, err := w.fs.Canonical(path)
	if err != nil {
		w.reporter.Error(err)
		return
	}

	if w.seen[canonical] {
		return
	}
	w.seen[canonical] = true
	w.reporter.Match(canonical)
}

// list reads dir, marking it visited. It returns false when dir was already
// visited or could not be read.
func (w *walker) list(dir string) (types.DirectoryListing, bool) {
	key := dir
	if canonical, err := w.fs.Canonical(dir); err == nil {
		key = canonical
	}
	if w.visited[key] {
		return types.DirectoryListing{}, false
	}
	w.visited[key] = true

	listing := w.fs.ListDirectory(dir)
	if !listing.Readable() {
		if w.opts.WarnUnreadable {
			w.reporter.Error(listing.Err)
		}
		return listing, false
	}
	return listing, true
}

// descend reports whether the children of dir at depth may be visited and
// returns their relative and absolute directory paths.
func (w *walker) descend(dir, rel string, entry types.Entry, depth int) (string, string, bool) {
	if !entry.IsDir {
		return "", "", false
	}
	if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
		return "", "", false
	}

	childRel := rel + entry.Name + "/"
	if !w.opts.Filter.Empty() && !w.opts.Filter.IsDirAllowed(childRel) {
		return "", "", false
	}
	return dir + entry.Name + string(os.PathSeparator), childRel, true
}

// walkLiteral checks every subdirectory of dir for name, pre-order.
func (w *walker) walkLiteral(dir, rel, name string, depth int) {
	listing, ok := w.list(dir)
	if !ok {
		return
	}

	for _, entry := range listing.Entries {
		child, childRel, ok := w.descend(dir, rel, entry, depth)
		if !ok {
			continue
		}
		w.check(child, childRel, name)
		w.walkLiteral(child, childRel, name, depth+1)
	}
}

// scanRegex checks the files directly in dir against re.
func (w *walker) scanRegex(dir, rel string, re *regexp.Regexp) {
	listing, ok := w.list(dir)
	if !ok {
		return
	}

	for _, entry := range listing.Entries {
		if entry.IsFile && re.MatchString(entry.Name) {
			w.check(dir, rel, entry.Name)
		}
	}
}

// walkRegex checks the files in dir against re and descends into every
// subdirectory, whether or not its name matches.
func (w *walker) walkRegex(dir, rel string, re *regexp.Regexp, depth int) {
	listing, ok := w.list(dir)
	if !ok {
		return
	}

	for _, entry := range listing.Entries {
		if entry.IsFile {
			if re.MatchString(entry.Name) {
				w.check(dir, rel, entry.Name)
			}
			continue
		}

		child, childRel, ok := w.descend(dir, rel, entry, depth)
		if ok {
			w.walkRegex(child, childRel, re, depth+1)
		}
	}
}
