// Package options parses the findfiles command line into a types.Config.
//
// The grammar is a single-dash one: the first argument is the
// search target, followed in any order by -help, -r, -reg, -dir <path>
// and -ext <e1,e2,...>. Parsing never terminates the process; callers
// decide what to print and which exit code to use.
package options

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/taigrr/findfiles/internal/types"
)

const (
	flagHelp      = "-help"
	flagRecursive = "-r"
	flagRegex     = "-reg"
	flagDir       = "-dir"
	flagExt       = "-ext"
)

var (
	// ErrHelp is returned when usage was requested, either explicitly with
	// -help or by giving no arguments at all.
	ErrHelp = errors.New("help requested")

	// ErrUsage is wrapped by every command line error.
	ErrUsage = errors.New("usage error")

	// ErrMissingTarget is returned for a value that follows no -dir or -ext.
	ErrMissingTarget error = &usageError{msg: "Please supply minimum number of arguments from the following"}
)

// usageError is a fixed diagnostic that wraps ErrUsage.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) Unwrap() error {
	return ErrUsage
}

// InvalidOptionError reports a flag that is not part of the grammar.
type InvalidOptionError struct {
	Option string
}

func (e *InvalidOptionError) Error() string {
	return e.Option + " is an invalid option. Please supply valid options from the following list"
}

func (e *InvalidOptionError) Unwrap() error {
	return ErrUsage
}

// MissingArgumentError reports -dir or -ext without a value.
type MissingArgumentError struct {
	Option string
}

func (e *MissingArgumentError) Error() string {
	return strings.TrimPrefix(e.Option, "-") + " is missing an arg. Please supply valid arg"
}

func (e *MissingArgumentError) Unwrap() error {
	return ErrUsage
}

// Parse turns args (without the program name) into a Config.
func Parse(args []string) (types.Config, error) {
	if len(args) == 0 || args[0] == flagHelp {
		return types.Config{}, ErrHelp
	}

	cfg := types.NewConfig(args[0])
	pending := ""

	for _, arg := range args[1:] {
		if strings.HasPrefix(arg, "-") {
			if arg == flagHelp {
				return types.Config{}, ErrHelp
			}
			if pending != "" {
				return types.Config{}, &MissingArgumentError{Option: pending}
			}

			switch arg {
			case flagRecursive:
				cfg.Recursive = true
			case flagRegex:
				cfg.Regex = true
			case flagDir, flagExt:
				pending = arg
			default:
				return types.Config{}, &InvalidOptionError{Option: arg}
			}
			continue
		}

		switch pending {
		case flagDir:
			cfg.BaseDir = arg
		case flagExt:
			cfg.Extensions = SplitExtensions(arg)
		default:
			return types.Config{}, ErrMissingTarget
		}
		pending = ""
	}

	if pending != "" {
		return types.Config{}, &MissingArgumentError{Option: pending}
	}

	cfg.BaseDir = types.WithSeparator(cfg.BaseDir)
	return cfg, nil
}

// SplitExtensions strips all whitespace from list and splits it on commas.
// Empty tokens are dropped.
func SplitExtensions(list string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, list)

	var exts []string
	for ext := range strings.SplitSeq(stripped, ",") {
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Usage writes the command line synopsis to w.
func Usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s filetofind [-option arg]\n", name)
	fmt.Fprintln(w, "-help                     :: print out a help page and exit the program.")
	fmt.Fprintln(w, "-r                        :: execute the command recursively in subdirectories.")
	fmt.Fprintln(w, "-reg                      :: treat `filetofind` as a regular expression when searching.")
	fmt.Fprintln(w, "-dir [directory]          :: find files starting in the specified directory.")
	fmt.Fprintln(w, "-ext [ext1,ext2,...]      :: find files matching [filetofind] with extensions [ext1, ext2,...].")
}
