// Package logger writes search progress, matches and diagnostics to the
// console.
//
// Matches and progress lines go to the output writer, errors to the error
// writer. Errors are colored when the error writer is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console implements search.Reporter for terminal output.
type Console struct {
	out      io.Writer
	errOut   io.Writer
	progress bool
	errColor *color.Color
	warnTag  *color.Color
}

// NewConsole creates a Console. When progress is false the "looking for"
// lines are suppressed.
func NewConsole(out, errOut io.Writer, progress bool) *Console {
	errColor := color.New(color.FgRed)
	warnTag := color.New(color.FgYellow, color.Bold)
	if !isTerminal(errOut) {
		errColor.DisableColor()
		warnTag.DisableColor()
	}

	return &Console{
		out:      out,
		errOut:   errOut,
		progress: progress,
		errColor: errColor,
		warnTag:  warnTag,
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		// false when NO_COLOR is set or the stream is not a TTY
		return !color.NoColor
	}
	return false
}

// Progress prints the existence check about to happen.
func (c *Console) Progress(name, dir string) {
	if !c.progress {
		return
	}
	fmt.Fprintf(c.out, "looking for %s in %s\n", name, dir)
}

// Match prints one canonical path.
func (c *Console) Match(path string) {
	fmt.Fprintln(c.out, path)
}

// Error prints a non-fatal error.
func (c *Console) Error(err error) {
	c.errColor.Fprintln(c.errOut, err.Error())
}

// Warn prints a tagged warning line.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintf(c.errOut, "%s %s\n", c.warnTag.Sprint("warning:"), fmt.Sprintf(format, args...))
}
