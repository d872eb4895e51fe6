package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taigrr/findfiles/internal/config"
	"github.com/taigrr/findfiles/internal/logger"
	"github.com/taigrr/findfiles/internal/options"
)

const programName = "findfiles"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// app carries the output streams and the exit code of one invocation.
type app struct {
	stdout       io.Writer
	stderr       io.Writer
	settingsPath string
	exitCode     int
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:       stdout,
		stderr:       stderr,
		settingsPath: config.Path(),
	}
}

func (a *app) command() *cobra.Command {
	return &cobra.Command{
		Use:   programName + " <target> [-help] [-r] [-reg] [-dir <path>] [-ext <e1,e2,...>]",
		Short: "Find files by name, extension list or regular expression",
		Long: `findfiles searches a directory tree for files matching a name, a name
combined with a list of extensions, or a regular expression that must
match the whole file name, and prints the canonical path of each match.

Defaults such as the maximum recursion depth and ignored directories can
be set in .findfiles.yaml or in the file named by $FINDFILES_CONFIG.`,
		Example: `findfiles notes.txt
findfiles report -ext csv,json -dir ~/work
findfiles 'test_.*' -reg -r -ext go`,
		// The grammar uses single-dash long flags; options.Parse owns it.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.exitCode = a.run(args)
			return nil
		},
	}
}

// run executes one search and returns the process exit code.
func (a *app) run(args []string) int {
	cfg, err := options.Parse(args)
	if err != nil {
		if errors.Is(err, options.ErrHelp) {
			options.Usage(a.stdout, programName)
			return exitOK
		}
		fmt.Fprintln(a.stdout, err)
		options.Usage(a.stdout, programName)
		return exitUsage
	}

	settings, err := config.Load(a.settingsPath)
	if err != nil {
		logger.NewConsole(a.stdout, a.stderr, false).Error(err)
		return exitFailure
	}

	console := logger.NewConsole(a.stdout, a.stderr, settings.Progress)
	if len(cfg.Extensions) == 0 && hasExtFlag(args) {
		console.Warn("extension list is empty, searching for %s alone", cfg.Target)
	}

	if err := settings.NewSearch().Run(cfg, console); err != nil {
		console.Error(err)
		return exitFailure
	}

	return exitOK
}

func hasExtFlag(args []string) bool {
	for _, arg := range args[1:] {
		if arg == "-ext" {
			return true
		}
	}
	return false
}
