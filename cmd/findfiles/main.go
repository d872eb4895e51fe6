// Package main implements the findfiles command.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)

	// No version option: flag parsing is disabled, so --version is an
	// ordinary argument.
	if err := fang.Execute(
		context.Background(),
		a.command(),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(exitFailure)
	}

	os.Exit(a.exitCode)
}
