// Package main implements an MCP server exposing the findfiles search.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/findfiles/internal/buildinfo"
	"github.com/taigrr/findfiles/internal/config"
)

var settings config.Settings

func main() {
	cmd := &cobra.Command{
		Use:   "findfiles-mcp [settings-file]",
		Short: "MCP server for finding files",
		Long: `findfiles-mcp is a Model Context Protocol (MCP) server that lets any
MCP-compatible harness search directory trees for files by name,
extension list or anchored regular expression, the same way the
findfiles command does.`,
		Example: `findfiles-mcp
findfiles-mcp ~/.config/findfiles.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runServer,
	}

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(buildinfo.Version()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	path := config.Path()
	if len(args) > 0 {
		path = args[0]
	}

	var err error
	settings, err = config.Load(path)
	if err != nil {
		return err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "findfiles-mcp",
		Version: buildinfo.Version(),
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
