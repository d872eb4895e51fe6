package main

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/findfiles/internal/options"
	"github.com/taigrr/findfiles/internal/search"
	"github.com/taigrr/findfiles/internal/types"
	"github.com/taigrr/findfiles/internal/uri"
)

func handleFind(ctx context.Context, req *mcp.CallToolRequest, input FindInput) (*mcp.CallToolResult, FindOutput, error) {
	cfg, err := findConfig(input)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	collector := search.NewCollector()
	if err := settings.NewSearch().Run(cfg, collector); err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	matches := collector.Result.Matches
	total := len(matches)
	truncated := false
	if input.Limit > 0 && total > input.Limit {
		matches = matches[:input.Limit]
		truncated = true
	}

	uris := make([]string, 0, len(matches))
	for _, m := range matches {
		uris = append(uris, uri.FileURI(m))
	}

	return nil, FindOutput{
		Matches:    matches,
		URIs:       uris,
		Errors:     collector.Result.Errors,
		TotalFound: total,
		Truncated:  truncated,
	}, nil
}

// findConfig validates input and converts it to a search configuration.
func findConfig(input FindInput) (types.Config, error) {
	target := strings.TrimSpace(input.Target)
	if target == "" {
		return types.Config{}, errors.New("target cannot be empty")
	}

	cfg := types.NewConfig(target)
	cfg.Recursive = input.Recursive
	cfg.Regex = input.Regex
	if dir := strings.TrimSpace(input.Directory); dir != "" {
		cfg.BaseDir = types.WithSeparator(dir)
	}
	for _, ext := range input.Extensions {
		cfg.Extensions = append(cfg.Extensions, options.SplitExtensions(ext)...)
	}

	return cfg, nil
}
