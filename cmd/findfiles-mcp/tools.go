package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// FindInput contains parameters for a file search.
	FindInput struct {
		Target     string   `json:"target" jsonschema:"File name, or regular expression when regex=true"`
		Directory  string   `json:"directory,omitempty" jsonschema:"Directory to search (default: server working directory)"`
		Recursive  bool     `json:"recursive,omitempty" jsonschema:"Search subdirectories too (default: false)"`
		Regex      bool     `json:"regex,omitempty" jsonschema:"Treat target as a regex that must match the whole file name (default: false)"`
		Extensions []string `json:"extensions,omitempty" jsonschema:"Extensions appended to target as target.ext, one search pass each"`
		Limit      int      `json:"limit,omitempty" jsonschema:"Maximum matches to return (default: all)"`
	}

	// FindOutput contains the canonical paths of the matches.
	FindOutput struct {
		Matches    []string `json:"matches"`
		URIs       []string `json:"uris"`
		Errors     []string `json:"errors,omitempty"`
		TotalFound int      `json:"totalFound"`
		Truncated  bool     `json:"truncated,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find",
		Description: "Find files by exact name, name plus extension list, or anchored regular expression, optionally recursing into subdirectories. Returns canonical absolute paths.",
	}, handleFind)
}
