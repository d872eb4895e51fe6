package types

type (
	// SearchResult contains the outcome of a single search run.
	SearchResult struct {
		Matches []string `json:"matches"`
		Errors  []string `json:"errors,omitempty"`
	}
)
