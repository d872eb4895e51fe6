package search

import "github.com/taigrr/findfiles/internal/types"

// Collector is a Reporter that accumulates matches and errors in memory.
type Collector struct {
	Result types.SearchResult
	// Checked counts Progress calls.
	Checked int
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{Result: types.SearchResult{Matches: []string{}}}
}

func (c *Collector) Progress(name, dir string) {
	c.Checked++
}

func (c *Collector) Match(path string) {
	c.Result.Matches = append(c.Result.Matches, path)
}

func (c *Collector) Error(err error) {
	c.Result.Errors = append(c.Result.Errors, err.Error())
}
