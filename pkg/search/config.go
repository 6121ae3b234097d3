package search

import "slices"

// DefaultVisibleLimit is the navigation window size when none is given
const DefaultVisibleLimit = 20

// Configuration is the immutable candidate pool and settings for one run.
// It is shared by every Search snapshot and never modified after construction.
type Configuration struct {
	choices      []string
	initialQuery string
	visibleLimit int
}

// NewConfiguration copies choices so later changes by the caller cannot leak
// into running searches. A non-positive visibleLimit selects DefaultVisibleLimit.
func NewConfiguration(choices []string, initialQuery string, visibleLimit int) *Configuration {
	if visibleLimit <= 0 {
		visibleLimit = DefaultVisibleLimit
	}
	return &Configuration{
		choices:      slices.Clone(choices),
		initialQuery: initialQuery,
		visibleLimit: visibleLimit,
	}
}

// Choices returns a copy of the candidate pool in input order
func (c *Configuration) Choices() []string {
	return slices.Clone(c.choices)
}

// Len returns the number of candidates
func (c *Configuration) Len() int {
	return len(c.choices)
}

// InitialQuery returns the query a blank search starts with
func (c *Configuration) InitialQuery() string {
	return c.initialQuery
}

// VisibleLimit returns the size of the navigation window
func (c *Configuration) VisibleLimit() int {
	return c.visibleLimit
}
