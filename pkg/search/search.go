// Package search holds the incremental search state machine.
//
// A Search is an immutable snapshot: every transition returns a new value and
// leaves the receiver untouched. The result list is always recomputed from the
// full candidate pool, never patched.
package search

import (
	"slices"
	"unicode/utf8"
)

// Search is one state of an interactive search.
// The zero value is not usable; start from Blank.
type Search struct {
	config  *Configuration
	query   string
	current int
	result  []Ranked
	done    bool
}

// Blank starts a search with the configured initial query and the first row selected
func Blank(config *Configuration) Search {
	return newSearch(config, config.InitialQuery(), 0)
}

func newSearch(config *Configuration, query string, index int) Search {
	return Search{
		config:  config,
		query:   query,
		current: index,
		result:  Rank(config.choices, query),
	}
}

// withIndex keeps query and result and only moves the cursor
func (s Search) withIndex(index int) Search {
	s.current = index
	return s
}

// AppendToQuery extends the query with text and re-ranks
func (s Search) AppendToQuery(text string) Search {
	if s.done {
		return s
	}
	return newSearch(s.config, s.query+text, s.current)
}

// Backspace removes the last character of the query and re-ranks
func (s Search) Backspace() Search {
	if s.done || s.query == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.query)
	return newSearch(s.config, s.query[:len(s.query)-size], s.current)
}

// Down moves to the next row, wrapping at the visible limit
func (s Search) Down() Search {
	if s.done {
		return s
	}
	return s.withIndex((s.current + 1) % s.config.VisibleLimit())
}

// Up moves to the previous row, wrapping to the last visible row from the top
func (s Search) Up() Search {
	if s.done {
		return s
	}
	if s.current == 0 {
		return s.withIndex(s.config.VisibleLimit() - 1)
	}
	return s.withIndex(s.current - 1)
}

// Confirm freezes the search. Further transitions return it unchanged.
func (s Search) Confirm() Search {
	s.done = true
	return s
}

// IsDone reports whether the search has been confirmed
func (s Search) IsDone() bool {
	return s.done
}

// Config returns the shared configuration
func (s Search) Config() *Configuration {
	return s.config
}

// Query returns the current query text
func (s Search) Query() string {
	return s.query
}

// Index returns the cursor position within the visible window
func (s Search) Index() int {
	return s.current
}

// Result returns the matching candidates, best first
func (s Search) Result() []string {
	out := make([]string, len(s.result))
	for i, r := range s.result {
		out[i] = r.Choice
	}
	return out
}

// Ranked returns the matching candidates with their scores and positions
func (s Search) Ranked() []Ranked {
	return slices.Clone(s.result)
}

// Selection returns the candidate under the cursor.
// ok is false when the cursor sits past the end of the result list.
func (s Search) Selection() (choice string, ok bool) {
	if s.current < 0 || s.current >= len(s.result) {
		return "", false
	}
	return s.result[s.current].Choice, true
}
