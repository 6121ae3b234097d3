package search

import (
	"slices"

	"github.com/bastiangx/linepick/pkg/fuzzy"
)

// Ranked is a matching candidate with its quality and matched rune positions
type Ranked struct {
	Choice    string
	Quality   float64
	Positions []int
}

// Rank scores every choice against query, drops the ones that do not match
// and orders the rest best first. Equal qualities keep their input order.
func Rank(choices []string, query string) []Ranked {
	ranked := make([]Ranked, 0, len(choices))
	for _, choice := range choices {
		m := fuzzy.Match(choice, query)
		if !m.Matched() {
			continue
		}
		ranked = append(ranked, Ranked{
			Choice:    choice,
			Quality:   m.Quality,
			Positions: m.Positions,
		})
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		switch {
		case a.Quality > b.Quality:
			return -1
		case a.Quality < b.Quality:
			return 1
		}
		return 0
	})
	return ranked
}

// Filter returns the choices matching query, best first
func Filter(choices []string, query string) []string {
	ranked := Rank(choices, query)
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Choice
	}
	return out
}
