// Package fuzzy ranks a candidate line against a query.
//
// A candidate matches when every rune of the query appears in it, in order,
// ignoring case. Matches are scored by how dense the match is, how much of it
// is contiguous, and whether it begins early or on a word boundary.
package fuzzy

import (
	"github.com/bastiangx/linepick/internal/utils"
)

// EmptyQueryQuality is the quality every candidate gets for an empty query
const EmptyQueryQuality = 1.0

// Constants for scoring
const (
	matchPoint          = 1.0
	adjacentMatchBonus  = 1.0
	wordStartMatchBonus = 0.8
	firstCharMatchBonus = 0.4
	leadingCharPenalty  = 0.1
	maxLeadingChars     = 3
)

// Result is the outcome of matching one candidate.
// Positions holds rune indexes into the candidate, ascending.
type Result struct {
	Quality   float64
	Positions []int
}

// Matched reports whether the candidate matched the query
func (r Result) Matched() bool {
	return r.Quality > 0
}

// Score returns the match quality of candidate for query.
// A quality <= 0 means the candidate does not match.
func Score(candidate, query string) float64 {
	return Match(candidate, query).Quality
}

// Match scores candidate against query and reports which runes matched.
// Every occurrence of the first query rune is tried as a starting point and
// the best scoring alignment is kept.
func Match(candidate, query string) Result {
	if query == "" {
		return Result{Quality: EmptyQueryQuality}
	}

	pattern := []rune(query)
	runes := []rune(candidate)
	if len(pattern) > len(runes) {
		return Result{}
	}

	var best Result
	for start := range runes {
		if !utils.EqualFold(runes[start], pattern[0]) {
			continue
		}
		positions, ok := alignFrom(runes, pattern, start)
		if !ok {
			// later starts only see a suffix of this one
			break
		}
		if q := quality(runes, positions); q > best.Quality {
			best = Result{Quality: q, Positions: positions}
		}
	}
	return best
}

// alignFrom greedily matches pattern against runes with pattern[0] fixed at start
func alignFrom(runes, pattern []rune, start int) ([]int, bool) {
	positions := make([]int, 0, len(pattern))
	positions = append(positions, start)

	pi := 1
	for i := start + 1; i < len(runes) && pi < len(pattern); i++ {
		if utils.EqualFold(runes[i], pattern[pi]) {
			positions = append(positions, i)
			pi++
		}
	}
	return positions, pi == len(pattern)
}

// quality turns an alignment into a positive score.
// Points reward each matched rune plus adjacency and word starts; the total
// is divided by the candidate length plus the unmatched runes inside the
// matched span, then reduced for unmatched leading runes.
func quality(runes []rune, positions []int) float64 {
	points := 0.0
	for i, p := range positions {
		points += matchPoint

		if i > 0 && positions[i-1] == p-1 {
			points += adjacentMatchBonus
		}

		if p == 0 {
			points += wordStartMatchBonus + firstCharMatchBonus
		} else if utils.IsWordStart(runes[p-1], runes[p]) {
			points += wordStartMatchBonus
		}
	}

	first := positions[0]
	span := positions[len(positions)-1] - first + 1
	gaps := span - len(positions)

	q := points / float64(len(runes)+gaps)
	return q * (1 - leadingCharPenalty*float64(min(first, maxLeadingChars)))
}
