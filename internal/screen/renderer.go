// Package screen turns a search snapshot into painted terminal rows.
package screen

import (
	"github.com/bastiangx/linepick/pkg/search"
)

// Kind tags how a rendered line is painted
type Kind int

const (
	Normal Kind = iota
	Highlight
	Blank
)

// DefaultPrompt precedes the query on the header line
const DefaultPrompt = "> "

// Text is one rendered line. Positions are matched rune indexes in Value.
type Text struct {
	Kind      Kind
	Value     string
	Positions []int
}

// Renderer lays out a search: a header, then exactly visible-limit rows
type Renderer struct {
	Prompt string
}

// Header returns the header line for s
func (r Renderer) Header(s search.Search) string {
	return r.Prompt + s.Query()
}

// Render returns the header followed by one line per visible row.
// The row at the cursor is Highlight; rows past the result are Blank.
func (r Renderer) Render(s search.Search) []Text {
	limit := s.Config().VisibleLimit()
	ranked := s.Ranked()

	lines := make([]Text, 0, limit+1)
	lines = append(lines, Text{Kind: Normal, Value: r.Header(s)})

	for i := 0; i < limit; i++ {
		if i >= len(ranked) {
			lines = append(lines, Text{Kind: Blank})
			continue
		}
		kind := Normal
		if i == s.Index() {
			kind = Highlight
		}
		lines = append(lines, Text{
			Kind:      kind,
			Value:     ranked[i].Choice,
			Positions: ranked[i].Positions,
		})
	}
	return lines
}
