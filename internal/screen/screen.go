package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bastiangx/linepick/internal/tty"
	"github.com/bastiangx/linepick/pkg/search"
)

const ellipsis = "…"

// Screen paints searches near the bottom of the terminal
type Screen struct {
	io       tty.IO
	renderer Renderer
	styles   Styles
	width    int
	height   int
	truncate bool
}

// New creates a screen sized from the terminal's current dimensions.
// When truncate is set, rows wider than the terminal end in an ellipsis.
func New(io tty.IO, renderer Renderer, styles Styles, truncate bool) *Screen {
	w, h := io.Dimensions()
	return &Screen{
		io:       io,
		renderer: renderer,
		styles:   styles,
		width:    w,
		height:   h,
		truncate: truncate,
	}
}

// StartLine is the row the header is painted on
func (s *Screen) StartLine(visibleLimit int) int {
	return max(s.height-visibleLimit-2, 0)
}

// Print paints the header and result rows, then parks the cursor at the end
// of the header so typing appears after the query
func (s *Screen) Print(srch search.Search) {
	lines := s.renderer.Render(srch)
	header := s.renderer.Header(srch)
	start := s.StartLine(srch.Config().VisibleLimit())

	s.io.HideCursor()
	for idx, text := range lines {
		row := start + idx
		if row >= s.height {
			break
		}
		if idx == 0 {
			s.writeHeader(row, srch.Query())
			continue
		}
		s.write(row, text)
	}
	s.io.SetPosition(start, runewidth.StringWidth(header))
	s.io.ShowCursor()
}

// Reserve scrolls the terminal so the rows Print uses for visibleLimit do not
// cover existing output
func (s *Screen) Reserve(visibleLimit int) {
	rows := min(visibleLimit+1, s.height)
	s.io.Print(strings.Repeat("\r\n", rows))
}

// Clear blanks everything Print may have painted for visibleLimit rows
func (s *Screen) Clear(visibleLimit int) {
	start := s.StartLine(visibleLimit)
	for row := start; row <= start+visibleLimit && row < s.height; row++ {
		s.io.BlankLine(row)
	}
	s.io.SetPosition(start, 0)
	s.io.ShowCursor()
}

func (s *Screen) writeHeader(row int, query string) {
	s.io.BlankLine(row)
	s.io.SetPosition(row, 0)
	s.io.Print(s.styles.Prompt.Render(s.renderer.Prompt) + query)
}

func (s *Screen) write(row int, text Text) {
	s.io.BlankLine(row)
	s.io.SetPosition(row, 0)

	switch text.Kind {
	case Normal:
		kept, tail := s.fit(text.Value)
		s.io.Print(emphasize(kept, text.Positions, s.styles) + tail)
	case Highlight:
		kept, tail := s.fit(text.Value)
		s.io.Inverted(kept + tail)
	case Blank:
		s.io.Print("")
	}
}

// fit splits value into the part that fits the terminal and a tail marker
func (s *Screen) fit(value string) (string, string) {
	if !s.truncate || s.width <= 0 || runewidth.StringWidth(value) <= s.width {
		return value, ""
	}
	return runewidth.Truncate(value, s.width-1, ""), ellipsis
}

// emphasize styles the runes of value at the given rune positions
func emphasize(value string, positions []int, styles Styles) string {
	if len(positions) == 0 {
		return value
	}
	var b strings.Builder
	next := 0
	for i, r := range []rune(value) {
		if next < len(positions) && positions[next] == i {
			b.WriteString(styles.Match.Render(string(r)))
			next++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
