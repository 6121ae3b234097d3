package tty

import (
	"io"

	"github.com/mattn/go-runewidth"
)

// Fake is an in-memory terminal: scripted input, recorded screen
type Fake struct {
	input    []rune
	pos      int
	width    int
	height   int
	rows     map[int]string
	inverted map[int]bool
	row      int
	col      int
	hidden   bool
}

// NewFake returns a fake terminal of the given size that will deliver input
// rune by rune and then io.EOF
func NewFake(input string, width, height int) *Fake {
	return &Fake{
		input:    []rune(input),
		width:    width,
		height:   height,
		rows:     make(map[int]string),
		inverted: make(map[int]bool),
	}
}

// Read returns the next scripted rune
func (f *Fake) Read() (rune, error) {
	if f.pos >= len(f.input) {
		return 0, io.EOF
	}
	r := f.input[f.pos]
	f.pos++
	return r, nil
}

// SetPosition moves the cursor
func (f *Fake) SetPosition(row, col int) {
	f.row, f.col = row, col
}

// BlankLine clears a row
func (f *Fake) BlankLine(row int) {
	delete(f.rows, row)
	delete(f.inverted, row)
}

// Print writes text at the cursor row
func (f *Fake) Print(text string) {
	f.rows[f.row] += text
	f.col += runewidth.StringWidth(text)
}

// Inverted writes text at the cursor row and marks the row highlighted
func (f *Fake) Inverted(text string) {
	f.Print(text)
	f.inverted[f.row] = true
}

// Dimensions returns the configured size
func (f *Fake) Dimensions() (int, int) {
	return f.width, f.height
}

// HideCursor records the cursor as hidden
func (f *Fake) HideCursor() {
	f.hidden = true
}

// ShowCursor records the cursor as visible
func (f *Fake) ShowCursor() {
	f.hidden = false
}

// Line returns what was painted on row
func (f *Fake) Line(row int) string {
	return f.rows[row]
}

// IsInverted reports whether row was painted highlighted
func (f *Fake) IsInverted(row int) bool {
	return f.inverted[row]
}

// Cursor returns the cursor position
func (f *Fake) Cursor() (row, col int) {
	return f.row, f.col
}

// CursorHidden reports whether the cursor is currently hidden
func (f *Fake) CursorHidden() bool {
	return f.hidden
}
