// Package tty abstracts the terminal so the picker can run against a real
// tty or an in-memory fake.
package tty

// IO is the terminal capability used by the picker.
// Rows and columns are zero based.
type IO interface {
	// Read returns the next input rune, or io.EOF when input ends.
	Read() (rune, error)
	SetPosition(row, col int)
	BlankLine(row int)
	Print(text string)
	Inverted(text string)
	Dimensions() (width, height int)
	HideCursor()
	ShowCursor()
}
