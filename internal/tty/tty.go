package tty

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// DevicePath is the controlling terminal; stdin usually carries candidates
const DevicePath = "/dev/tty"

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// TTY drives the controlling terminal in raw mode
type TTY struct {
	file     *os.File
	reader   *bufio.Reader
	state    *term.State
	renderer *lipgloss.Renderer
	invert   lipgloss.Style
	err      error
}

// Open opens the controlling terminal and switches it to raw mode.
// Close must be called to restore the previous mode.
func Open() (*TTY, error) {
	f, err := os.OpenFile(DevicePath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", DevicePath, err)
	}
	return New(f)
}

// New wraps an already opened terminal file
func New(f *os.File) (*TTY, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		f.Close()
		return nil, fmt.Errorf("%s is not a terminal", f.Name())
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	renderer := lipgloss.NewRenderer(f)
	return &TTY{
		file:     f,
		reader:   bufio.NewReader(f),
		state:    state,
		renderer: renderer,
		invert:   renderer.NewStyle().Reverse(true),
	}, nil
}

// Renderer returns a lipgloss renderer bound to the terminal's color profile
func (t *TTY) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// Close restores the terminal mode and releases the device
func (t *TTY) Close() error {
	restoreErr := term.Restore(int(t.file.Fd()), t.state)
	closeErr := t.file.Close()
	if restoreErr != nil {
		return fmt.Errorf("restore terminal: %w", restoreErr)
	}
	return closeErr
}

// Err returns the first write error seen, if any
func (t *TTY) Err() error {
	return t.err
}

// Read reads a single rune from the terminal
func (t *TTY) Read() (rune, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, nil
}

func (t *TTY) write(s string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.file, s); err != nil {
		t.err = err
		log.Debugf("tty write failed: %v", err)
	}
}

// SetPosition moves the cursor; ANSI coordinates are one based
func (t *TTY) SetPosition(row, col int) {
	t.write(fmt.Sprintf("\x1b[%d;%dH", row+1, col+1))
}

// BlankLine clears a whole row
func (t *TTY) BlankLine(row int) {
	t.SetPosition(row, 0)
	t.write("\x1b[2K")
}

// Print writes text at the cursor
func (t *TTY) Print(text string) {
	t.write(text)
}

// Inverted writes text with foreground and background swapped
func (t *TTY) Inverted(text string) {
	t.write(t.invert.Render(text))
}

// Dimensions returns the terminal size, falling back to 80x24
func (t *TTY) Dimensions() (int, int) {
	w, h, err := term.GetSize(int(t.file.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		log.Debugf("terminal size unavailable (%v), using %dx%d", err, fallbackWidth, fallbackHeight)
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// HideCursor hides the terminal cursor
func (t *TTY) HideCursor() {
	t.write("\x1b[?25l")
}

// ShowCursor shows the terminal cursor
func (t *TTY) ShowCursor() {
	t.write("\x1b[?25h")
}
