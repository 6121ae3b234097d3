// Package cli runs the interactive picker: it reads keystrokes from the
// terminal, applies them to the search and repaints after every change.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/linepick/internal/keys"
	"github.com/bastiangx/linepick/internal/screen"
	"github.com/bastiangx/linepick/internal/tty"
	"github.com/bastiangx/linepick/pkg/search"
)

// NoSelection is printed when the picker ends without a choice
const NoSelection = "None"

// Outcome is how a picker session ended
type Outcome struct {
	Search      search.Search
	Interrupted bool
}

// Output is the line linepick prints for o: the selected choice, or
// NoSelection when nothing is selectable.
// An interrupted session prints nothing, reported by ok being false.
func (o Outcome) Output() (line string, ok bool) {
	if o.Interrupted {
		return "", false
	}
	if choice, found := o.Search.Selection(); found {
		return choice, true
	}
	return NoSelection, true
}

// Picker drives a search from terminal input
type Picker struct {
	io      tty.IO
	decoder *keys.Decoder
	screen  *screen.Screen
	keys    int
}

// NewPicker creates a picker reading from and painting to io
func NewPicker(io tty.IO, scr *screen.Screen) *Picker {
	return &Picker{
		io:      io,
		decoder: keys.NewDecoder(io),
		screen:  scr,
	}
}

// Apply returns the search that tok leads to from s.
// Interrupts are handled by the caller and leave s unchanged.
func Apply(s search.Search, tok keys.Token) search.Search {
	switch tok.Action {
	case keys.ActionText:
		return s.AppendToQuery(tok.Text)
	case keys.ActionDown:
		return s.Down()
	case keys.ActionUp:
		return s.Up()
	case keys.ActionBackspace:
		return s.Backspace()
	case keys.ActionConfirm:
		return s.Confirm()
	}
	return s
}

// Run paints s and processes keystrokes until the search is done, the user
// interrupts or input ends. End of input keeps the current search as is.
func (p *Picker) Run(s search.Search) (Outcome, error) {
	if err := p.paint(s); err != nil {
		return Outcome{Search: s}, err
	}

	for !s.IsDone() {
		tok, err := p.decoder.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Input closed", "keys", p.keys)
				return Outcome{Search: s}, nil
			}
			return Outcome{Search: s}, fmt.Errorf("reading input: %w", err)
		}
		p.keys++

		if tok.Action == keys.ActionInterrupt {
			log.Debug("Interrupted", "keys", p.keys)
			return Outcome{Search: s, Interrupted: true}, nil
		}

		s = Apply(s, tok)
		log.Debug("Key", "action", tok.Action, "query", s.Query(), "index", s.Index())
		if err := p.paint(s); err != nil {
			return Outcome{Search: s}, err
		}
	}
	return Outcome{Search: s}, nil
}

// paint redraws the screen and reports the terminal's write error, if it
// tracks one
func (p *Picker) paint(s search.Search) error {
	p.screen.Print(s)
	if e, ok := p.io.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return fmt.Errorf("writing to terminal: %w", err)
		}
	}
	return nil
}
