package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/bastiangx/linepick/internal/keys"
	"github.com/bastiangx/linepick/internal/screen"
	"github.com/bastiangx/linepick/internal/tty"
	"github.com/bastiangx/linepick/pkg/search"
)

var choices = []string{"one", "two", "three"}

func run(t *testing.T, input string, limit int) (Outcome, *tty.Fake) {
	t.Helper()
	fake := tty.NewFake(input, 40, 20)
	styles := screen.NewStyles(lipgloss.NewRenderer(io.Discard), "")
	scr := screen.New(fake, screen.Renderer{Prompt: screen.DefaultPrompt}, styles, true)

	out, err := NewPicker(fake, scr).Run(search.Blank(search.NewConfiguration(choices, "", limit)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out, fake
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantQuery   string
		wantIndex   int
		wantDone    bool
		wantChoice  string
		interrupted bool
	}{
		{"no input", "", "", 0, false, "one", false},
		{"ctrl-n moves down", "\x0e", "", 1, false, "two", false},
		{"arrow down", "\x1b[B", "", 1, false, "two", false},
		{"ctrl-p wraps to the last row", "\x10", "", 2, false, "three", false},
		{"query narrows", "th", "th", 0, false, "three", false},
		{"backspace widens", "tw\x7f", "t", 0, false, "two", false},
		{"enter confirms", "\x0e\r", "", 1, true, "two", false},
		{"keys after enter are ignored", "\r\x0ezz", "", 0, true, "one", false},
		{"ctrl-c interrupts", "t\x03\r", "t", 0, false, "two", true},
		{"unbound escape is dropped", "\x1b[1;5Ct", "t", 0, false, "two", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, _ := run(t, tc.input, 3)
			s := out.Search
			if s.Query() != tc.wantQuery || s.Index() != tc.wantIndex || s.IsDone() != tc.wantDone {
				t.Errorf("search = query %q index %d done %v, want %q %d %v",
					s.Query(), s.Index(), s.IsDone(), tc.wantQuery, tc.wantIndex, tc.wantDone)
			}
			if choice, _ := s.Selection(); choice != tc.wantChoice {
				t.Errorf("selection = %q, want %q", choice, tc.wantChoice)
			}
			if out.Interrupted != tc.interrupted {
				t.Errorf("interrupted = %v, want %v", out.Interrupted, tc.interrupted)
			}
		})
	}
}

func TestRunPaintsEveryKey(t *testing.T) {
	_, fake := run(t, "tw", 3)
	start := 20 - 3 - 2
	if got := fake.Line(start); got != "> tw" {
		t.Errorf("header = %q, want %q", got, "> tw")
	}
	if got := fake.Line(start + 1); got != "two" || !fake.IsInverted(start+1) {
		t.Errorf("first row = %q inverted=%v, want highlighted two", got, fake.IsInverted(start+1))
	}
	if got := fake.Line(start + 2); got != "" {
		t.Errorf("second row = %q, want blank", got)
	}
}

func TestApply(t *testing.T) {
	s := search.Blank(search.NewConfiguration(choices, "", 3))
	testCases := []struct {
		tok  keys.Token
		want int
	}{
		{keys.Token{Action: keys.ActionDown}, 1},
		{keys.Token{Action: keys.ActionUp}, 2},
		{keys.Token{Action: keys.ActionInterrupt}, 0},
	}
	for _, tc := range testCases {
		if got := Apply(s, tc.tok).Index(); got != tc.want {
			t.Errorf("Apply(%v).Index() = %d, want %d", tc.tok.Action, got, tc.want)
		}
	}
	if got := Apply(s, keys.Token{Action: keys.ActionText, Text: "é"}).Query(); got != "é" {
		t.Errorf("text query = %q", got)
	}
}

func TestOutput(t *testing.T) {
	config := search.NewConfiguration(choices, "", 3)
	testCases := []struct {
		name   string
		out    Outcome
		want   string
		wantOK bool
	}{
		{"selection", Outcome{Search: search.Blank(config).Down().Confirm()}, "two", true},
		{"end of input", Outcome{Search: search.Blank(config)}, "one", true},
		{"no match", Outcome{Search: search.Blank(config).AppendToQuery("zz").Confirm()}, NoSelection, true},
		{"interrupted", Outcome{Search: search.Blank(config), Interrupted: true}, "", false},
	}
	for _, tc := range testCases {
		got, ok := tc.out.Output()
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("%s: Output() = %q, %v; want %q, %v", tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}
