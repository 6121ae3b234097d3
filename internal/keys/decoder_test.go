package keys

import (
	"errors"
	"io"
	"testing"

	"github.com/bastiangx/linepick/internal/tty"
)

func decodeAll(t *testing.T, input string) []Token {
	t.Helper()
	d := NewDecoder(tty.NewFake(input, 80, 24))
	var tokens []Token
	for {
		tok, err := d.Next()
		if errors.Is(err, io.EOF) {
			return tokens
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		tokens = append(tokens, tok)
	}
}

func TestDecoder(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Token
	}{
		{"ctrl-n", "\x0e", []Token{{Action: ActionDown}}},
		{"ctrl-p", "\x10", []Token{{Action: ActionUp}}},
		{"delete", "\x7f", []Token{{Action: ActionBackspace}}},
		{"ctrl-h", "\x08", []Token{{Action: ActionBackspace}}},
		{"enter cr", "\r", []Token{{Action: ActionConfirm}}},
		{"enter lf", "\n", []Token{{Action: ActionConfirm}}},
		{"ctrl-c", "\x03", []Token{{Action: ActionInterrupt}}},
		{"arrow down", "\x1b[B", []Token{{Action: ActionDown}}},
		{"arrow up", "\x1b[A", []Token{{Action: ActionUp}}},
		{"ss3 arrow up", "\x1bOA", []Token{{Action: ActionUp}}},
		{"text", "tw", []Token{{Action: ActionText, Text: "t"}, {Action: ActionText, Text: "w"}}},
		{"unicode text", "é", []Token{{Action: ActionText, Text: "é"}}},
		{"space", " ", []Token{{Action: ActionText, Text: " "}}},
		{
			"mixed",
			"a\x0e\x7fb\r",
			[]Token{
				{Action: ActionText, Text: "a"},
				{Action: ActionDown},
				{Action: ActionBackspace},
				{Action: ActionText, Text: "b"},
				{Action: ActionConfirm},
			},
		},
		{"unbound control skipped", "\x01a", []Token{{Action: ActionText, Text: "a"}}},
		{"unbound csi skipped", "\x1b[1;5Cx", []Token{{Action: ActionText, Text: "x"}}},
		{"shift tab skipped", "\x1b[Zx", []Token{{Action: ActionText, Text: "x"}}},
		{"alt key skipped", "\x1bfx", []Token{{Action: ActionText, Text: "x"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeAll(t, tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("decoded %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestDecoderEOFInsideSequence(t *testing.T) {
	d := NewDecoder(tty.NewFake("\x1b[", 80, 24))
	if _, err := d.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next = %v, want io.EOF", err)
	}
}

func TestCustomBindings(t *testing.T) {
	d := NewDecoderWithBindings(tty.NewFake("\tj", 80, 24), map[string]Action{
		"\t": ActionDown,
	})
	tok, err := d.Next()
	if err != nil || tok.Action != ActionDown {
		t.Fatalf("Next = %+v, %v; want down", tok, err)
	}
	tok, err = d.Next()
	if err != nil || tok != (Token{Action: ActionText, Text: "j"}) {
		t.Fatalf("Next = %+v, %v; want text j", tok, err)
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "confirm" || Action(99).String() != "unknown" {
		t.Error("unexpected Action names")
	}
}
