package keys

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// RuneReader is the input side of tty.IO
type RuneReader interface {
	Read() (rune, error)
}

// Decoder reads runes and groups them into tokens.
// Multi-rune sequences are resolved against a trie of bindings: input keeps
// being read while it is a strict prefix of some binding.
type Decoder struct {
	in       RuneReader
	bindings *patricia.Trie
}

// NewDecoder creates a decoder with DefaultBindings
func NewDecoder(in RuneReader) *Decoder {
	return NewDecoderWithBindings(in, DefaultBindings)
}

// NewDecoderWithBindings creates a decoder with custom bindings
func NewDecoderWithBindings(in RuneReader, bindings map[string]Action) *Decoder {
	trie := patricia.NewTrie()
	for seq, action := range bindings {
		trie.Insert(patricia.Prefix(seq), action)
	}
	return &Decoder{in: in, bindings: trie}
}

// Next blocks until a complete token is decoded.
// Unknown escape sequences and unbound control characters are skipped.
// The reader's error (io.EOF at end of input) is returned unchanged.
func (d *Decoder) Next() (Token, error) {
	for {
		first, err := d.in.Read()
		if err != nil {
			return Token{}, err
		}
		tok, ok, err := d.decode(first)
		if err != nil {
			return Token{}, err
		}
		if ok {
			return tok, nil
		}
	}
}

func (d *Decoder) decode(first rune) (Token, bool, error) {
	var seq strings.Builder
	seq.WriteRune(first)

	for {
		key := patricia.Prefix(seq.String())
		if item := d.bindings.Get(key); item != nil {
			return Token{Action: item.(Action)}, true, nil
		}
		if !d.bindings.MatchSubtree(key) {
			break
		}
		r, err := d.in.Read()
		if err != nil {
			return Token{}, false, err
		}
		seq.WriteRune(r)
	}

	s := seq.String()
	if first == CharEsc {
		if err := d.skipCSI(s); err != nil {
			return Token{}, false, err
		}
		log.Debugf("ignoring unbound escape sequence %q", s)
		return Token{}, false, nil
	}

	// only escape sequences span several runes, so s is a single rune here
	if !unicode.IsPrint(first) {
		log.Debugf("ignoring control character %q", first)
		return Token{}, false, nil
	}
	return Token{Action: ActionText, Text: s}, true, nil
}

// skipCSI consumes the rest of an unbound CSI sequence up to its final byte
// so parameters like "1;5" are not typed into the query
func (d *Decoder) skipCSI(seq string) error {
	if !strings.HasPrefix(seq, "\x1b[") {
		return nil
	}
	last := rune(seq[len(seq)-1])
	for len(seq) <= 2 || !isCSIFinal(last) {
		r, err := d.in.Read()
		if err != nil {
			return err
		}
		seq += string(r)
		last = r
	}
	return nil
}

func isCSIFinal(r rune) bool {
	return r >= 0x40 && r <= 0x7e
}
