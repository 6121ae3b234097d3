// Package keys decodes raw terminal input into picker actions.
package keys

// Action is what a decoded keystroke asks the picker to do
type Action int

const (
	// ActionText appends Token.Text to the query
	ActionText Action = iota
	ActionDown
	ActionUp
	ActionBackspace
	ActionConfirm
	ActionInterrupt
)

func (a Action) String() string {
	switch a {
	case ActionText:
		return "text"
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionBackspace:
		return "backspace"
	case ActionConfirm:
		return "confirm"
	case ActionInterrupt:
		return "interrupt"
	}
	return "unknown"
}

// Token is one decoded keystroke. Text is set only for ActionText.
type Token struct {
	Action Action
	Text   string
}

// Raw key codes
const (
	CharInterrupt = 0x03 // Ctrl-C
	CharCtrlH     = 0x08
	CharCtrlJ     = 0x0a // LF
	CharEnter     = 0x0d // CR
	CharNext      = 0x0e // Ctrl-N
	CharPrev      = 0x10 // Ctrl-P
	CharEsc       = 0x1b
	CharBackspace = 0x7f
)

// DefaultBindings maps input sequences to actions
var DefaultBindings = map[string]Action{
	string(rune(CharNext)):      ActionDown,
	"\x1b[B":                    ActionDown,
	"\x1bOB":                    ActionDown,
	string(rune(CharPrev)):      ActionUp,
	"\x1b[A":                    ActionUp,
	"\x1bOA":                    ActionUp,
	string(rune(CharBackspace)): ActionBackspace,
	string(rune(CharCtrlH)):     ActionBackspace,
	string(rune(CharEnter)):     ActionConfirm,
	string(rune(CharCtrlJ)):     ActionConfirm,
	string(rune(CharInterrupt)): ActionInterrupt,
}
