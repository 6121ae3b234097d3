package screen

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the styles used for normal rows and the header
type Styles struct {
	Prompt lipgloss.Style
	Match  lipgloss.Style
}

// NewStyles builds styles for the terminal behind r.
// An empty matchColor leaves matched runes bold only.
func NewStyles(r *lipgloss.Renderer, matchColor string) Styles {
	match := r.NewStyle().Bold(true)
	if matchColor != "" {
		match = match.Foreground(lipgloss.Color(matchColor))
	}
	return Styles{
		Prompt: r.NewStyle().Faint(true),
		Match:  match,
	}
}
