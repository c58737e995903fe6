package display

import "github.com/charmbracelet/lipgloss"

// Palette holds the presenter's text styles. It is built once by the
// driver and passed by value; the zero Palette renders everything
// unstyled, which is the --no-colors form.
type Palette struct {
	Bold   lipgloss.Style
	Green  lipgloss.Style
	Red    lipgloss.Style
	Yellow lipgloss.Style
	Blue   lipgloss.Style
}

// NewPalette returns the colored palette when enabled, the plain zero
// palette otherwise.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	return Palette{
		Bold:   lipgloss.NewStyle().Bold(true),
		Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}
