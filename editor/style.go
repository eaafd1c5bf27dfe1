package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the grid's rendering.
type Style struct {
	Border   lipgloss.Style
	Char     lipgloss.Style
	Guide    lipgloss.Style
	Furigana lipgloss.Style

	Cursor    lipgloss.Style
	Selection lipgloss.Style
	Composing lipgloss.Style

	Prompt      lipgloss.Style
	Description lipgloss.Style
}

func DefaultStyle() Style {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Border:      faint,
		Char:        lipgloss.NewStyle(),
		Guide:       lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Furigana:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")).Reverse(true),
		Composing:   lipgloss.NewStyle().Underline(true),
		Prompt:      lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
