package tui

import "github.com/charmbracelet/lipgloss"

// Styles controls the rendering of the document and its chrome.
type Styles struct {
	Text         lipgloss.Style
	Cursor       lipgloss.Style
	Match        lipgloss.Style
	MatchCurrent lipgloss.Style

	Status lipgloss.Style
	Prompt lipgloss.Style
	Help   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Text:         lipgloss.NewStyle(),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Match:        lipgloss.NewStyle().Background(lipgloss.Color("58")),
		MatchCurrent: lipgloss.NewStyle().Background(lipgloss.Color("100")).Bold(true),

		Status: lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("250")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2),
	}
}
