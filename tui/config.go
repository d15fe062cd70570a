package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// File is the optional configuration file. Empty fields keep the built-in
// defaults.
type File struct {
	// TabWidth is the number of spaces a tab inserts.
	TabWidth int   `yaml:"tab_width"`
	Theme    Theme `yaml:"theme"`
}

// Theme overrides the default colors. Values are ANSI palette indexes or hex
// strings, as lipgloss accepts them.
type Theme struct {
	Match        string `yaml:"match"`
	MatchCurrent string `yaml:"match_current"`
	Status       string `yaml:"status"`
	StatusText   string `yaml:"status_text"`
	Prompt       string `yaml:"prompt"`
	HelpBorder   string `yaml:"help_border"`
}

// LoadConfig reads and parses a configuration file.
func LoadConfig(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Styles folds the theme over the default styles.
func (f File) Styles() Styles {
	s := DefaultStyles()
	t := f.Theme

	if t.Match != "" {
		s.Match = s.Match.Background(lipgloss.Color(t.Match))
	}
	if t.MatchCurrent != "" {
		s.MatchCurrent = s.MatchCurrent.Background(lipgloss.Color(t.MatchCurrent))
	}
	if t.Status != "" {
		s.Status = s.Status.Background(lipgloss.Color(t.Status))
	}
	if t.StatusText != "" {
		s.Status = s.Status.Foreground(lipgloss.Color(t.StatusText))
	}
	if t.Prompt != "" {
		s.Prompt = s.Prompt.Foreground(lipgloss.Color(t.Prompt))
	}
	if t.HelpBorder != "" {
		s.Help = s.Help.BorderForeground(lipgloss.Color(t.HelpBorder))
	}
	return s
}
