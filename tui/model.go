// Package tui renders an editor as a Bubble Tea program.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nvanthao/sparrow/editor"
)

// Config configures the Model. Zero-value KeyMap and Styles fall back to the
// defaults.
type Config struct {
	KeyMap *KeyMap
	Styles *Styles
	Logger *log.Logger
}

// Model is the Bubble Tea program driving one editor.
type Model struct {
	ed     *editor.Editor
	keys   KeyMap
	styles Styles
	logger *log.Logger

	width  int
	height int

	// status carries the last save failure until the next key press.
	status string
}

func New(ed *editor.Editor, cfg Config) Model {
	m := Model{
		ed:     ed,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		logger: cfg.Logger,
	}
	if cfg.KeyMap != nil {
		m.keys = *cfg.KeyMap
	}
	if cfg.Styles != nil {
		m.styles = *cfg.Styles
	}
	return m
}

// Editor exposes the controller, mainly for hosts that want to inspect
// state after the program exits.
func (m Model) Editor() *editor.Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	m.status = ""

	if msg.Type == tea.KeyEsc {
		switch {
		case m.ed.HelpActive():
			m.dispatch(editor.Message{Kind: editor.MsgToggleHelp})
		case m.ed.SearchPromptActive():
			m.dispatch(editor.Message{Kind: editor.MsgToggleSearch})
		}
		return m, nil
	}

	if em, ok := m.keys.messageFor(msg); ok {
		m.dispatch(em)
		return m, nil
	}

	switch msg.Type {
	case tea.KeySpace:
		m.dispatch(editor.InsertChar(' '))
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		for _, r := range msg.Runes {
			m.dispatch(editor.InsertChar(r))
		}
	}
	return m, nil
}

func (m *Model) dispatch(msg editor.Message) {
	if err := m.ed.Update(msg); err != nil {
		if m.logger != nil {
			m.logger.Error("save failed", "err", err)
		}
		m.status = err.Error()
	}
}
