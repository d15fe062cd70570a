package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvanthao/sparrow/editor"
)

// KeyMap defines the key bindings.
//
// Control chords carry the commands; arrow keys and home/end work as
// fallbacks for movement.
type KeyMap struct {
	Forward, Backward, Up, Down key.Binding
	LineStart, LineEnd          key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding
	KillLine          key.Binding

	Undo, Redo key.Binding

	Save, Search, Help, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward:  key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→/ctrl+f", "forward")),
		Backward: key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←/ctrl+b", "backward")),
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/ctrl+p", "previous line")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓/ctrl+n", "next line")),

		LineStart: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home/ctrl+a", "line start")),
		LineEnd:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end/ctrl+e", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del/ctrl+d", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		KillLine:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "cut to end of line")),

		Undo: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "redo")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Search: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "search")),
		Help:   key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// messageFor translates a chord into the editor message it drives. Plain
// text input is handled by the model, not here.
func (km KeyMap) messageFor(msg tea.KeyMsg) (editor.Message, bool) {
	switch {
	case key.Matches(msg, km.Forward):
		return editor.Message{Kind: editor.MsgMoveForward}, true
	case key.Matches(msg, km.Backward):
		return editor.Message{Kind: editor.MsgMoveBackward}, true
	case key.Matches(msg, km.Up):
		return editor.Message{Kind: editor.MsgPreviousLine}, true
	case key.Matches(msg, km.Down):
		return editor.Message{Kind: editor.MsgNextLine}, true
	case key.Matches(msg, km.LineStart):
		return editor.Message{Kind: editor.MsgLineStart}, true
	case key.Matches(msg, km.LineEnd):
		return editor.Message{Kind: editor.MsgLineEnd}, true

	case key.Matches(msg, km.Backspace):
		return editor.Message{Kind: editor.MsgDeleteBefore}, true
	case key.Matches(msg, km.Delete):
		return editor.Message{Kind: editor.MsgDeleteAfter}, true
	case key.Matches(msg, km.Enter):
		return editor.Message{Kind: editor.MsgInsertNewline}, true
	case key.Matches(msg, km.Tab):
		return editor.Message{Kind: editor.MsgInsertTab}, true
	case key.Matches(msg, km.KillLine):
		return editor.Message{Kind: editor.MsgCutToEndOfLine}, true

	case key.Matches(msg, km.Undo):
		return editor.Message{Kind: editor.MsgUndo}, true
	case key.Matches(msg, km.Redo):
		return editor.Message{Kind: editor.MsgRedo}, true

	case key.Matches(msg, km.Save):
		return editor.Message{Kind: editor.MsgSave}, true
	case key.Matches(msg, km.Search):
		return editor.Message{Kind: editor.MsgToggleSearch}, true
	case key.Matches(msg, km.Help):
		return editor.Message{Kind: editor.MsgToggleHelp}, true
	}
	return editor.Message{}, false
}
