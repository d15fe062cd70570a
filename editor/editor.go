package editor

import (
	"github.com/nvanthao/sparrow/buffer"
	"github.com/nvanthao/sparrow/search"
)

const newline = byte('\n')

// Mode is the controller's routing state. SearchPrompt and HelpPopup are
// mutually exclusive, so the mode is a single variant rather than
// independent flags.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeSearchPrompt
	ModeHelpPopup
)

// Editor owns one buffer, one undo history, and one search index, plus the
// dirty/saved flags and the viewport top line.
type Editor struct {
	path string
	mode Mode

	dirty bool
	saved bool

	buf     *buffer.Buffer
	hist    *buffer.History
	isearch *search.Index

	top      int
	tabWidth int
}

// New builds an editor over the initial document text, saving to path.
func New(text, path string) *Editor {
	return &Editor{
		path:     path,
		buf:      buffer.New(text),
		hist:     buffer.NewHistory(),
		isearch:  search.New(),
		tabWidth: 4,
	}
}

// SetTabWidth changes the number of spaces a tab inserts. Values below 1 are
// ignored.
func (e *Editor) SetTabWidth(n int) {
	if n >= 1 {
		e.tabWidth = n
	}
}

// Path returns the save target.
func (e *Editor) Path() string { return e.path }

// Buffer exposes the document for read-only collaborators.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Modified reports whether the document has unsaved edits.
func (e *Editor) Modified() bool { return e.dirty }

// Saved reports whether the last dispatched action was a successful save.
func (e *Editor) Saved() bool { return e.saved }

// SearchPromptActive reports whether input is routed to the search prompt.
func (e *Editor) SearchPromptActive() bool { return e.mode == ModeSearchPrompt }

// HelpActive reports whether the help popup is shown.
func (e *Editor) HelpActive() bool { return e.mode == ModeHelpPopup }

// SearchTerm returns the current incremental-search term.
func (e *Editor) SearchTerm() string { return e.isearch.Term() }

// Top returns the viewport top line.
func (e *Editor) Top() int { return e.top }

func (e *Editor) toggleHelp() {
	if e.mode == ModeHelpPopup {
		e.mode = ModeNormal
	} else {
		e.mode = ModeHelpPopup
	}
}

func (e *Editor) toggleSearch() {
	if e.mode == ModeSearchPrompt {
		e.mode = ModeNormal
		e.isearch.Clear()
	} else {
		e.mode = ModeSearchPrompt
		e.isearch.Activate()
	}
}
