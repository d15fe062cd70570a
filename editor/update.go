package editor

// Update dispatches one message to completion. The only error it can return
// comes from a failed save; buffer and history state are untouched in that
// case.
func (e *Editor) Update(msg Message) error {
	// The help popup swallows everything except its own toggle.
	if e.mode == ModeHelpPopup {
		if msg.Kind == MsgToggleHelp {
			e.toggleHelp()
		}
		return nil
	}

	// Any further action makes a "just saved" indicator stale.
	e.saved = false

	if e.mode == ModeSearchPrompt {
		e.updateSearchPrompt(msg)
		return nil
	}
	return e.updateNormal(msg)
}

func (e *Editor) updateSearchPrompt(msg Message) {
	switch msg.Kind {
	case MsgInsertChar:
		if off, ok := e.isearch.Append(e.buf, msg.Rune); ok {
			e.buf.Jump(off)
		}
	case MsgDeleteBefore:
		if off, ok := e.isearch.Remove(e.buf); ok {
			e.buf.Jump(off)
		}
	case MsgInsertNewline:
		if off, ok := e.isearch.Next(); ok {
			e.buf.Jump(off)
		}
	case MsgNoop, MsgQuit:
	default:
		// Any other intent leaves the prompt and is discarded.
		e.toggleSearch()
	}
}

func (e *Editor) updateNormal(msg Message) error {
	switch msg.Kind {
	case MsgInsertChar:
		e.insertChar(msg.Rune)
	case MsgInsertNewline:
		e.insertChar('\n')
	case MsgInsertTab:
		e.insertTab()
	case MsgDeleteBefore:
		e.deleteBefore()
	case MsgDeleteAfter:
		e.deleteAfter()
	case MsgCutToEndOfLine:
		e.cutToEndOfLine()
	case MsgUndo:
		e.hist.Undo(e.buf)
	case MsgRedo:
		e.hist.Redo(e.buf)

	case MsgMoveForward:
		e.buf.MoveForward()
	case MsgMoveBackward:
		e.buf.MoveBackward()
	case MsgLineStart:
		e.jumpToLineStart()
	case MsgLineEnd:
		e.jumpToLineEnd()
	case MsgNextLine:
		e.jumpToNextLine()
	case MsgPreviousLine:
		e.jumpToPreviousLine()

	case MsgSave:
		return e.Save()
	case MsgToggleHelp:
		e.toggleHelp()
	case MsgToggleSearch:
		e.toggleSearch()
	case MsgNoop, MsgQuit:
	}

	return nil
}
