package buffer

// CommandKind tags an undo-log entry.
type CommandKind uint8

const (
	// CmdInsert records bytes inserted at Off (the cursor offset before the
	// insertion).
	CmdInsert CommandKind = iota
	// CmdDeleteBefore records bytes removed backward; Off is the cursor
	// offset after the deletion, i.e. where the bytes belong.
	CmdDeleteBefore
	// CmdDeleteAfter records bytes removed forward; Off is the cursor offset,
	// which forward deletion does not move.
	CmdDeleteAfter
	// CmdCheckpoint marks a save point and carries no data.
	CmdCheckpoint
)

// Command is one undo-log entry. Data is owned by the command and never
// shared.
type Command struct {
	Kind CommandKind
	Off  int
	Data []byte
}

// History holds the undo and redo logs.
type History struct {
	undos []Command
	redos []Command
}

func NewHistory() *History {
	return &History{
		undos: make([]Command, 0, 8),
		redos: make([]Command, 0, 8),
	}
}

func (h *History) CanUndo() bool { return len(h.undos) > 0 }

func (h *History) CanRedo() bool { return len(h.redos) > 0 }

// Push records cmd, coalescing it with the top of the undo log when the two
// form one contiguous edit. Every push clears the redo log.
func (h *History) Push(cmd Command) {
	if n := len(h.undos); n > 0 {
		if merged, ok := merge(h.undos[n-1], cmd); ok {
			h.undos[n-1] = merged
			h.redos = h.redos[:0]
			return
		}
	}

	h.undos = append(h.undos, cmd)
	h.redos = h.redos[:0]
}

// merge reports whether next continues the edit recorded by top, and if so
// returns the combined command.
//
// Checkpoints are kept as their own undo steps; only consecutive checkpoints
// collapse.
func merge(top, next Command) (Command, bool) {
	if top.Kind != next.Kind {
		return Command{}, false
	}

	switch top.Kind {
	case CmdInsert:
		// Typing left to right: next starts where top ended.
		if top.Off+len(top.Data) == next.Off {
			return Command{Kind: CmdInsert, Off: top.Off, Data: concat(top.Data, next.Data)}, true
		}
	case CmdDeleteBefore:
		// Backspacing right to left: next ends where top started.
		if next.Off+len(next.Data) == top.Off {
			return Command{Kind: CmdDeleteBefore, Off: next.Off, Data: concat(next.Data, top.Data)}, true
		}
	case CmdDeleteAfter:
		// Deleting forward in place: the offset never moves.
		if top.Off == next.Off {
			return Command{Kind: CmdDeleteAfter, Off: top.Off, Data: concat(top.Data, next.Data)}, true
		}
	case CmdCheckpoint:
		return top, true
	}

	return Command{}, false
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Undo pops the undo log and applies the command's exact buffer-level
// inverse. No-op on an empty log. The popped command moves to the redo log.
func (h *History) Undo(buf *Buffer) bool {
	n := len(h.undos)
	if n == 0 {
		return false
	}

	cmd := h.undos[n-1]
	h.undos = h.undos[:n-1]

	switch cmd.Kind {
	case CmdInsert:
		buf.RevertInsert(cmd.Off, len(cmd.Data))
	case CmdDeleteBefore:
		buf.RevertDeleteBefore(cmd.Off, cmd.Data)
	case CmdDeleteAfter:
		buf.RevertDeleteAfter(cmd.Off, cmd.Data)
	case CmdCheckpoint:
	}

	h.redos = append(h.redos, cmd)
	return true
}

// Redo pops the redo log and replays the command through the buffer's normal
// mutation path. No-op on an empty log. The popped command moves back to the
// undo log.
//
// Unlike Undo, replay goes through Insert/Delete and may grow storage.
func (h *History) Redo(buf *Buffer) bool {
	n := len(h.redos)
	if n == 0 {
		return false
	}

	cmd := h.redos[n-1]
	h.redos = h.redos[:n-1]

	switch cmd.Kind {
	case CmdInsert:
		buf.Jump(cmd.Off)
		for _, r := range string(cmd.Data) {
			buf.Insert(r)
		}
	case CmdDeleteBefore:
		buf.Jump(cmd.Off + len(cmd.Data))
		for removed := 0; removed < len(cmd.Data); {
			data, ok := buf.DeleteBefore()
			if !ok {
				break
			}
			removed += len(data)
		}
	case CmdDeleteAfter:
		buf.Jump(cmd.Off)
		for removed := 0; removed < len(cmd.Data); {
			data, ok := buf.DeleteAfter()
			if !ok {
				break
			}
			removed += len(data)
		}
	case CmdCheckpoint:
	}

	h.undos = append(h.undos, cmd)
	return true
}
