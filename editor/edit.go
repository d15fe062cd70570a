package editor

import "github.com/nvanthao/sparrow/buffer"

func (e *Editor) insertChar(r rune) {
	e.dirty = true
	prev := e.buf.Offset()
	e.buf.Insert(r)

	e.hist.Push(buffer.Command{
		Kind: buffer.CmdInsert,
		Off:  prev,
		Data: []byte(string(r)),
	})
}

func (e *Editor) insertTab() {
	for i := 0; i < e.tabWidth; i++ {
		e.insertChar(' ')
	}
}

func (e *Editor) deleteBefore() {
	e.dirty = true

	if data, ok := e.buf.DeleteBefore(); ok {
		e.hist.Push(buffer.Command{
			Kind: buffer.CmdDeleteBefore,
			Off:  e.buf.Offset(),
			Data: data,
		})
	}
}

func (e *Editor) deleteAfter() {
	e.dirty = true

	if data, ok := e.buf.DeleteAfter(); ok {
		e.hist.Push(buffer.Command{
			Kind: buffer.CmdDeleteAfter,
			Off:  e.buf.Offset(),
			Data: data,
		})
	}
}

// cutToEndOfLine deletes forward to the line break. When the cursor already
// sits at the end of its line, the line break itself goes instead. If the
// cursor then sits at column 0 (the removed segment was the whole remaining
// line), one more backward deletion splices the empty line into the previous
// one.
func (e *Editor) cutToEndOfLine() {
	deleted := 0
	for {
		after := e.buf.After()
		if len(after) == 0 || after[0] == newline {
			break
		}
		e.deleteAfter()
		deleted++
	}

	if deleted == 0 {
		e.deleteAfter()
	}

	if e.column() == 0 {
		e.deleteBefore()
	}
}
