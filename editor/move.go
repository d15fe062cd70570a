package editor

// Point is a cursor position: Col in bytes since the last line break, Row in
// line breaks from the document start.
type Point struct {
	Col int
	Row int
}

// Point computes the cursor's (column, row) by scanning from the document
// start. O(position); fine at the document sizes this editor targets.
func (e *Editor) Point() Point {
	var p Point
	for _, b := range e.buf.Before() {
		if b == newline {
			p.Row++
			p.Col = 0
		} else {
			p.Col++
		}
	}
	return p
}

// column returns the byte column of the cursor within its line.
func (e *Editor) column() int {
	before := e.buf.Before()
	col := 0
	for i := len(before) - 1; i >= 0; i-- {
		if before[i] == newline {
			break
		}
		col++
	}
	return col
}

func (e *Editor) jumpToLineStart() {
	for {
		before := e.buf.Before()
		if len(before) == 0 || before[len(before)-1] == newline {
			return
		}
		e.buf.MoveBackward()
	}
}

func (e *Editor) jumpToLineEnd() {
	for {
		after := e.buf.After()
		if len(after) == 0 || after[0] == newline {
			return
		}
		e.buf.MoveForward()
	}
}

// jumpToNextLine moves to the next line, keeping the byte column when the
// target line is long enough.
func (e *Editor) jumpToNextLine() {
	col := e.column()
	e.jumpToLineEnd()
	e.buf.MoveForward()

	for e.column() < col {
		after := e.buf.After()
		if len(after) == 0 || after[0] == newline {
			return
		}
		e.buf.MoveForward()
	}
}

// jumpToPreviousLine moves to the previous line, clamping to its end when it
// is shorter than the current byte column.
func (e *Editor) jumpToPreviousLine() {
	col := e.column()
	e.jumpToLineStart()
	e.buf.MoveBackward()

	for e.column() > col {
		e.buf.MoveBackward()
	}
}
