package editor

import (
	"strings"
	"testing"
)

func typeString(t *testing.T, e *Editor, text string) {
	t.Helper()
	for _, r := range text {
		var msg Message
		switch r {
		case '\n':
			msg = Message{Kind: MsgInsertNewline}
		default:
			msg = InsertChar(r)
		}
		if err := e.Update(msg); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
}

func dispatch(t *testing.T, e *Editor, kinds ...MessageKind) {
	t.Helper()
	for _, k := range kinds {
		if err := e.Update(Message{Kind: k}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
}

func TestUpdate_TypingBuildsDocument(t *testing.T) {
	e := New("", "f.txt")
	typeString(t, e, "hello world\nhi")

	if got := e.Buffer().String(); got != "hello world\nhi" {
		t.Fatalf("text=%q, want %q", got, "hello world\nhi")
	}
	if got, want := e.Point(), (Point{Col: 2, Row: 1}); got != want {
		t.Fatalf("point: got %+v, want %+v", got, want)
	}
	if !e.Modified() {
		t.Fatal("typing should mark the document modified")
	}
}

func TestUpdate_InsertTab(t *testing.T) {
	e := New("", "f.txt")
	dispatch(t, e, MsgInsertTab)

	if got := e.Buffer().String(); got != "    " {
		t.Fatalf("text=%q, want four spaces", got)
	}
}

func TestSetTabWidth(t *testing.T) {
	e := New("", "f.txt")
	e.SetTabWidth(2)
	dispatch(t, e, MsgInsertTab)

	if got := e.Buffer().String(); got != "  " {
		t.Fatalf("text=%q, want two spaces", got)
	}

	// Zero is ignored; SetTabWidth(0) keeps the current width.
	e.SetTabWidth(0)
	dispatch(t, e, MsgInsertTab)
	if got := e.Buffer().String(); got != "    " {
		t.Fatalf("text=%q, want four spaces", got)
	}
}

func TestLineMotions(t *testing.T) {
	e := New("hello\nhi\nworld", "f.txt")

	dispatch(t, e, MsgLineEnd)
	if got := e.Buffer().Offset(); got != 5 {
		t.Fatalf("line end: offset got %d, want 5", got)
	}

	// The byte column carries over; "hi" is shorter, so the cursor clamps
	// to its end.
	dispatch(t, e, MsgNextLine)
	if got := e.Buffer().Offset(); got != 8 {
		t.Fatalf("next line: offset got %d, want 8", got)
	}

	dispatch(t, e, MsgNextLine)
	if got := e.Buffer().Offset(); got != 11 {
		t.Fatalf("next line: offset got %d, want 11", got)
	}

	dispatch(t, e, MsgPreviousLine)
	if got := e.Buffer().Offset(); got != 8 {
		t.Fatalf("previous line: offset got %d, want 8", got)
	}

	dispatch(t, e, MsgLineStart)
	if got := e.Buffer().Offset(); got != 6 {
		t.Fatalf("line start: offset got %d, want 6", got)
	}
}

func TestCutToEndOfLine(t *testing.T) {
	e := New("hello world\nnext", "f.txt")
	e.Buffer().Jump(5)

	dispatch(t, e, MsgCutToEndOfLine)
	if got := e.Buffer().String(); got != "hello\nnext" {
		t.Fatalf("text=%q, want %q", got, "hello\nnext")
	}

	// At the end of the line the cut takes the line break itself.
	dispatch(t, e, MsgCutToEndOfLine)
	if got := e.Buffer().String(); got != "hellonext" {
		t.Fatalf("text=%q, want %q", got, "hellonext")
	}
}

func TestUndoRedo_Scenario(t *testing.T) {
	e := New("hello world\n", "f.txt")
	e.Buffer().Jump(11)
	dispatch(t, e, MsgDeleteBefore, MsgDeleteBefore)

	if got := e.Buffer().String(); got != "hello wor\n" {
		t.Fatalf("text=%q, want %q", got, "hello wor\n")
	}

	dispatch(t, e, MsgUndo)
	if got := e.Buffer().String(); got != "hello world\n" {
		t.Fatalf("after undo: text=%q, want %q", got, "hello world\n")
	}

	dispatch(t, e, MsgRedo)
	if got := e.Buffer().String(); got != "hello wor\n" {
		t.Fatalf("after redo: text=%q, want %q", got, "hello wor\n")
	}
}

func TestUndoRedo_NewlineRoundTrip(t *testing.T) {
	e := New("hello world", "f.txt")
	dispatch(t, e, MsgLineEnd, MsgDeleteBefore, MsgDeleteBefore)
	typeString(t, e, "\n")

	if got := e.Buffer().String(); got != "hello wor\n" {
		t.Fatalf("text=%q, want %q", got, "hello wor\n")
	}

	// The newline insert chains separately from the deletions, so one undo
	// takes back only the newline.
	dispatch(t, e, MsgUndo)
	if got := e.Buffer().String(); got != "hello wor" {
		t.Fatalf("after undo: text=%q, want %q", got, "hello wor")
	}

	dispatch(t, e, MsgRedo, MsgMoveForward)
	if got := e.Buffer().String(); got != "hello wor\n" {
		t.Fatalf("after redo: text=%q, want %q", got, "hello wor\n")
	}
}

func TestSearch_MovesCursorThroughMatches(t *testing.T) {
	e := New("hello world\n\nxin chao\n", "f.txt")

	dispatch(t, e, MsgToggleSearch)
	if !e.SearchPromptActive() {
		t.Fatal("search prompt should be active")
	}

	typeString(t, e, "o")
	if got, want := e.Point(), (Point{Col: 4, Row: 0}); got != want {
		t.Fatalf("point: got %+v, want %+v", got, want)
	}

	// Enter cycles; typing "\n" routes to the prompt as the cycle key.
	dispatch(t, e, MsgInsertNewline)
	if got, want := e.Point(), (Point{Col: 7, Row: 0}); got != want {
		t.Fatalf("point: got %+v, want %+v", got, want)
	}
	dispatch(t, e, MsgInsertNewline)
	if got, want := e.Point(), (Point{Col: 7, Row: 2}); got != want {
		t.Fatalf("point: got %+v, want %+v", got, want)
	}
	dispatch(t, e, MsgInsertNewline)
	if got, want := e.Point(), (Point{Col: 4, Row: 0}); got != want {
		t.Fatalf("point: got %+v, want %+v", got, want)
	}

	// Any non-prompt intent leaves the prompt; the next character is a
	// plain insertion at the match the cursor landed on.
	dispatch(t, e, MsgMoveForward)
	if e.SearchPromptActive() {
		t.Fatal("search prompt should have closed")
	}
	e.Buffer().Jump(4)
	typeString(t, e, "z")
	if got := e.Buffer().String(); !strings.HasPrefix(got, "hellzo") {
		t.Fatalf("text=%q, want %q prefix", got, "hellzo")
	}
}

func TestSearchPrompt_BackspaceEditsTerm(t *testing.T) {
	e := New("abc", "f.txt")
	dispatch(t, e, MsgToggleSearch)
	typeString(t, e, "ab")

	if got := e.SearchTerm(); got != "ab" {
		t.Fatalf("term=%q, want %q", got, "ab")
	}

	dispatch(t, e, MsgDeleteBefore)
	if got := e.SearchTerm(); got != "a" {
		t.Fatalf("term=%q, want %q", got, "a")
	}

	// Removing the last character empties the term and closes nothing; the
	// prompt stays up for a fresh term.
	dispatch(t, e, MsgDeleteBefore)
	if got := e.SearchTerm(); got != "" {
		t.Fatalf("term=%q, want empty", got)
	}
}

func TestHelpPopup_SwallowsEdits(t *testing.T) {
	e := New("abc", "f.txt")
	dispatch(t, e, MsgToggleHelp)
	if !e.HelpActive() {
		t.Fatal("help should be active")
	}

	typeString(t, e, "x")
	dispatch(t, e, MsgDeleteAfter)
	if got := e.Buffer().String(); got != "abc" {
		t.Fatalf("text=%q, want %q unchanged", got, "abc")
	}

	dispatch(t, e, MsgToggleHelp)
	if e.HelpActive() {
		t.Fatal("help should have closed")
	}
	typeString(t, e, "x")
	if got := e.Buffer().String(); got != "xabc" {
		t.Fatalf("text=%q, want %q", got, "xabc")
	}
}
