package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSave_WritesDocumentAndFlipsFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	e := New("", path)
	typeString(t, e, "hello\n")

	if err := e.Update(Message{Kind: MsgSave}); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := string(data); got != "hello\n" {
		t.Fatalf("file=%q, want %q", got, "hello\n")
	}
	if e.Modified() {
		t.Fatal("save should clear the modified flag")
	}
	if !e.Saved() {
		t.Fatal("save should set the saved flag")
	}

	// The next action retires the saved indicator.
	dispatch(t, e, MsgMoveForward)
	if e.Saved() {
		t.Fatal("saved flag should clear on the next action")
	}
}

func TestSave_CursorPositionDoesNotMatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	e := New("hello world", path)
	e.Buffer().Jump(5)

	if err := e.Update(Message{Kind: MsgSave}); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, _ := os.ReadFile(path)
	if got := string(data); got != "hello world" {
		t.Fatalf("file=%q, want %q", got, "hello world")
	}
}

func TestSave_FailureKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "doc.txt")
	e := New("", path)
	typeString(t, e, "x")

	err := e.Update(Message{Kind: MsgSave})
	if err == nil {
		t.Fatal("save into a missing directory should fail")
	}
	if !e.Modified() {
		t.Fatal("failed save must leave the modified flag set")
	}
	if e.Saved() {
		t.Fatal("failed save must not set the saved flag")
	}
	if got := e.Buffer().String(); got != "x" {
		t.Fatalf("text=%q, want %q", got, "x")
	}
}

func TestSave_PushesCheckpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	e := New("", path)
	typeString(t, e, "ab")

	if err := e.Update(Message{Kind: MsgSave}); err != nil {
		t.Fatalf("save: %v", err)
	}

	// First undo pops the checkpoint and leaves the text alone; the second
	// takes the edit back.
	dispatch(t, e, MsgUndo)
	if got := e.Buffer().String(); got != "ab" {
		t.Fatalf("after first undo: text=%q, want %q", got, "ab")
	}
	dispatch(t, e, MsgUndo)
	if got := e.Buffer().String(); got != "" {
		t.Fatalf("after second undo: text=%q, want empty", got)
	}
}
