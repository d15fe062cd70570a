package buffer

import "testing"

func collect(it *Iter) string {
	out := make([]byte, 0, 16)
	for {
		c, ok := it.Next()
		if !ok {
			return string(out)
		}
		out = append(out, c)
	}
}

func TestIter_SkipsGap(t *testing.T) {
	b := New("hello")
	b.Jump(3)

	if got := collect(b.Iter()); got != "hello" {
		t.Fatalf("text=%q, want %q", got, "hello")
	}
}

func TestIter_GapAtEnd(t *testing.T) {
	b := New("ab")
	b.Jump(2)

	if got := collect(b.Iter()); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
}

func TestIter_EmptyBuffer(t *testing.T) {
	b := New("")
	if _, ok := b.Iter().Next(); ok {
		t.Fatal("empty buffer should yield nothing")
	}
}

func TestIter_Seek(t *testing.T) {
	b := New("hello")
	b.Jump(2)

	it := b.Iter()
	it.Seek(3)
	if got := collect(it); got != "lo" {
		t.Fatalf("text=%q, want %q", got, "lo")
	}
}
