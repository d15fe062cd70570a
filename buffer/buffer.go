package buffer

import "unicode/utf8"

// DefaultGapLen is the gap pre-allocated when a buffer is created.
const DefaultGapLen = 1024

// Buffer is a gap buffer over bytes.
//
//	[.....|                    |..........]
//	      ^iptr <-- gapLen --> ^iptr+gapLen
//
// The bytes before iptr and the bytes from iptr+gapLen on form the logical
// document; together they are always valid UTF-8, and iptr always sits on a
// codepoint boundary. The logical offset of the cursor equals iptr.
type Buffer struct {
	iptr   int
	gapLen int
	bytes  []byte
}

// New creates a buffer holding text, with the gap placed at offset 0.
func New(text string) *Buffer {
	b := make([]byte, DefaultGapLen+len(text))
	copy(b[DefaultGapLen:], text)
	return &Buffer{iptr: 0, gapLen: DefaultGapLen, bytes: b}
}

// Offset returns the logical offset of the cursor.
func (b *Buffer) Offset() int { return b.iptr }

// Len returns the logical document length in bytes.
func (b *Buffer) Len() int { return len(b.bytes) - b.gapLen }

// Before returns the document bytes before the cursor.
// The slice aliases internal storage and is invalidated by any mutation.
func (b *Buffer) Before() []byte { return b.bytes[:b.iptr] }

// After returns the document bytes at and after the cursor.
// The slice aliases internal storage and is invalidated by any mutation.
func (b *Buffer) After() []byte { return b.bytes[b.iptr+b.gapLen:] }

// String returns the logical document content.
func (b *Buffer) String() string {
	out := make([]byte, 0, b.Len())
	out = append(out, b.Before()...)
	out = append(out, b.After()...)
	return string(out)
}

// Jump repositions the cursor to the logical offset n, one codepoint at a
// time. Cost is O(|n - Offset()|) bytes.
func (b *Buffer) Jump(n int) {
	for b.iptr > n {
		prev := b.iptr
		b.MoveBackward()
		if b.iptr == prev {
			return
		}
	}
	for b.iptr < n {
		prev := b.iptr
		b.MoveForward()
		if b.iptr == prev {
			return
		}
	}
}

// MoveForward relocates one codepoint from after the gap to before it.
// No-op at the end of the buffer.
//
// The codepoint length is unknown in advance, so the operation probes
// increasing byte counts and accepts the first prefix that is valid UTF-8.
func (b *Buffer) MoveForward() {
	i := b.iptr + b.gapLen
	if i == len(b.bytes) {
		return
	}

	for j := 0; j < utf8.UTFMax; j++ {
		b.bytes[b.iptr+j] = b.bytes[i+j]
		if utf8.Valid(b.bytes[i : i+j+1]) {
			b.iptr += j + 1
			return
		}
	}

	panic("buffer: corrupted utf8")
}

// MoveBackward relocates one codepoint from before the gap to after it.
// No-op at the start of the buffer.
func (b *Buffer) MoveBackward() {
	if b.iptr == 0 {
		return
	}

	i := b.iptr - 1
	for j := 0; j < utf8.UTFMax; j++ {
		b.bytes[i-j+b.gapLen] = b.bytes[i-j]
		if utf8.Valid(b.bytes[i-j : i+1]) {
			b.iptr -= j + 1
			return
		}
	}

	panic("buffer: corrupted utf8")
}

// Insert writes one codepoint at the cursor.
//
// Growth policy: when the gap shrinks below a quarter of total capacity the
// storage doubles, the post-gap tail moves to the new end, and the vacated
// region becomes part of the gap. This keeps insertion amortized O(1).
func (b *Buffer) Insert(r rune) {
	if b.gapLen < len(b.bytes)/4 {
		oldLen := len(b.bytes)
		grown := make([]byte, oldLen*2)
		copy(grown, b.bytes[:b.iptr])
		tail := b.bytes[b.iptr+b.gapLen:]
		copy(grown[len(grown)-len(tail):], tail)
		b.bytes = grown
		b.gapLen += oldLen
	}

	if b.gapLen < utf8.UTFMax {
		panic("buffer: not enough space for insertion")
	}

	n := utf8.EncodeRune(b.bytes[b.iptr:b.iptr+utf8.UTFMax], r)
	b.iptr += n
	b.gapLen -= n
}

// DeleteBefore removes the codepoint immediately before the cursor and
// returns its bytes. Returns false at the start of the buffer.
func (b *Buffer) DeleteBefore() ([]byte, bool) {
	if b.iptr == 0 {
		return nil, false
	}

	i := b.iptr - 1
	for j := 0; j < utf8.UTFMax; j++ {
		if utf8.Valid(b.bytes[i:b.iptr]) {
			removed := append([]byte(nil), b.bytes[i:b.iptr]...)
			b.gapLen += b.iptr - i
			b.iptr = i
			return removed, true
		}
		if i == 0 {
			break
		}
		i--
	}

	panic("buffer: corrupted utf8")
}

// DeleteAfter removes the codepoint immediately after the cursor and returns
// its bytes. Returns false at the end of the buffer.
func (b *Buffer) DeleteAfter() ([]byte, bool) {
	i := b.iptr + b.gapLen
	if i == len(b.bytes) {
		return nil, false
	}

	for j := 0; j < utf8.UTFMax; j++ {
		if utf8.Valid(b.bytes[i : i+j+1]) {
			removed := append([]byte(nil), b.bytes[i:i+j+1]...)
			b.gapLen += j + 1
			return removed, true
		}
	}

	panic("buffer: corrupted utf8")
}

// RevertInsert undoes an insertion of n bytes made at cursor offset prevIptr:
// the gap returns to prevIptr and swallows the inserted bytes. O(1) beyond
// the jump; never grows storage.
func (b *Buffer) RevertInsert(prevIptr, n int) {
	b.Jump(prevIptr)
	b.gapLen += n
	if b.gapLen > len(b.bytes) {
		b.gapLen = len(b.bytes)
	}
}

// RevertDeleteBefore undoes a backward deletion: removed is written back into
// its original position before the gap and the cursor returns past it.
// prevIptr is the cursor offset recorded after the deletion.
func (b *Buffer) RevertDeleteBefore(prevIptr int, removed []byte) {
	b.Jump(prevIptr)
	b.gapLen -= len(removed)
	if b.gapLen < 0 {
		b.gapLen = 0
	}
	copy(b.bytes[b.iptr:], removed)
	b.iptr += len(removed)
}

// RevertDeleteAfter undoes a forward deletion: removed is written back just
// after the gap. prevIptr is the cursor offset recorded after the deletion
// (forward deletion does not move the cursor).
func (b *Buffer) RevertDeleteAfter(prevIptr int, removed []byte) {
	b.Jump(prevIptr)
	b.gapLen -= len(removed)
	if b.gapLen < 0 {
		b.gapLen = 0
	}
	copy(b.bytes[b.iptr+b.gapLen:], removed)
}
