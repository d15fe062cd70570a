package buffer

// Iter is a lazy, restartable cursor over the logical document bytes. It
// skips the gap transparently and never exposes raw storage positions.
//
// An Iter is read-only; it must not be used across buffer mutations.
type Iter struct {
	buf     *Buffer
	current int
}

// Iter returns a cursor positioned at logical offset 0.
func (b *Buffer) Iter() *Iter {
	return &Iter{buf: b}
}

// Next returns the next logical byte, or false when the document is
// exhausted.
func (it *Iter) Next() (byte, bool) {
	if it.current == len(it.buf.bytes) {
		return 0, false
	}

	if it.current == it.buf.iptr {
		it.current += it.buf.gapLen
		if it.current >= len(it.buf.bytes) {
			return 0, false
		}
	}

	res := it.buf.bytes[it.current]
	it.current++
	return res, true
}

// Seek restarts the cursor and advances it to logical offset n. O(n).
func (it *Iter) Seek(n int) {
	next := it.buf.Iter()
	for i := 0; i < n; i++ {
		next.Next()
	}
	*it = *next
}
