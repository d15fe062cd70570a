// Package search implements sparrow's incremental substring search: a small
// state machine that scans the live buffer content for literal matches of a
// growing or shrinking term.
package search

import (
	"strings"

	"github.com/nvanthao/sparrow/buffer"
)

// Index is the incremental-search state. It is either inactive or active
// with a term, the ascending byte offsets of every match in the current
// document, and a cursor into that list.
//
// Index reads buffer content but never mutates it.
type Index struct {
	active  bool
	term    []rune
	matches []int
	current int
}

func New() *Index {
	return &Index{
		term:    make([]rune, 0, 64),
		matches: make([]int, 0, 32),
	}
}

// Activate enters the active state, discarding any previous term and matches.
func (ix *Index) Activate() {
	ix.Clear()
	ix.active = true
}

// Clear leaves the active state and drops the term and matches.
func (ix *Index) Clear() {
	ix.active = false
	ix.term = ix.term[:0]
	ix.matches = ix.matches[:0]
	ix.current = 0
}

func (ix *Index) Active() bool { return ix.active }

// Term returns the current search term.
func (ix *Index) Term() string { return string(ix.term) }

// Matches returns the ascending byte offsets of every match. The slice is
// owned by the index; callers must not modify it.
func (ix *Index) Matches() []int { return ix.matches }

// Current returns the index into Matches the cursor is on.
func (ix *Index) Current() int { return ix.current }

// Append pushes r onto the term and rescans buf. It reports the offset of
// the first match, or false when there is none.
func (ix *Index) Append(buf *buffer.Buffer, r rune) (int, bool) {
	ix.term = append(ix.term, r)
	return ix.rescan(buf)
}

// Remove pops the last character of the term and rescans buf. When the term
// becomes empty the index goes inactive and reports no offset.
func (ix *Index) Remove(buf *buffer.Buffer) (int, bool) {
	if len(ix.term) > 0 {
		ix.term = ix.term[:len(ix.term)-1]
	}
	return ix.rescan(buf)
}

// Next advances the cursor cyclically and reports the offset it lands on.
// No-op when there are no matches.
func (ix *Index) Next() (int, bool) {
	if len(ix.matches) == 0 {
		return 0, false
	}

	ix.current = (ix.current + 1) % len(ix.matches)
	return ix.matches[ix.current], true
}

// rescan finds all non-overlapping literal occurrences of the term in the
// logical document, left to right, case-sensitive. The match cursor resets
// to the first match.
func (ix *Index) rescan(buf *buffer.Buffer) (int, bool) {
	if len(ix.term) == 0 {
		ix.Clear()
		return 0, false
	}

	content := buf.String()
	term := string(ix.term)

	ix.matches = ix.matches[:0]
	for off := 0; ; {
		i := strings.Index(content[off:], term)
		if i < 0 {
			break
		}
		ix.matches = append(ix.matches, off+i)
		off += i + len(term)
	}
	ix.current = 0

	if len(ix.matches) == 0 {
		return 0, false
	}
	return ix.matches[0], true
}
