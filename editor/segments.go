package editor

import "strings"

// Segment is a run of text within a row, tagged with its search highlight
// state. Match marks any search hit, Current the one the cursor cycles to.
type Segment struct {
	Text    string
	Match   bool
	Current bool
}

// Segments returns the visible rows [Top, Top+height) as styled runs. Each
// row's segments concatenate to the line text without its trailing break.
// Search matches never span a line break, so a match always falls inside a
// single row.
func (e *Editor) Segments(height int) [][]Segment {
	content := e.buf.String()
	matches := e.isearch.Matches()
	termLen := len(e.isearch.Term())
	currentOff := -1
	if len(matches) > 0 {
		currentOff = matches[e.isearch.Current()]
	}

	lines := strings.Split(content, "\n")
	last := e.top + height
	if last > len(lines) {
		last = len(lines)
	}

	rows := make([][]Segment, 0, height)
	off := 0
	mi := 0
	for row := 0; row < last; row++ {
		line := lines[row]
		lineEnd := off + len(line)
		if row < e.top {
			off = lineEnd + 1
			for mi < len(matches) && matches[mi] < off {
				mi++
			}
			continue
		}

		segs := make([]Segment, 0, 1)
		at := off
		for mi < len(matches) && matches[mi] < lineEnd {
			m := matches[mi]
			if m > at {
				segs = append(segs, Segment{Text: content[at:m]})
			}
			segs = append(segs, Segment{
				Text:    content[m : m+termLen],
				Match:   true,
				Current: m == currentOff,
			})
			at = m + termLen
			mi++
		}
		if at < lineEnd || len(segs) == 0 {
			segs = append(segs, Segment{Text: content[at:lineEnd]})
		}
		rows = append(rows, segs)
		off = lineEnd + 1
	}
	return rows
}

// ScrollIntoView adjusts the viewport top so the cursor row is visible,
// scrolling by half pages, and returns the cursor position in screen
// coordinates.
func (e *Editor) ScrollIntoView(p Point, height int) (x, y int) {
	if height > 0 {
		if p.Row >= e.top+height {
			e.top += height / 2
			if p.Row > e.top {
				e.top = p.Row
			}
		} else if p.Row < e.top {
			e.top -= height / 2
			if e.top < 0 {
				e.top = 0
			}
			if p.Row < e.top {
				e.top = p.Row
			}
		}
	}
	return p.Col, p.Row - e.top
}
