package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/nvanthao/sparrow/editor"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 1 {
		return ""
	}

	textHeight := m.height - 1
	point := m.ed.Point()
	x, y := m.ed.ScrollIntoView(point, textHeight)

	rows := m.ed.Segments(textHeight)
	lines := make([]string, 0, textHeight)
	for i, segs := range rows {
		lines = append(lines, m.renderRow(segs, i == y, x))
	}
	for len(lines) < textHeight {
		lines = append(lines, "")
	}

	view := strings.Join(lines, "\n") + "\n" + m.statusLine(point)
	if m.ed.HelpActive() {
		view = overlay.Composite(m.helpView(), view, overlay.Center, overlay.Center, 0, 0)
	}
	return view
}

// renderRow styles one row's segments and, on the cursor row, reverses the
// glyph under the cursor. A cursor past the last glyph shows as a reversed
// space. col is the cursor's byte offset within the row.
func (m Model) renderRow(segs []editor.Segment, cursorRow bool, col int) string {
	var sb strings.Builder
	off := 0
	cursorDrawn := !cursorRow
	for _, seg := range segs {
		style := m.styles.Text
		if seg.Current {
			style = m.styles.MatchCurrent
		} else if seg.Match {
			style = m.styles.Match
		}

		text := seg.Text
		if !cursorDrawn && col < off+len(text) {
			i := col - off
			_, n := utf8.DecodeRuneInString(text[i:])
			if i > 0 {
				sb.WriteString(style.Render(text[:i]))
			}
			sb.WriteString(m.styles.Cursor.Render(text[i : i+n]))
			if i+n < len(text) {
				sb.WriteString(style.Render(text[i+n:]))
			}
			cursorDrawn = true
		} else if text != "" {
			sb.WriteString(style.Render(text))
		}
		off += len(text)
	}
	if !cursorDrawn {
		sb.WriteString(m.styles.Cursor.Render(" "))
	}
	return truncate.String(sb.String(), uint(m.width))
}

func (m Model) statusLine(p editor.Point) string {
	if m.ed.SearchPromptActive() {
		line := m.styles.Prompt.Render("search: "+m.ed.SearchTerm()) + m.styles.Cursor.Render(" ")
		return truncate.String(line, uint(m.width))
	}

	left := m.ed.Path()
	if m.ed.Modified() {
		left += " [+]"
	}
	if m.ed.Saved() {
		left += "  saved"
	}
	if m.status != "" {
		left += "  " + m.status
	}
	right := fmt.Sprintf("%d,%d", p.Row+1, p.Col+1)

	pad := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 1 {
		pad = 1
	}
	line := left + strings.Repeat(" ", pad) + right
	return m.styles.Status.Render(truncate.String(line, uint(m.width)))
}

func (m Model) helpView() string {
	km := m.keys

	var sb strings.Builder
	for i, b := range []key.Binding{
		km.Forward, km.Backward, km.Up, km.Down,
		km.LineStart, km.LineEnd,
		km.Backspace, km.Delete, km.Enter, km.Tab, km.KillLine,
		km.Undo, km.Redo,
		km.Save, km.Search, km.Help, km.Quit,
	} {
		if i > 0 {
			sb.WriteByte('\n')
		}
		h := b.Help()
		sb.WriteString(fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	return m.styles.Help.Render(sb.String())
}
