package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/termide/buffer"
	"github.com/iw2rmb/termide/internal/grapheme"
	"github.com/iw2rmb/termide/selection"
)

// rowMarks is what the selection set paints on one line.
type rowMarks struct {
	// spans are selected [start, end) rune columns.
	spans [][2]int
	// cursors maps a rune column to whether it holds the primary cursor.
	cursors map[int]bool
}

func (rm rowMarks) selected(col int) bool {
	for _, sp := range rm.spans {
		if col >= sp[0] && col < sp[1] {
			return true
		}
	}
	return false
}

func (m *Model) renderContent() string {
	buf := m.ed.Buffer()
	n := buf.LineCount()
	marks := m.marksByRow(n)
	primaryRow := m.ed.Cursor().Row

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}

	left := max(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	// only rows inside the viewport are highlighted
	hlStart, hlEnd := 0, 0
	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); m.cfg.Highlighter != nil && h > 0 {
		hlStart = min(max(m.viewport.YOffset, 0), n)
		hlEnd = min(hlStart+h, n)
	}

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == primaryRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		line, _ := buf.Line(row)
		runes := []rune(line)
		var spans []HighlightSpan
		if row >= hlStart && row < hlEnd {
			spans = m.highlight(row, line, len(runes))
		}
		sb.WriteString(m.renderLine(runes, marks[row], spans, left, right))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// marksByRow spreads the selection set over the rows it touches.
func (m *Model) marksByRow(n int) []rowMarks {
	marks := make([]rowMarks, n)
	primary := m.ed.PrimaryIndex()
	for i, sel := range m.ed.Selections() {
		if m.focused {
			rm := &marks[sel.Head.Row]
			if rm.cursors == nil {
				rm.cursors = make(map[int]bool)
			}
			rm.cursors[sel.Head.Col] = rm.cursors[sel.Head.Col] || i == primary
		}
		if sel.IsEmpty() {
			continue
		}
		addSpans(marks, sel)
	}
	return marks
}

func addSpans(marks []rowMarks, sel selection.Selection) {
	start, end := sel.Start(), sel.End()
	for row := start.Row; row <= end.Row && row < len(marks); row++ {
		from, to := 0, int(^uint(0)>>1)
		if row == start.Row {
			from = start.Col
		}
		if row == end.Row {
			to = end.Col
		}
		marks[row].spans = append(marks[row].spans, [2]int{from, to})
	}
}

// renderLine draws the cells of line that fall in [left, right). A cluster
// cut by either edge is drawn as blanks to keep alignment.
func (m *Model) renderLine(line []rune, rm rowMarks, spans []HighlightSpan, left, right int) string {
	st := m.cfg.Style
	bounds := grapheme.Boundaries(line)

	var sb strings.Builder
	cell := 0
	for i := 0; i+1 < len(bounds); i++ {
		if cell >= right {
			return sb.String()
		}
		col := bounds[i]
		text := string(line[col:bounds[i+1]])
		w := grapheme.Width(text, cell, m.cfg.TabWidth)
		if text == "\t" {
			text = strings.Repeat(" ", w)
		}
		segL, segR := cell, cell+w
		cell = segR
		if segR <= left {
			continue
		}

		style := st.Text
		if primary, ok := rm.cursors[col]; ok {
			style = cursorStyle(st, primary)
		} else if rm.selected(col) {
			style = st.Selection
		} else if hl, ok := spanAt(spans, col); ok {
			style = hl.Inherit(st.Text)
		}
		if segL < left || segR > right {
			text = strings.Repeat(" ", min(segR, right)-max(segL, left))
			style = st.Text
		}
		sb.WriteString(style.Render(text))
	}

	// cursor at line end is a one-cell placeholder
	if primary, ok := rm.cursors[len(line)]; ok && cell >= left && cell < right {
		sb.WriteString(cursorStyle(st, primary).Render(" "))
	}
	return sb.String()
}

// highlight returns the normalized spans for one line. A failing
// highlighter leaves the line plain.
func (m *Model) highlight(row int, line string, lineLen int) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	spans, err := m.cfg.Highlighter.HighlightLine(row, line)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, lineLen)
}

func cursorStyle(st Style, primary bool) lipgloss.Style {
	if primary {
		return st.Cursor
	}
	return st.SecondaryCursor
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.ed.Buffer().LineCount()) + 1
}

// docPos maps a document row and content cell to the position under it.
func (m *Model) docPos(row, cell int) buffer.Pos {
	buf := m.ed.Buffer()
	row = min(max(row, 0), buf.LineCount()-1)
	line, _ := buf.Line(row)
	return buffer.Pos{Row: row, Col: grapheme.ColAt([]rune(line), max(cell, 0), m.cfg.TabWidth)}
}
