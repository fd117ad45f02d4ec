package editor

import (
	"unicode"

	"github.com/iw2rmb/termide/buffer"
	"github.com/iw2rmb/termide/internal/grapheme"
	"github.com/iw2rmb/termide/selection"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

// Motion moves every selection head. Extend keeps the anchors; otherwise
// every selection collapses to a cursor at its new head.
type Motion struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

// Move applies m to every selection and seals the open typing group.
func (e *Editor) Move(m Motion) {
	e.hist.Seal()
	e.sels.Update(func(_ int, sel selection.Selection) selection.Selection {
		next := e.step(sel.Head, m)
		if m.Extend {
			return selection.Selection{Anchor: sel.Anchor, Head: next}
		}
		return selection.Cursor(next)
	})
}

// MoveTo collapses the selection set to one cursor at p.
func (e *Editor) MoveTo(p buffer.Pos) {
	e.hist.Seal()
	e.sels.Collapse()
	e.sels.MoveTo(p)
}

// ExtendTo moves the primary head to p, keeping its anchor.
func (e *Editor) ExtendTo(p buffer.Pos) {
	e.hist.Seal()
	e.sels.ExtendTo(p)
}

// AddCursor adds a cursor at p and makes it primary. A cursor landing on an
// existing selection merges into it.
func (e *Editor) AddCursor(p buffer.Pos) {
	e.hist.Seal()
	e.sels.Add(selection.Cursor(e.buf.Clamp(p)))
}

// AddCursorVertical adds a cursor one line above (dir < 0) or below the
// primary head, at the same screen column or the line end.
func (e *Editor) AddCursorVertical(dir int) bool {
	head := e.sels.Primary().Head
	row := head.Row + 1
	if dir < 0 {
		row = head.Row - 1
	}
	if row < 0 || row >= e.buf.LineCount() {
		return false
	}
	e.AddCursor(e.onRow(head, row))
	return true
}

// Collapse drops every selection but the primary and empties it.
func (e *Editor) Collapse() {
	e.hist.Seal()
	e.sels.Collapse()
	e.sels.MoveTo(e.sels.Primary().Head)
}

func (e *Editor) SelectAll() {
	e.hist.Seal()
	e.sels.Restore(selection.State{Sels: []selection.Selection{{Head: e.buf.End()}}})
}

func (e *Editor) step(p buffer.Pos, m Motion) buffer.Pos {
	switch m.Unit {
	case MoveGrapheme:
		return e.stepGrapheme(p, m.Dir)
	case MoveWord:
		return e.stepWord(p, m.Dir)
	case MoveLine:
		return e.stepLine(p, m.Dir)
	case MoveDoc:
		return e.stepDoc(p, m.Dir)
	default:
		return p
	}
}

func (e *Editor) stepGrapheme(p buffer.Pos, dir MoveDir) buffer.Pos {
	line := e.line(p.Row)
	lastRow := e.buf.LineCount() - 1

	switch dir {
	case DirLeft:
		if p.Col > 0 {
			return buffer.Pos{Row: p.Row, Col: grapheme.Prev(line, p.Col)}
		}
		if p.Row == 0 {
			return p
		}
		return buffer.Pos{Row: p.Row - 1, Col: len(e.line(p.Row - 1))}
	case DirRight:
		if p.Col < len(line) {
			return buffer.Pos{Row: p.Row, Col: grapheme.Next(line, p.Col)}
		}
		if p.Row == lastRow {
			return p
		}
		return buffer.Pos{Row: p.Row + 1}
	default:
		return e.stepLine(p, dir)
	}
}

func (e *Editor) stepWord(p buffer.Pos, dir MoveDir) buffer.Pos {
	line := e.line(p.Row)

	switch dir {
	case DirLeft:
		if p.Col == 0 && p.Row > 0 {
			return buffer.Pos{Row: p.Row - 1, Col: len(e.line(p.Row - 1))}
		}
		return buffer.Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col == len(line) && p.Row < e.buf.LineCount()-1 {
			return buffer.Pos{Row: p.Row + 1}
		}
		return buffer.Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return e.stepLine(p, dir)
	}
}

func (e *Editor) stepLine(p buffer.Pos, dir MoveDir) buffer.Pos {
	lastRow := e.buf.LineCount() - 1

	switch dir {
	case DirHome:
		return buffer.Pos{Row: p.Row}
	case DirEnd:
		return buffer.Pos{Row: p.Row, Col: len(e.line(p.Row))}
	case DirUp:
		if p.Row == 0 {
			return buffer.Pos{}
		}
		return e.onRow(p, p.Row-1)
	case DirDown:
		if p.Row == lastRow {
			return buffer.Pos{Row: lastRow, Col: len(e.line(lastRow))}
		}
		return e.onRow(p, p.Row+1)
	default:
		return p
	}
}

func (e *Editor) stepDoc(p buffer.Pos, dir MoveDir) buffer.Pos {
	switch dir {
	case DirHome, DirUp:
		return buffer.Pos{}
	case DirEnd, DirDown:
		return e.buf.End()
	default:
		return p
	}
}

// snap clamps p and pulls it back to the start of the cluster it lands in.
// onRow returns the position on row under the screen column of p.
func (e *Editor) onRow(p buffer.Pos, row int) buffer.Pos {
	cell := grapheme.CellOf(e.line(p.Row), p.Col, e.tabWidth)
	return e.snap(buffer.Pos{Row: row, Col: grapheme.ColAt(e.line(row), cell, e.tabWidth)})
}

func (e *Editor) snap(p buffer.Pos) buffer.Pos {
	p = e.buf.Clamp(p)
	line := e.line(p.Row)
	if p.Col == len(line) {
		return p
	}
	return buffer.Pos{Row: p.Row, Col: grapheme.Prev(line, grapheme.Next(line, p.Col))}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - stepping stays on one line unless the cursor is already at its edge
func prevWordBoundary(line []rune, col int) int {
	col = min(max(col, 0), len(line))
	i := col
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	col = min(max(col, 0), len(line))
	i := col
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !unicode.IsSpace(line[i]) {
		i++
	}
	return i
}
