package editor

import (
	"github.com/iw2rmb/termide/buffer"
	"github.com/iw2rmb/termide/history"
	"github.com/iw2rmb/termide/internal/grapheme"
	"github.com/iw2rmb/termide/selection"
)

// change is what one selection contributes to a command: replace R with Text.
type change struct {
	R    buffer.Range
	Text string
}

// Type inserts text at every selection, replacing selected text. Consecutive
// calls coalesce into one undo group.
func (e *Editor) Type(text string) bool {
	if text == "" {
		return false
	}
	return e.apply(history.KindTyping, func(_ int, sel selection.Selection) (change, bool) {
		return change{R: sel.Range(), Text: text}, true
	})
}

// Insert inserts text at every selection as its own undo group.
func (e *Editor) Insert(text string) bool {
	if text == "" {
		return false
	}
	return e.apply(history.KindEdit, func(_ int, sel selection.Selection) (change, bool) {
		return change{R: sel.Range(), Text: text}, true
	})
}

func (e *Editor) Newline() bool { return e.Insert("\n") }

// DeleteBackward removes each selection, or the cluster before each cursor.
// At a line start it joins the line with the previous one.
func (e *Editor) DeleteBackward() bool {
	return e.apply(history.KindEdit, func(_ int, sel selection.Selection) (change, bool) {
		if !sel.IsEmpty() {
			return change{R: sel.Range()}, true
		}
		p := sel.Head
		switch {
		case p.Col > 0:
			start := buffer.Pos{Row: p.Row, Col: grapheme.Prev(e.line(p.Row), p.Col)}
			return change{R: buffer.Range{Start: start, End: p}}, true
		case p.Row > 0:
			start := buffer.Pos{Row: p.Row - 1, Col: len(e.line(p.Row - 1))}
			return change{R: buffer.Range{Start: start, End: p}}, true
		default:
			return change{}, false
		}
	})
}

// DeleteForward removes each selection, or the cluster after each cursor.
// At a line end it joins the next line onto this one.
func (e *Editor) DeleteForward() bool {
	return e.apply(history.KindEdit, func(_ int, sel selection.Selection) (change, bool) {
		if !sel.IsEmpty() {
			return change{R: sel.Range()}, true
		}
		p := sel.Head
		line := e.line(p.Row)
		switch {
		case p.Col < len(line):
			end := buffer.Pos{Row: p.Row, Col: grapheme.Next(line, p.Col)}
			return change{R: buffer.Range{Start: p, End: end}}, true
		case p.Row < e.buf.LineCount()-1:
			return change{R: buffer.Range{Start: p, End: buffer.Pos{Row: p.Row + 1}}}, true
		default:
			return change{}, false
		}
	})
}

// DeleteSelection removes every non-empty selection. Cursors are untouched.
func (e *Editor) DeleteSelection() bool {
	return e.apply(history.KindEdit, func(_ int, sel selection.Selection) (change, bool) {
		if sel.IsEmpty() {
			return change{}, false
		}
		return change{R: sel.Range()}, true
	})
}

// apply runs one command. fn maps each selection to the change it makes;
// changes are applied right to left so earlier ranges stay valid, and every
// resulting op remaps every selection. The ops land in history as one group.
func (e *Editor) apply(kind history.Kind, fn func(i int, sel selection.Selection) (change, bool)) bool {
	before := e.sels.Snapshot()

	var changes []change
	for i, sel := range e.sels.All() {
		if c, ok := fn(i, sel); ok {
			changes = append(changes, c)
		}
	}

	var ops []buffer.EditOp
	limit := e.buf.End()
	for i := len(changes) - 1; i >= 0; i-- {
		c := changes[i]
		r := buffer.NormalizeRange(c.R)
		// a change reaching into the one to its right stops where that one began
		if limit.Less(r.End) {
			r.End = limit
		}
		if limit.Less(r.Start) {
			r.Start = limit
		}
		limit = r.Start
		if r.IsEmpty() && c.Text == "" {
			continue
		}

		applied, err := e.buf.Replace(r, c.Text)
		if err != nil {
			e.log.Error("edit out of bounds", "range", r, "err", err)
			break
		}
		for _, op := range applied {
			e.sels.Remap(op)
		}
		ops = append(ops, applied...)
	}
	e.sels.Normalize()

	if len(ops) == 0 {
		return false
	}
	e.hist.Record(history.Group{
		Kind:   kind,
		Ops:    ops,
		Before: before,
		After:  e.sels.Snapshot(),
	})
	return true
}
