package selection

import "github.com/iw2rmb/termide/buffer"

// Selection is an anchor/head pair. Anchor stays fixed while extending; Head
// is the cursor. Anchor == Head is a plain cursor.
type Selection struct {
	Anchor buffer.Pos
	Head   buffer.Pos
}

// Cursor returns an empty selection at p.
func Cursor(p buffer.Pos) Selection { return Selection{Anchor: p, Head: p} }

func (s Selection) IsEmpty() bool { return s.Anchor == s.Head }

// Backward reports whether the head sits before the anchor.
func (s Selection) Backward() bool { return s.Head.Less(s.Anchor) }

// Range returns the selected span in document order.
func (s Selection) Range() buffer.Range {
	return buffer.NormalizeRange(buffer.Range{Start: s.Anchor, End: s.Head})
}

func (s Selection) Start() buffer.Pos { return buffer.MinPos(s.Anchor, s.Head) }

func (s Selection) End() buffer.Pos { return buffer.MaxPos(s.Anchor, s.Head) }

// Remap returns where p lands after op is applied.
//
// Inserts push every position at or after the insertion point (a cursor at
// the insertion point ends up after the new text). Deletes leave earlier
// positions alone, collapse positions inside the removed range to its start
// and pull later positions back.
func Remap(p buffer.Pos, op buffer.EditOp) buffer.Pos {
	if op.IsNoop() {
		return p
	}
	s, e := op.Start, op.End

	switch op.Kind {
	case buffer.OpInsert:
		if p.Less(s) {
			return p
		}
		if p.Row == s.Row {
			return buffer.Pos{Row: e.Row, Col: e.Col + (p.Col - s.Col)}
		}
		return buffer.Pos{Row: p.Row + (e.Row - s.Row), Col: p.Col}
	case buffer.OpDelete:
		if !s.Less(p) {
			return p
		}
		if !e.Less(p) {
			return s
		}
		if p.Row == e.Row {
			return buffer.Pos{Row: s.Row, Col: s.Col + (p.Col - e.Col)}
		}
		return buffer.Pos{Row: p.Row - (e.Row - s.Row), Col: p.Col}
	default:
		return p
	}
}
