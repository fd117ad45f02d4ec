package selection

import (
	"slices"

	"github.com/iw2rmb/termide/buffer"
)

// Bounds is the document view a Set clamps against. *buffer.Buffer satisfies it.
type Bounds interface {
	LineCount() int
	LineLen(i int) (int, error)
}

// State is a restorable copy of a Set.
type State struct {
	Sels    []Selection
	Primary int
}

func (s State) Equal(o State) bool {
	return s.Primary == o.Primary && slices.Equal(s.Sels, o.Sels)
}

// Set is the live cursor/selection set of an editing session.
//
// The set is never empty. Primary is the selection single-cursor commands
// (MoveTo, ExtendTo) act on; it survives sorting and merging.
type Set struct {
	bounds  Bounds
	sels    []Selection
	primary int
}

// NewSet returns a set with one cursor at the document origin.
func NewSet(b Bounds) *Set {
	return &Set{bounds: b, sels: []Selection{{}}}
}

func (s *Set) Len() int { return len(s.sels) }

// All returns a copy of the selections in document order.
func (s *Set) All() []Selection { return slices.Clone(s.sels) }

func (s *Set) At(i int) Selection { return s.sels[i] }

func (s *Set) Primary() Selection { return s.sels[s.primary] }

func (s *Set) PrimaryIndex() int { return s.primary }

// HasSelection reports whether any selection is non-empty.
func (s *Set) HasSelection() bool {
	for _, sel := range s.sels {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

func (s *Set) Snapshot() State {
	return State{Sels: s.All(), Primary: s.primary}
}

// Restore replaces the set with st, clamped to the current document.
func (s *Set) Restore(st State) {
	if len(st.Sels) == 0 {
		s.sels = []Selection{{}}
		s.primary = 0
		s.Normalize()
		return
	}
	s.sels = slices.Clone(st.Sels)
	s.primary = min(max(st.Primary, 0), len(s.sels)-1)
	s.Normalize()
}

// MoveTo collapses the primary selection to a cursor at p.
func (s *Set) MoveTo(p buffer.Pos) { s.MoveIndex(s.primary, p) }

// ExtendTo moves the primary head to p, keeping its anchor.
func (s *Set) ExtendTo(p buffer.Pos) { s.ExtendIndex(s.primary, p) }

func (s *Set) MoveIndex(i int, p buffer.Pos) {
	p = s.clamp(p)
	s.sels[i] = Cursor(p)
	s.Normalize()
}

func (s *Set) ExtendIndex(i int, p buffer.Pos) {
	s.sels[i].Head = s.clamp(p)
	s.Normalize()
}

// Update replaces every selection with fn's result and normalizes once.
func (s *Set) Update(fn func(i int, sel Selection) Selection) {
	for i, sel := range s.sels {
		s.sels[i] = fn(i, sel)
	}
	s.Normalize()
}

// Add inserts sel and makes it primary.
func (s *Set) Add(sel Selection) {
	s.sels = append(s.sels, sel)
	s.primary = len(s.sels) - 1
	s.Normalize()
}

// Collapse drops every selection except the primary one.
func (s *Set) Collapse() {
	s.sels = []Selection{s.sels[s.primary]}
	s.primary = 0
}

// Remap moves every endpoint of every selection through op without merging.
// Multi-op edits call it per op and Normalize once at the end.
func (s *Set) Remap(op buffer.EditOp) {
	for i, sel := range s.sels {
		s.sels[i] = Selection{Anchor: Remap(sel.Anchor, op), Head: Remap(sel.Head, op)}
	}
}

// AfterEdit remaps every selection through op and restores the set invariants.
func (s *Set) AfterEdit(op buffer.EditOp) {
	s.Remap(op)
	s.Normalize()
}

type tagged struct {
	sel     Selection
	primary bool
}

// Normalize clamps endpoints, sorts by document order and merges selections
// whose ranges overlap or touch. A merged selection is backward only when
// none of its members was forward.
func (s *Set) Normalize() {
	items := make([]tagged, len(s.sels))
	for i, sel := range s.sels {
		items[i] = tagged{
			sel:     Selection{Anchor: s.clamp(sel.Anchor), Head: s.clamp(sel.Head)},
			primary: i == s.primary,
		}
	}
	slices.SortStableFunc(items, func(a, b tagged) int {
		if c := buffer.ComparePos(a.sel.Start(), b.sel.Start()); c != 0 {
			return c
		}
		return buffer.ComparePos(a.sel.End(), b.sel.End())
	})

	out := make([]Selection, 0, len(items))
	primary := 0
	cur := items[0]
	forward := !cur.sel.Backward() && !cur.sel.IsEmpty()
	backward := cur.sel.Backward()
	flush := func() {
		if cur.primary {
			primary = len(out)
		}
		out = append(out, cur.sel)
	}
	for _, next := range items[1:] {
		if cur.sel.End().Less(next.sel.Start()) {
			flush()
			cur = next
			forward = !cur.sel.Backward() && !cur.sel.IsEmpty()
			backward = cur.sel.Backward()
			continue
		}
		forward = forward || (!next.sel.Backward() && !next.sel.IsEmpty())
		backward = backward || next.sel.Backward()
		start := cur.sel.Start()
		end := buffer.MaxPos(cur.sel.End(), next.sel.End())
		merged := Selection{Anchor: start, Head: end}
		if backward && !forward {
			merged = Selection{Anchor: end, Head: start}
		}
		cur = tagged{sel: merged, primary: cur.primary || next.primary}
	}
	flush()

	s.sels = out
	s.primary = primary
}

func (s *Set) clamp(p buffer.Pos) buffer.Pos {
	return buffer.ClampPos(p, s.bounds.LineCount(), s.lineLen)
}

func (s *Set) lineLen(row int) int {
	n, err := s.bounds.LineLen(row)
	if err != nil {
		return 0
	}
	return n
}
