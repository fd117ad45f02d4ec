// Package history records undo groups of buffer edits.
//
// A group is every EditOp produced by one user action plus the selection
// state before and after it. Only the ops are kept, never document
// snapshots, so memory grows with the number and size of edits rather than
// with the document.
package history

import (
	"slices"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/termide/buffer"
	"github.com/iw2rmb/termide/selection"
)

// Kind classifies a group for coalescing.
type Kind uint8

const (
	// KindEdit groups are structural (deletes, paste, newline, multi-op
	// replacements) and always stand alone.
	KindEdit Kind = iota
	// KindTyping groups come from typed characters and may coalesce.
	KindTyping
)

// Group is one undoable unit.
type Group struct {
	Kind   Kind
	Ops    []buffer.EditOp // in application order
	Before selection.State
	After  selection.State
	At     time.Time
}

type Options struct {
	Limit          int           // max groups kept; default 1000, negative disables history
	CoalesceWindow time.Duration // max idle gap between merged typing groups; default 1s
	Now            func() time.Time
}

// History is a linear undo stack with a redo cursor.
//
// groups[:cursor] are undoable, groups[cursor:] redoable. Recording after an
// undo discards the redoable tail.
type History struct {
	opt    Options
	groups []Group
	cursor int

	// sealed stops the top group from absorbing further typing.
	sealed bool
}

func New(opt Options) *History {
	if opt.Limit == 0 {
		opt.Limit = 1000
	}
	if opt.CoalesceWindow == 0 {
		opt.CoalesceWindow = time.Second
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &History{opt: opt}
}

// Record pushes g, truncating any redoable groups.
//
// Typing coalesces into the top group when that group is typing too, was
// recorded less than CoalesceWindow ago, has not been sealed, and ends in
// the selection state g starts from (nothing moved the cursors in between).
// A typing group whose text ends in whitespace seals itself, so words undo
// one at a time with their trailing space.
func (h *History) Record(g Group) {
	if h.opt.Limit < 0 || len(g.Ops) == 0 {
		return
	}
	if g.At.IsZero() {
		g.At = h.opt.Now()
	}
	g.Ops = slices.Clone(g.Ops)

	truncated := h.cursor < len(h.groups)
	h.groups = h.groups[:h.cursor]

	if !truncated && h.canCoalesce(g) {
		top := &h.groups[len(h.groups)-1]
		top.Ops = append(top.Ops, g.Ops...)
		top.After = g.After
		top.At = g.At
	} else {
		h.groups = append(h.groups, g)
		if len(h.groups) > h.opt.Limit {
			h.groups = slices.Delete(h.groups, 0, len(h.groups)-h.opt.Limit)
		}
	}
	h.cursor = len(h.groups)
	h.sealed = g.Kind != KindTyping || endsInSpace(g.Ops)
}

func (h *History) canCoalesce(g Group) bool {
	if g.Kind != KindTyping || h.sealed || len(h.groups) == 0 {
		return false
	}
	top := h.groups[len(h.groups)-1]
	if top.Kind != KindTyping {
		return false
	}
	if g.At.Sub(top.At) > h.opt.CoalesceWindow {
		return false
	}
	return top.After.Equal(g.Before)
}

func endsInSpace(ops []buffer.EditOp) bool {
	for _, op := range ops {
		if op.Kind != buffer.OpInsert || op.Text == "" {
			continue
		}
		r, _ := utf8.DecodeLastRuneInString(op.Text)
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// Seal ends the current typing run; the next typed text starts a new group.
func (h *History) Seal() { h.sealed = true }

// Undo moves the cursor down one group and returns it. The caller applies
// the inverse of each op in reverse order, then restores g.Before.
// ok is false when there is nothing to undo.
func (h *History) Undo() (g Group, ok bool) {
	if h.cursor == 0 {
		return Group{}, false
	}
	h.cursor--
	h.sealed = true
	return cloneGroup(h.groups[h.cursor]), true
}

// Redo moves the cursor up one group and returns it. The caller re-applies
// each op in order, then restores g.After.
// ok is false when there is nothing to redo.
func (h *History) Redo() (g Group, ok bool) {
	if h.cursor == len(h.groups) {
		return Group{}, false
	}
	g = cloneGroup(h.groups[h.cursor])
	h.cursor++
	h.sealed = true
	return g, true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.groups) }

// Len returns the number of stored groups (undoable and redoable).
func (h *History) Len() int { return len(h.groups) }

func (h *History) Clear() {
	h.groups = nil
	h.cursor = 0
	h.sealed = false
}

func cloneGroup(g Group) Group {
	out := g
	out.Ops = slices.Clone(g.Ops)
	out.Before.Sels = slices.Clone(g.Before.Sels)
	out.After.Sels = slices.Clone(g.After.Sels)
	return out
}
