package buffer

import (
	"fmt"
	"strings"
)

// OpKind is the kind of an EditOp.
type OpKind uint8

const (
	OpInsert OpKind = iota + 1
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// EditOp records one atomic change.
//
// For both kinds [Start, End) is the span Text occupies while it is present
// in the document: for an insert End is the resulting position, for a delete
// it is the end of the removed range. Inverse therefore only flips Kind.
type EditOp struct {
	Kind  OpKind
	Start Pos
	End   Pos
	Text  string
}

// Inverse returns the op that undoes op.
func (op EditOp) Inverse() EditOp {
	inv := op
	switch op.Kind {
	case OpInsert:
		inv.Kind = OpDelete
	case OpDelete:
		inv.Kind = OpInsert
	}
	return inv
}

// IsNoop reports whether applying op changes nothing.
func (op EditOp) IsNoop() bool { return op.Text == "" }

func (op EditOp) Range() Range { return Range{Start: op.Start, End: op.End} }

// Delta is the change in document length, in runes (line breaks count as one).
func (op EditOp) Delta() int {
	n := len([]rune(op.Text))
	if op.Kind == OpDelete {
		return -n
	}
	return n
}

// Apply performs op against the buffer. Undo applies op.Inverse(); redo
// applies op itself.
//
// Ops produced by this buffer's Insert/Delete always apply in the matching
// document state. Anything else is checked before mutating: invalid
// positions fail with ErrOutOfBounds and inconsistent ops with ErrMismatch.
func (b *Buffer) Apply(op EditOp) error {
	if op.IsNoop() {
		return nil
	}

	switch op.Kind {
	case OpInsert:
		if err := b.checkPos(op.Start); err != nil {
			return err
		}
		if strings.ContainsRune(op.Text, '\r') {
			return fmt.Errorf("insert text contains a carriage return: %w", ErrMismatch)
		}
		if got := EndOf(op.Start, op.Text); got != op.End {
			return fmt.Errorf("insert ends at %v, recorded %v: %w", got, op.End, ErrMismatch)
		}
		b.insertAt(op.Start, op.Text)
	case OpDelete:
		if err := b.checkRange(op.Start, op.End); err != nil {
			return err
		}
		if got := b.textInRange(op.Start, op.End); got != op.Text {
			return fmt.Errorf("delete %v-%v: found %q, recorded %q: %w", op.Start, op.End, got, op.Text, ErrMismatch)
		}
		b.deleteRange(op.Start, op.End)
	default:
		return fmt.Errorf("apply %v: %w", op.Kind, ErrMismatch)
	}

	b.version++
	return nil
}
