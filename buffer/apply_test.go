package buffer

import (
	"errors"
	"testing"
)

func TestApply_RedoAfterUndo(t *testing.T) {
	b := New("ab")
	op, err := b.Insert(Pos{Row: 0, Col: 1}, "X\nY")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := b.Apply(op.Inverse()); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := b.Text(); got != "ab" {
		t.Fatalf("text after undo=%q, want %q", got, "ab")
	}
	if err := b.Apply(op); err != nil {
		t.Fatalf("redo: %v", err)
	}
	if got := b.Text(); got != "aX\nYb" {
		t.Fatalf("text after redo=%q, want %q", got, "aX\nYb")
	}
}

func TestApply_RejectsForeignOps(t *testing.T) {
	b := New("abc")
	v := b.Version()

	cases := []struct {
		name string
		op   EditOp
		want error
	}{
		{
			name: "delete text mismatch",
			op:   EditOp{Kind: OpDelete, Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 1}, Text: "z"},
			want: ErrMismatch,
		},
		{
			name: "insert end mismatch",
			op:   EditOp{Kind: OpInsert, Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 5}, Text: "z"},
			want: ErrMismatch,
		},
		{
			name: "insert out of bounds",
			op:   EditOp{Kind: OpInsert, Start: Pos{Row: 3, Col: 0}, End: Pos{Row: 3, Col: 1}, Text: "z"},
			want: ErrOutOfBounds,
		},
		{
			name: "unknown kind",
			op:   EditOp{Start: Pos{}, End: Pos{Row: 0, Col: 1}, Text: "a"},
			want: ErrMismatch,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := b.Apply(tc.op); !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
	if b.Version() != v || b.Text() != "abc" {
		t.Fatalf("rejected ops must not mutate")
	}
}

func TestEditOp_Delta(t *testing.T) {
	ins := EditOp{Kind: OpInsert, Text: "a\nπ"}
	if got := ins.Delta(); got != 3 {
		t.Fatalf("insert delta=%d, want 3", got)
	}
	if got := ins.Inverse().Delta(); got != -3 {
		t.Fatalf("delete delta=%d, want -3", got)
	}
}
