package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/termide/buffer"
)

func TestSet_MoveAndExtendClamp(t *testing.T) {
	b := buffer.New("ab\ncde")
	s := NewSet(b)

	s.MoveTo(pos(9, 9))
	if got, want := s.Primary(), Cursor(pos(1, 3)); got != want {
		t.Fatalf("primary=%v, want %v", got, want)
	}
	s.ExtendTo(pos(0, 5))
	if got, want := s.Primary(), (Selection{Anchor: pos(1, 3), Head: pos(0, 2)}); got != want {
		t.Fatalf("primary=%v, want %v", got, want)
	}
	if !s.HasSelection() {
		t.Fatalf("expected a selection")
	}
}

func TestSet_AfterEdit_RemapsEverySelection(t *testing.T) {
	b := buffer.New("one two three")
	s := NewSet(b)
	s.MoveTo(pos(0, 0))
	s.Add(Selection{Anchor: pos(0, 4), Head: pos(0, 7)})
	s.Add(Cursor(pos(0, 13)))

	op, err := b.Insert(pos(0, 3), "!!")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	s.AfterEdit(op)

	want := []Selection{
		Cursor(pos(0, 0)),
		{Anchor: pos(0, 6), Head: pos(0, 9)},
		Cursor(pos(0, 15)),
	}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Fatalf("selections mismatch (-want +got):\n%s", diff)
	}
	if got := s.PrimaryIndex(); got != 2 {
		t.Fatalf("primary=%d, want 2", got)
	}
}

func TestSet_AfterEdit_DeleteCollapsesInside(t *testing.T) {
	b := buffer.New("abcdef")
	s := NewSet(b)
	s.MoveTo(pos(0, 3))
	s.Add(Cursor(pos(0, 6)))

	op, err := b.Delete(pos(0, 1), pos(0, 4))
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	s.AfterEdit(op)

	want := []Selection{Cursor(pos(0, 1)), Cursor(pos(0, 3))}
	if diff := cmp.Diff(want, s.All()); diff != "" {
		t.Fatalf("selections mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_Normalize_MergesOverlapAndTouch(t *testing.T) {
	b := buffer.New("abcdefghij")

	cases := []struct {
		name string
		in   []Selection
		want []Selection
	}{
		{
			name: "overlap",
			in:   []Selection{{Anchor: pos(0, 4), Head: pos(0, 8)}, {Anchor: pos(0, 1), Head: pos(0, 5)}},
			want: []Selection{{Anchor: pos(0, 1), Head: pos(0, 8)}},
		},
		{
			name: "touch",
			in:   []Selection{{Anchor: pos(0, 1), Head: pos(0, 3)}, {Anchor: pos(0, 3), Head: pos(0, 6)}},
			want: []Selection{{Anchor: pos(0, 1), Head: pos(0, 6)}},
		},
		{
			name: "coincident cursors",
			in:   []Selection{Cursor(pos(0, 2)), Cursor(pos(0, 2))},
			want: []Selection{Cursor(pos(0, 2))},
		},
		{
			name: "disjoint cursors stay",
			in:   []Selection{Cursor(pos(0, 3)), Cursor(pos(0, 2))},
			want: []Selection{Cursor(pos(0, 2)), Cursor(pos(0, 3))},
		},
		{
			name: "backward members stay backward",
			in:   []Selection{{Anchor: pos(0, 5), Head: pos(0, 2)}, {Anchor: pos(0, 9), Head: pos(0, 4)}},
			want: []Selection{{Anchor: pos(0, 9), Head: pos(0, 2)}},
		},
		{
			name: "mixed direction becomes forward",
			in:   []Selection{{Anchor: pos(0, 5), Head: pos(0, 2)}, {Anchor: pos(0, 4), Head: pos(0, 9)}},
			want: []Selection{{Anchor: pos(0, 2), Head: pos(0, 9)}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Set{bounds: b, sels: tc.in}
			s.Normalize()
			if diff := cmp.Diff(tc.want, s.All()); diff != "" {
				t.Fatalf("selections mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSet_CoincidentCursorsMergeAfterEdit(t *testing.T) {
	b := buffer.New("ab")
	s := &Set{bounds: b, sels: []Selection{Cursor(pos(0, 1)), Cursor(pos(0, 1))}, primary: 1}

	op, err := b.Insert(pos(0, 1), "x")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	s.AfterEdit(op)

	if got := b.Text(); got != "axb" {
		t.Fatalf("text=%q, want %q", got, "axb")
	}
	if diff := cmp.Diff([]Selection{Cursor(pos(0, 2))}, s.All()); diff != "" {
		t.Fatalf("selections mismatch (-want +got):\n%s", diff)
	}
	if s.PrimaryIndex() != 0 {
		t.Fatalf("primary=%d, want 0", s.PrimaryIndex())
	}
}

func TestSet_SnapshotRestore(t *testing.T) {
	b := buffer.New("abc\ndef")
	s := NewSet(b)
	s.MoveTo(pos(1, 1))
	s.Add(Selection{Anchor: pos(0, 0), Head: pos(0, 2)})
	st := s.Snapshot()

	s.Collapse()
	if s.Len() != 1 {
		t.Fatalf("len=%d after Collapse, want 1", s.Len())
	}

	s.Restore(st)
	if !s.Snapshot().Equal(st) {
		t.Fatalf("restored=%v, want %v", s.Snapshot(), st)
	}

	s.Restore(State{})
	if s.Len() != 1 || s.Primary() != Cursor(pos(0, 0)) {
		t.Fatalf("empty restore must leave a cursor at origin, got %v", s.All())
	}
}
