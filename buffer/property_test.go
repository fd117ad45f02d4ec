package buffer

import (
	"testing"

	"pgregory.net/rapid"
)

func genText(t *rapid.T, label string) string {
	return rapid.StringOfN(rapid.RuneFrom([]rune("ab\nπテ🙂 ")), 0, 12, -1).Draw(t, label)
}

func genPos(t *rapid.T, b *Buffer, label string) Pos {
	row := rapid.IntRange(0, b.LineCount()-1).Draw(t, label+".row")
	n, _ := b.LineLen(row)
	col := rapid.IntRange(0, n).Draw(t, label+".col")
	return Pos{Row: row, Col: col}
}

func TestProperty_InsertDeleteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(genText(t, "doc"))
		before := b.Text()
		lines := linesOf(b)

		p := genPos(t, b, "p")
		op, err := b.Insert(p, genText(t, "ins"))
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if _, err := b.Delete(p, op.End); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if got := b.Text(); got != before {
			t.Fatalf("text=%q, want %q", got, before)
		}
		got := linesOf(b)
		if len(got) != len(lines) {
			t.Fatalf("line count=%d, want %d", len(got), len(lines))
		}
		for i := range lines {
			if got[i] != lines[i] {
				t.Fatalf("line %d=%q, want %q", i, got[i], lines[i])
			}
		}
	})
}

func TestProperty_ApplyInverseRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(genText(t, "doc"))
		before := b.Text()

		start := genPos(t, b, "start")
		end := genPos(t, b, "end")
		if end.Less(start) {
			start, end = end, start
		}
		op, err := b.Delete(start, end)
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		after := b.Text()
		if err := b.Apply(op.Inverse()); err != nil {
			t.Fatalf("Apply(inverse): %v", err)
		}
		if got := b.Text(); got != before {
			t.Fatalf("after undo=%q, want %q", got, before)
		}
		if err := b.Apply(op); err != nil {
			t.Fatalf("Apply(redo): %v", err)
		}
		if got := b.Text(); got != after {
			t.Fatalf("after redo=%q, want %q", got, after)
		}
	})
}
