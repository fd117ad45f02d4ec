package grapheme

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("Split(\"\")=%v, want nil", got)
	}
	got := Split("ae\u0301🙂")
	want := []string{"a", "e\u0301", "🙂"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Split=%q, want %q", got, want)
	}
}

func TestBoundaries_CombiningMark(t *testing.T) {
	line := []rune("ae\u0301b")
	if got, want := Boundaries(line), []int{0, 1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Boundaries=%v, want %v", got, want)
	}
	if got, want := Boundaries(nil), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Boundaries(nil)=%v, want %v", got, want)
	}
}

func TestNextPrev(t *testing.T) {
	line := []rune("ae\u0301b")
	cases := []struct {
		col, next, prev int
	}{
		{col: 0, next: 1, prev: 0},
		{col: 1, next: 3, prev: 0},
		{col: 2, next: 3, prev: 1},
		{col: 3, next: 4, prev: 1},
		{col: 4, next: 4, prev: 3},
	}
	for _, tc := range cases {
		if got := Next(line, tc.col); got != tc.next {
			t.Fatalf("Next(%d)=%d, want %d", tc.col, got, tc.next)
		}
		if got := Prev(line, tc.col); got != tc.prev {
			t.Fatalf("Prev(%d)=%d, want %d", tc.col, got, tc.prev)
		}
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster   string
		visualCol int
		want      int
	}{
		{cluster: "a", want: 1},
		{cluster: "テ", want: 2},
		{cluster: "\t", visualCol: 0, want: 4},
		{cluster: "\t", visualCol: 3, want: 1},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster, tc.visualCol, 4); got != tc.want {
			t.Fatalf("Width(%q,%d)=%d, want %d", tc.cluster, tc.visualCol, got, tc.want)
		}
	}
}

func TestCellOfColAt(t *testing.T) {
	line := []rune("a\t中e\u0301b")
	// cells: a=0, tab=1..3, wide=4..5, e+mark=6, b=7
	cases := []struct {
		col, cell int
	}{
		{col: 0, cell: 0},
		{col: 1, cell: 1},
		{col: 2, cell: 4},
		{col: 3, cell: 6},
		{col: 5, cell: 7},
		{col: 6, cell: 8},
	}
	for _, tc := range cases {
		if got := CellOf(line, tc.col, 4); got != tc.cell {
			t.Fatalf("CellOf(%d)=%d, want %d", tc.col, got, tc.cell)
		}
		if got := ColAt(line, tc.cell, 4); got != tc.col {
			t.Fatalf("ColAt(%d)=%d, want %d", tc.cell, got, tc.col)
		}
	}
	// inside a tab or a wide cluster maps to its start
	if got := ColAt(line, 2, 4); got != 1 {
		t.Fatalf("ColAt(2)=%d, want 1", got)
	}
	if got := ColAt(line, 5, 4); got != 2 {
		t.Fatalf("ColAt(5)=%d, want 2", got)
	}
	if got := ColAt(line, 99, 4); got != len(line) {
		t.Fatalf("ColAt(99)=%d, want %d", got, len(line))
	}
}
