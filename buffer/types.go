package buffer

import "fmt"

// Pos points into the logical document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Range is a half-open span in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// Less reports whether p sorts before q in document order.
func (p Pos) Less(q Pos) bool { return ComparePos(p, q) < 0 }

func MinPos(a, b Pos) Pos {
	if ComparePos(a, b) <= 0 {
		return a
	}
	return b
}

func MaxPos(a, b Pos) Pos {
	if ComparePos(a, b) >= 0 {
		return a
	}
	return b
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p lies within [Start, End].
func (r Range) Contains(p Pos) bool {
	r = NormalizeRange(r)
	return ComparePos(r.Start, p) <= 0 && ComparePos(p, r.End) <= 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of logical lines (rows).
// - lineLen(row) returns the rune length of the given row.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
