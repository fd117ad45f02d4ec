// Package grapheme steps over grapheme clusters in rune-indexed lines and
// measures their terminal width.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Boundaries returns the rune offsets where clusters start in line, plus
// len(line). A line of n single-rune clusters yields 0..n.
func Boundaries(line []rune) []int {
	out := []int{0}
	if len(line) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(line))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Next returns the first cluster boundary after col, or len(line).
func Next(line []rune, col int) int {
	for _, b := range Boundaries(line) {
		if b > col {
			return b
		}
	}
	return len(line)
}

// Prev returns the last cluster boundary before col, or 0.
func Prev(line []rune, col int) int {
	prev := 0
	for _, b := range Boundaries(line) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}

// Width returns the terminal cell width of one cluster. Tabs are expanded
// against visualCol.
func Width(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - visualCol%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = max(uniseg.StringWidth(cluster), 0)
	}
	return w
}

// CellOf returns the cell offset of rune column col.
func CellOf(line []rune, col, tabWidth int) int {
	bounds := Boundaries(line)
	cell := 0
	for i := 0; i+1 < len(bounds) && bounds[i] < col; i++ {
		cell += Width(string(line[bounds[i]:bounds[i+1]]), cell, tabWidth)
	}
	return cell
}

// ColAt returns the rune column of the cluster covering cell, or the line
// end past the last cluster.
func ColAt(line []rune, cell, tabWidth int) int {
	bounds := Boundaries(line)
	at := 0
	for i := 0; i+1 < len(bounds); i++ {
		w := Width(string(line[bounds[i]:bounds[i+1]]), at, tabWidth)
		if cell < at+w {
			return bounds[i]
		}
		at += w
	}
	return len(line)
}
