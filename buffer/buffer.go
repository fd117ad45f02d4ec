package buffer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfBounds reports a position or range outside the current document.
	ErrOutOfBounds = errors.New("buffer: out of bounds")
	// ErrMismatch reports an EditOp that does not describe the current document,
	// e.g. a delete whose recorded text differs from the text in its range.
	ErrMismatch = errors.New("buffer: operation does not match document")
)

// Buffer is the document store: an index of lines, each a rune slice.
//
// The document always has at least one line and lines never contain '\n';
// line breaks are structural. Edits touch only the affected lines' slices
// plus a splice of the line index when the line count changes.
type Buffer struct {
	lines   [][]rune
	version uint64
	saved   uint64
}

// New builds a Buffer from text. "\r\n" and "\r" are treated as line breaks.
func New(text string) *Buffer {
	return &Buffer{lines: splitLines(normalizeNewlines(text))}
}

// Text returns the whole document with lines joined by '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increments on every effective mutation.
func (b *Buffer) Version() uint64 { return b.version }

// Modified reports whether the document changed since New or the last MarkSaved.
//
// Undoing back to the saved state does not clear the flag; the version
// counter only grows.
func (b *Buffer) Modified() bool { return b.version != b.saved }

func (b *Buffer) MarkSaved() { b.saved = b.version }

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the rune length of line i.
func (b *Buffer) LineLen(i int) (int, error) {
	if i < 0 || i >= len(b.lines) {
		return 0, fmt.Errorf("line %d of %d: %w", i, len(b.lines), ErrOutOfBounds)
	}
	return len(b.lines[i]), nil
}

// Line returns the content of line i without a terminator.
func (b *Buffer) Line(i int) (string, error) {
	if i < 0 || i >= len(b.lines) {
		return "", fmt.Errorf("line %d of %d: %w", i, len(b.lines), ErrOutOfBounds)
	}
	return string(b.lines[i]), nil
}

// End returns the position just past the last rune of the document.
func (b *Buffer) End() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

// Valid reports whether p addresses the document (Col == line length allowed).
func (b *Buffer) Valid(p Pos) bool {
	return p.Row >= 0 && p.Row < len(b.lines) && p.Col >= 0 && p.Col <= len(b.lines[p.Row])
}

// Clamp returns the nearest valid position to p.
func (b *Buffer) Clamp(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// TextInRange returns the text in [start, end), with '\n' between lines.
func (b *Buffer) TextInRange(start, end Pos) (string, error) {
	if err := b.checkRange(start, end); err != nil {
		return "", err
	}
	return b.textInRange(start, end), nil
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) checkPos(p Pos) error {
	if !b.Valid(p) {
		return fmt.Errorf("position %v: %w", p, ErrOutOfBounds)
	}
	return nil
}

func (b *Buffer) checkRange(start, end Pos) error {
	if err := b.checkPos(start); err != nil {
		return err
	}
	if err := b.checkPos(end); err != nil {
		return err
	}
	if end.Less(start) {
		return fmt.Errorf("range %v-%v is reversed: %w", start, end, ErrOutOfBounds)
	}
	return nil
}

func (b *Buffer) textInRange(start, end Pos) string {
	if start == end {
		return ""
	}
	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}

	var sb strings.Builder
	for row := start.Row; row <= end.Row; row++ {
		if row > start.Row {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(b.lines[row])
		if row == start.Row {
			partStart = start.Col
		}
		if row == end.Row {
			partEnd = end.Col
		}
		sb.WriteString(string(b.lines[row][partStart:partEnd]))
	}
	return sb.String()
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}
