package buffer

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Insert splices text at p. Line breaks in text split the line at p.
//
// The returned op describes what was done; its Inverse deletes the text again.
// Inserting "" is a no-op that still returns a (empty) op.
func (b *Buffer) Insert(p Pos, text string) (EditOp, error) {
	if err := b.checkPos(p); err != nil {
		return EditOp{}, err
	}
	text = normalizeNewlines(text)
	if text == "" {
		return EditOp{Kind: OpInsert, Start: p, End: p}, nil
	}

	end := b.insertAt(p, text)
	b.version++
	return EditOp{Kind: OpInsert, Start: p, End: end, Text: text}, nil
}

// Delete removes the half-open range [start, end), joining lines across any
// removed line break. The returned op carries the removed text, so its
// Inverse re-inserts it.
func (b *Buffer) Delete(start, end Pos) (EditOp, error) {
	if err := b.checkRange(start, end); err != nil {
		return EditOp{}, err
	}
	if start == end {
		return EditOp{Kind: OpDelete, Start: start, End: end}, nil
	}

	removed := b.deleteRange(start, end)
	b.version++
	return EditOp{Kind: OpDelete, Start: start, End: end, Text: removed}, nil
}

// Replace deletes r and inserts text at its start. It returns the effective
// ops in application order (zero, one or two of them).
func (b *Buffer) Replace(r Range, text string) ([]EditOp, error) {
	r = NormalizeRange(r)
	if err := b.checkRange(r.Start, r.End); err != nil {
		return nil, err
	}

	var ops []EditOp
	if !r.IsEmpty() {
		del, err := b.Delete(r.Start, r.End)
		if err != nil {
			return nil, err
		}
		ops = append(ops, del)
	}
	ins, err := b.Insert(r.Start, text)
	if err != nil {
		return ops, err
	}
	if !ins.IsNoop() {
		ops = append(ops, ins)
	}
	return ops, nil
}

// EndOf returns where text ends when inserted at p.
func EndOf(p Pos, text string) Pos {
	n := strings.Count(text, "\n")
	if n == 0 {
		return Pos{Row: p.Row, Col: p.Col + utf8.RuneCountInString(text)}
	}
	last := text[strings.LastIndexByte(text, '\n')+1:]
	return Pos{Row: p.Row + n, Col: utf8.RuneCountInString(last)}
}

func (b *Buffer) insertAt(p Pos, text string) Pos {
	line := b.lines[p.Row]
	if !strings.Contains(text, "\n") {
		ins := []rune(text)
		b.lines[p.Row] = slices.Insert(line, p.Col, ins...)
		return Pos{Row: p.Row, Col: p.Col + len(ins)}
	}

	parts := strings.Split(text, "\n")
	suffix := append([]rune(nil), line[p.Col:]...)

	repl := make([][]rune, 0, len(parts))
	repl = append(repl, append(line[:p.Col:p.Col], []rune(parts[0])...))
	for _, mid := range parts[1 : len(parts)-1] {
		repl = append(repl, []rune(mid))
	}
	lastPart := []rune(parts[len(parts)-1])
	lastCol := len(lastPart)
	repl = append(repl, append(lastPart, suffix...))

	b.lines = slices.Replace(b.lines, p.Row, p.Row+1, repl...)
	return Pos{Row: p.Row + len(parts) - 1, Col: lastCol}
}

func (b *Buffer) deleteRange(start, end Pos) string {
	removed := b.textInRange(start, end)
	if start.Row == end.Row {
		b.lines[start.Row] = slices.Delete(b.lines[start.Row], start.Col, end.Col)
		return removed
	}

	joined := append(b.lines[start.Row][:start.Col:start.Col], b.lines[end.Row][end.Col:]...)
	b.lines = slices.Replace(b.lines, start.Row, end.Row+1, joined)
	return removed
}
