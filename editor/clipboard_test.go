package editor

import (
	"testing"

	"github.com/iw2rmb/termide/clipboard"
	"github.com/iw2rmb/termide/selection"
)

func TestEditor_CopyJoinsSelections(t *testing.T) {
	e, _ := newTestEditor("one two")
	e.MoveTo(pos(0, 4))
	e.ExtendTo(pos(0, 7))
	e.AddCursor(pos(0, 3))
	e.ExtendTo(pos(0, 0))

	if !e.Copy() {
		t.Fatalf("Copy returned false")
	}
	if got := e.Clipboard().Read().Text; got != "one\ntwo" {
		t.Fatalf("clipboard=%q, want %q", got, "one\ntwo")
	}
	if e.CanUndo() {
		t.Fatalf("Copy must not record history")
	}
}

func TestEditor_CopyWithoutSelection(t *testing.T) {
	e, _ := newTestEditor("abc")
	e.Clipboard().Write("keep")

	if e.Copy() {
		t.Fatalf("Copy with no selection must report false")
	}
	if got := e.Clipboard().Read().Text; got != "keep" {
		t.Fatalf("clipboard=%q, want %q", got, "keep")
	}
}

func TestEditor_CutThenUndo(t *testing.T) {
	e, _ := newTestEditor("hello world")
	e.ExtendTo(pos(0, 6))

	if !e.Cut() {
		t.Fatalf("Cut returned false")
	}
	assertState(t, e, "world", cursors(pos(0, 0)))
	if got := e.Clipboard().Read().Text; got != "hello " {
		t.Fatalf("clipboard=%q, want %q", got, "hello ")
	}

	e.Undo()
	assertState(t, e, "hello world", []selection.Selection{{Anchor: pos(0, 0), Head: pos(0, 6)}})
}

func TestEditor_PasteDistributesLines(t *testing.T) {
	e, _ := newTestEditor("a\nb")
	e.AddCursor(pos(1, 0))
	e.Clipboard().Write("X\nY")

	if !e.Paste() {
		t.Fatalf("Paste returned false")
	}
	assertState(t, e, "Xa\nYb", cursors(pos(0, 1), pos(1, 1)))

	e.Undo()
	assertState(t, e, "a\nb", cursors(pos(0, 0), pos(1, 0)))
}

func TestEditor_PasteWholeTextAtEveryCursor(t *testing.T) {
	e, _ := newTestEditor("a\nb")
	e.AddCursor(pos(1, 0))
	e.Clipboard().Write("Z")

	e.Paste()
	assertState(t, e, "Za\nZb", cursors(pos(0, 1), pos(1, 1)))
}

func TestEditor_PasteNormalizesLineEndings(t *testing.T) {
	e, _ := newTestEditor("")
	e.Clipboard().Write("1\r\n2\r3")

	e.Paste()
	assertState(t, e, "1\n2\n3", cursors(pos(2, 1)))
}

func TestEditor_PasteEmptyClipboard(t *testing.T) {
	e, _ := newTestEditor("abc")
	if e.Paste() {
		t.Fatalf("Paste of an empty clipboard must report false")
	}
	if e.CanUndo() {
		t.Fatalf("empty paste must not record history")
	}
}

func TestEditor_SharedClipboard(t *testing.T) {
	cb := clipboard.New(clipboard.Options{Probers: []clipboard.Prober{}})
	src := New("copy me", Options{Clipboard: cb})
	dst := New("", Options{Clipboard: cb})

	src.SelectAll()
	src.Copy()
	dst.Paste()

	if got := dst.Text(); got != "copy me" {
		t.Fatalf("text=%q, want %q", got, "copy me")
	}
}
