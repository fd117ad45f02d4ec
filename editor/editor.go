package editor

import (
	"io"
	"log/slog"

	"github.com/iw2rmb/termide/buffer"
	"github.com/iw2rmb/termide/clipboard"
	"github.com/iw2rmb/termide/history"
	"github.com/iw2rmb/termide/selection"
)

type Options struct {
	// Clipboard is shared by every session in the process. nil gives the
	// session its own clipboard with no platform backend.
	Clipboard *clipboard.Facade

	History history.Options
	Logger  *slog.Logger

	// TabWidth is the cell width of a tab stop, used to keep the screen
	// column on vertical moves. Default 4.
	TabWidth int
}

// Editor is one editing session over one document.
type Editor struct {
	buf  *buffer.Buffer
	sels *selection.Set
	hist *history.History
	clip *clipboard.Facade
	log  *slog.Logger

	tabWidth int
}

func New(text string, opt Options) *Editor {
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opt.Clipboard == nil {
		opt.Clipboard = clipboard.New(clipboard.Options{Probers: []clipboard.Prober{}, Logger: opt.Logger})
	}

	if opt.TabWidth <= 0 {
		opt.TabWidth = 4
	}

	buf := buffer.New(text)
	return &Editor{
		buf:  buf,
		sels: selection.NewSet(buf),
		hist: history.New(opt.History),
		clip: opt.Clipboard,
		log:  opt.Logger,

		tabWidth: opt.TabWidth,
	}
}

// Buffer exposes the document for read access by renderers and savers.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) Clipboard() *clipboard.Facade { return e.clip }

func (e *Editor) Text() string { return e.buf.Text() }

// Selections returns the selections in document order.
func (e *Editor) Selections() []selection.Selection { return e.sels.All() }

func (e *Editor) Primary() selection.Selection { return e.sels.Primary() }

func (e *Editor) PrimaryIndex() int { return e.sels.PrimaryIndex() }

// Cursor returns the primary head.
func (e *Editor) Cursor() buffer.Pos { return e.sels.Primary().Head }

func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// Undo reverts the last group and restores the selections it started from.
// It returns false when there is nothing to undo.
func (e *Editor) Undo() bool {
	g, ok := e.hist.Undo()
	if !ok {
		return false
	}
	for i := len(g.Ops) - 1; i >= 0; i-- {
		if err := e.buf.Apply(g.Ops[i].Inverse()); err != nil {
			e.log.Error("undo: history does not match buffer", "op", i, "err", err)
			break
		}
	}
	e.sels.Restore(g.Before)
	return true
}

// Redo re-applies the next group and restores the selections it ended with.
// It returns false when there is nothing to redo.
func (e *Editor) Redo() bool {
	g, ok := e.hist.Redo()
	if !ok {
		return false
	}
	for i, op := range g.Ops {
		if err := e.buf.Apply(op); err != nil {
			e.log.Error("redo: history does not match buffer", "op", i, "err", err)
			break
		}
	}
	e.sels.Restore(g.After)
	return true
}

func (e *Editor) line(row int) []rune {
	s, err := e.buf.Line(row)
	if err != nil {
		return nil
	}
	return []rune(s)
}
