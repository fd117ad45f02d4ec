package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/termide/editor"
)

// SaveRequestMsg asks the host to persist Text.
type SaveRequestMsg struct {
	Text string
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	ed := m.ed
	ro := m.cfg.ReadOnly

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !ro {
			ed.Insert(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	move := func(unit editor.MoveUnit, dir editor.MoveDir, extend bool) {
		ed.Move(editor.Motion{Unit: unit, Dir: dir, Extend: extend})
	}

	switch {
	case key.Matches(msg, km.Left):
		move(editor.MoveGrapheme, editor.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(editor.MoveGrapheme, editor.DirRight, false)
	case key.Matches(msg, km.Up):
		move(editor.MoveLine, editor.DirUp, false)
	case key.Matches(msg, km.Down):
		move(editor.MoveLine, editor.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(editor.MoveGrapheme, editor.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(editor.MoveGrapheme, editor.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(editor.MoveLine, editor.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(editor.MoveLine, editor.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(editor.MoveWord, editor.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(editor.MoveWord, editor.DirRight, false)
	case key.Matches(msg, km.ShiftWordLeft):
		move(editor.MoveWord, editor.DirLeft, true)
	case key.Matches(msg, km.ShiftWordRight):
		move(editor.MoveWord, editor.DirRight, true)

	case key.Matches(msg, km.Home):
		move(editor.MoveLine, editor.DirHome, false)
	case key.Matches(msg, km.End):
		move(editor.MoveLine, editor.DirEnd, false)
	case key.Matches(msg, km.ShiftHome):
		move(editor.MoveLine, editor.DirHome, true)
	case key.Matches(msg, km.ShiftEnd):
		move(editor.MoveLine, editor.DirEnd, true)
	case key.Matches(msg, km.DocStart):
		move(editor.MoveDoc, editor.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(editor.MoveDoc, editor.DirEnd, false)

	case key.Matches(msg, km.AddCursorUp):
		ed.AddCursorVertical(-1)
	case key.Matches(msg, km.AddCursorDown):
		ed.AddCursorVertical(1)
	case key.Matches(msg, km.SelectAll):
		ed.SelectAll()
	case key.Matches(msg, km.Collapse):
		ed.Collapse()

	case key.Matches(msg, km.Backspace):
		if !ro {
			ed.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !ro {
			ed.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !ro {
			ed.Newline()
		}
	case key.Matches(msg, km.Tab):
		if !ro {
			ed.Type("\t")
		}

	case key.Matches(msg, km.Undo):
		if !ro {
			ed.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !ro {
			ed.Redo()
		}

	case key.Matches(msg, km.Copy):
		ed.Copy()
	case key.Matches(msg, km.Cut):
		if !ro {
			ed.Cut()
		} else {
			ed.Copy()
		}
	case key.Matches(msg, km.Paste):
		if !ro {
			ed.Paste()
		}

	case key.Matches(msg, km.Save):
		if !ro {
			text := ed.Text()
			return m, func() tea.Msg { return SaveRequestMsg{Text: text} }
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt && !ro {
			ed.Type(string(msg.Runes))
		}
	}

	return m, nil
}
