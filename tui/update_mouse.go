package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/termide/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if !m.focused {
		return m, cmd
	}

	// Only left button interactions touch the selections.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		p := m.screenToDocPos(msg.X, msg.Y)
		switch {
		case msg.Alt:
			m.ed.AddCursor(p)
		case msg.Shift:
			m.ed.ExtendTo(p)
		default:
			m.ed.MoveTo(p)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.ed.ExtendTo(m.screenToDocPos(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = min(max(x, 0), m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = min(max(y, 0), m.viewport.Height-1)
	}
	return x, y
}

func (m Model) screenToDocPos(x, y int) buffer.Pos {
	return m.docPos(y+m.viewport.YOffset, x-m.gutterWidth()+m.xOffset)
}
