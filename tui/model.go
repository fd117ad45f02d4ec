package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/termide/buffer"
	"github.com/iw2rmb/termide/editor"
	"github.com/iw2rmb/termide/internal/grapheme"
	"github.com/iw2rmb/termide/selection"
)

const defaultTabWidth = 4

// Model is a Bubble Tea component over an editor session.
//
// The session is shared by pointer, so copies of a Model drive the same
// document. The host owns saving and quitting.
type Model struct {
	cfg Config
	ed  *editor.Editor

	focused bool

	viewport viewport.Model
	xOffset  int

	mouseDragging bool

	lastVersion uint64
	lastSels    []selection.Selection
}

func New(cfg Config) Model {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.Editor == nil {
		cfg.Editor = editor.New("", editor.Options{TabWidth: cfg.TabWidth})
	}
	m := Model{
		cfg:      cfg,
		ed:       cfg.Editor,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.ed.Buffer().Version()
	m.lastSels = m.ed.Selections()
	m.rebuildContent()
	return m
}

func (m Model) Editor() *editor.Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCursor()
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		// wheel scrolling moves the view without following the cursor
		yOffset := m.viewport.YOffset
		m, cmd = m.updateMouse(msg)
		changed := m.sync()
		if changed || (m.cfg.Highlighter != nil && m.viewport.YOffset != yOffset) {
			m.rebuildContent()
		}
		return m, cmd
	}
	if m.sync() {
		m.followCursor()
		m.rebuildContent()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// Refresh re-renders after the host changed the session directly.
func (m Model) Refresh() Model {
	m.sync()
	m.followCursor()
	m.rebuildContent()
	return m
}

// sync records the session state and reports whether it changed since the
// last render.
func (m *Model) sync() bool {
	ver := m.ed.Buffer().Version()
	sels := m.ed.Selections()
	if ver == m.lastVersion && slices.Equal(sels, m.lastSels) {
		return false
	}
	m.lastVersion = ver
	m.lastSels = sels
	return true
}

func (m *Model) rebuildContent() {
	yOffset := m.viewport.YOffset
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(yOffset)
}

// followCursor scrolls the viewport so the primary head is visible.
func (m *Model) followCursor() {
	cur := m.ed.Cursor()

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.YOffset = cur.Row
		case cur.Row >= y+h:
			m.viewport.YOffset = cur.Row - h + 1
		}
	}

	w := m.contentWidth()
	if w > 0 {
		cell := m.cellOf(cur)
		switch {
		case cell < m.xOffset:
			m.xOffset = cell
		case cell >= m.xOffset+w:
			m.xOffset = cell - w + 1
		}
	}
}

func (m *Model) cellOf(p buffer.Pos) int {
	line, err := m.ed.Buffer().Line(p.Row)
	if err != nil {
		return 0
	}
	return grapheme.CellOf([]rune(line), p.Col, m.cfg.TabWidth)
}

// contentWidth is the viewport width left of the gutter.
func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	return max(w, 0)
}
