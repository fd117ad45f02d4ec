package tui

import "github.com/iw2rmb/termide/editor"

// Config configures the Model.
type Config struct {
	// Editor is the session to render and drive. nil starts an empty one.
	Editor *editor.Editor

	KeyMap KeyMap
	Style  Style

	ShowLineNums bool
	ReadOnly     bool

	// TabWidth is the cell width of a tab stop. Default 4.
	TabWidth int

	// Highlighter colours unselected text. Optional.
	Highlighter Highlighter
}
