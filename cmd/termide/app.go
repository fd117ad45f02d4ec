package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/termide/editor"
	"github.com/iw2rmb/termide/textfile"
	"github.com/iw2rmb/termide/tui"
)

// savedMsg reports a finished save of the document at version.
type savedMsg struct {
	version uint64
	err     error
}

// app hosts the editor view: it owns the file, the status line, saving and
// quitting.
type app struct {
	file textfile.File
	ed   *editor.Editor
	view tui.Model
	log  *slog.Logger

	status    lipgloss.Style
	width     int
	note      string
	quitArmed bool

	// prompting is set while the status line asks for a file name.
	prompting bool
	prompt    []rune
}

func newApp(file textfile.File, ed *editor.Editor, log *slog.Logger, theme string) app {
	return app{
		file: file,
		ed:   ed,
		view: tui.New(tui.Config{
			Editor:       ed,
			KeyMap:       tui.DefaultKeyMap(),
			Style:        tui.DefaultStyle(),
			ShowLineNums: true,
			Highlighter:  highlighterFor(file.Path, theme),
		}),
		log:    log,
		status: lipgloss.NewStyle().Reverse(true),
	}
}

func (a app) Init() tea.Cmd { return a.view.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		// the last row is the status line
		a.view = a.view.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case tea.KeyMsg:
		if a.prompting {
			return a.updatePrompt(msg)
		}
		if msg.String() == "ctrl+q" {
			if a.ed.Buffer().Modified() && !a.quitArmed {
				a.quitArmed = true
				a.note = "unsaved changes, ctrl+q again to quit"
				return a, nil
			}
			return a, tea.Quit
		}
		a.quitArmed = false
		a.note = ""
	case tui.SaveRequestMsg:
		if a.file.Path == "" {
			a.prompting = true
			a.prompt = a.prompt[:0]
			a.note = ""
			return a, nil
		}
		return a, a.save(msg.Text)
	case savedMsg:
		if msg.err != nil {
			a.log.Error("save.error", "file", a.file.Path, "err", msg.err)
			a.note = "save failed: " + msg.err.Error()
			return a, nil
		}
		// edits made while saving keep the document modified
		if a.ed.Buffer().Version() == msg.version {
			a.ed.Buffer().MarkSaved()
		}
		a.file.Exists = true
		a.log.Info("save.success", "file", a.file.Path, "version", msg.version)
		a.note = "saved"
		return a, nil
	}

	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

// updatePrompt edits the file name prompt. Enter names the file and saves
// it, esc abandons the save.
func (a app) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive
	case tea.KeyEnter:
		name := strings.TrimSpace(string(a.prompt))
		if name == "" {
			return a, nil
		}
		a.prompting = false
		a.file.Path = name
		a.log.Info("save.named", "file", name)
		return a, a.save(a.ed.Text())
	case tea.KeyEsc, tea.KeyCtrlC:
		a.prompting = false
		a.note = "save cancelled"
	case tea.KeyBackspace:
		if n := len(a.prompt); n > 0 {
			a.prompt = a.prompt[:n-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			if r != '\n' && r != '\r' {
				a.prompt = append(a.prompt, r)
			}
		}
	}
	return a, nil
}

func (a app) save(text string) tea.Cmd {
	if a.file.Path == "" {
		return func() tea.Msg { return savedMsg{err: errors.New("no file name")} }
	}
	path, ending, version := a.file.Path, a.file.Ending, a.ed.Buffer().Version()
	return func() tea.Msg {
		return savedMsg{version: version, err: textfile.Save(path, text, ending)}
	}
}

func (a app) View() string {
	return a.view.View() + "\n" + a.statusLine()
}

func (a app) statusLine() string {
	if a.prompting {
		return a.status.Width(max(a.width, 0)).Render(" Save as: " + string(a.prompt))
	}
	name := "[no name]"
	if a.file.Path != "" {
		name = filepath.Base(a.file.Path)
	}
	if a.ed.Buffer().Modified() {
		name += " [+]"
	}

	cur := a.ed.Cursor()
	clip := a.ed.Clipboard().Active().String()
	if a.ed.Clipboard().Demoted() {
		clip += " (fallback)"
	}
	line := fmt.Sprintf(" %s  Ln %d, Col %d  %s  clip:%s", name, cur.Row+1, cur.Col+1, a.file.Ending, clip)
	if n := len(a.ed.Selections()); n > 1 {
		line += fmt.Sprintf("  %d cursors", n)
	}
	if a.note != "" {
		line += "  " + a.note
	}
	return a.status.Width(max(a.width, 0)).Render(line)
}

// highlighterFor picks a syntax highlighter by file name. An empty theme or
// an unknown file type leaves the text plain.
func highlighterFor(path, theme string) tui.Highlighter {
	if path == "" || theme == "" {
		return nil
	}
	if h := tui.NewChromaHighlighter(filepath.Base(path), theme); h != nil {
		return h
	}
	return nil
}
