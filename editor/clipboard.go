package editor

import (
	"strings"

	"github.com/iw2rmb/termide/history"
	"github.com/iw2rmb/termide/selection"
)

// Copy writes the selected text to the clipboard. Several selections are
// joined with "\n" in document order. It returns false when nothing is
// selected.
func (e *Editor) Copy() bool {
	s, ok := e.selectedText()
	if !ok {
		return false
	}
	e.hist.Seal()
	e.clip.Write(s)
	return true
}

// Cut copies the selected text and deletes it as one undo group.
func (e *Editor) Cut() bool {
	if !e.Copy() {
		return false
	}
	return e.DeleteSelection()
}

// Paste inserts the clipboard text at every selection. When the text has
// exactly one line per selection, each selection receives its own line.
func (e *Editor) Paste() bool {
	c := e.clip.Read()
	if c.Text == "" {
		return false
	}

	var parts []string
	if n := e.sels.Len(); n > 1 {
		if lines := strings.Split(c.Text, "\n"); len(lines) == n {
			parts = lines
		}
	}
	return e.apply(history.KindEdit, func(i int, sel selection.Selection) (change, bool) {
		if parts != nil {
			return change{R: sel.Range(), Text: parts[i]}, true
		}
		return change{R: sel.Range(), Text: c.Text}, true
	})
}

// SelectedText returns the text Copy would write.
func (e *Editor) SelectedText() string {
	s, _ := e.selectedText()
	return s
}

func (e *Editor) selectedText() (string, bool) {
	var parts []string
	for _, sel := range e.sels.All() {
		if sel.IsEmpty() {
			continue
		}
		r := sel.Range()
		s, err := e.buf.TextInRange(r.Start, r.End)
		if err != nil {
			e.log.Error("selection out of bounds", "range", r, "err", err)
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}
