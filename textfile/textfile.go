// Package textfile reads and writes the documents the editor works on.
//
// Text inside the editor always uses "\n". Decode records which line ending
// the file used so Save can write it back the same way.
package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")

// LineEnding is the line terminator style of a file.
type LineEnding uint8

const (
	LF LineEnding = iota
	CRLF
	CR
)

func (le LineEnding) String() string {
	switch le {
	case CRLF:
		return "CRLF"
	case CR:
		return "CR"
	default:
		return "LF"
	}
}

func (le LineEnding) bytes() string {
	switch le {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

// Decode converts raw file contents to editor text. The first terminator in
// data decides the line ending; a file without one is LF. Every terminator
// style is normalized to "\n" regardless.
func Decode(data []byte) (string, LineEnding, error) {
	if !utf8.Valid(data) {
		return "", LF, ErrInvalidUTF8
	}

	le := LF
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 && data[i] == '\r' {
		le = CR
		if i+1 < len(data) && data[i+1] == '\n' {
			le = CRLF
		}
	}

	s := string(data)
	if strings.ContainsRune(s, '\r') {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	return s, le, nil
}

// Encode converts editor text back to file contents using le.
func Encode(text string, le LineEnding) []byte {
	if le == LF {
		return []byte(text)
	}
	return []byte(strings.ReplaceAll(text, "\n", le.bytes()))
}

// File is a loaded document.
type File struct {
	Path   string
	Text   string
	Ending LineEnding

	// Exists is false when Path did not exist at load time.
	Exists bool
}

// Load reads path. A missing file loads as an empty LF document so the
// editor can create it on first save.
func Load(path string) (File, error) {
	f := File{Path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read %s: %w", path, err)
	}

	f.Exists = true
	f.Text, f.Ending, err = Decode(data)
	if err != nil {
		return f, fmt.Errorf("decode %s: %w", path, err)
	}
	return f, nil
}

// Save writes text to path atomically: the data goes to a temporary file in
// the same directory, is synced, takes over the permissions of the file it
// replaces, and is renamed over path. On failure path is left untouched.
func Save(path, text string, le LineEnding) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp.%d", filepath.Base(path), os.Getpid()))

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := writeSynced(tmp, Encode(text, le), perm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("save %s: %w", path, err)
	}
	// the umask may have narrowed perm at create time
	if err := os.Chmod(tmp, perm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSynced(name string, data []byte, perm fs.FileMode) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
