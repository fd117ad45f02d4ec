package clipboard

import (
	"errors"
	"fmt"
)

// ID names a backend.
type ID string

const (
	X11Selection     ID = "x11"
	CocoaPasteboard  ID = "cocoa"
	WindowsClipboard ID = "windows"
	InternalFallback ID = "internal"
)

func (id ID) String() string { return string(id) }

var (
	// ErrUnavailable reports a backend that failed to initialize, read or write.
	ErrUnavailable = errors.New("clipboard: unavailable")
	// ErrTimeout reports a platform call that did not return in time.
	// It wraps ErrUnavailable.
	ErrTimeout = fmt.Errorf("%w: timed out", ErrUnavailable)
)

// Backend is one clipboard mechanism.
type Backend interface {
	ID() ID
	Read() (string, error)
	Write(text string) error
}

// Prober initializes a backend, or reports why it cannot run here.
type Prober func() (Backend, error)

// Content is clipboard text and the backend it came from.
type Content struct {
	Text   string
	Origin ID
}

func unavailable(id ID, op string, err error) error {
	if err == nil {
		return fmt.Errorf("%s %s: %w", id, op, ErrUnavailable)
	}
	return fmt.Errorf("%s %s: %w: %w", id, op, ErrUnavailable, err)
}
