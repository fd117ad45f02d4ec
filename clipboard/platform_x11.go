//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"os"
	"os/exec"

	atotto "github.com/atotto/clipboard"
)

// PlatformProbers returns the native backends for this platform in priority
// order.
func PlatformProbers() []Prober { return []Prober{probeX11} }

// x11Selection reads and writes the CLIPBOARD selection through xclip, xsel
// or wl-clipboard, whichever is installed.
type x11Selection struct{}

func probeX11() (Backend, error) {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, unavailable(X11Selection, "probe", errors.New("no display server"))
	}
	if atotto.Unsupported {
		return nil, unavailable(X11Selection, "probe", errors.New("no xclip, xsel or wl-clipboard in PATH"))
	}
	return x11Selection{}, nil
}

func (x11Selection) ID() ID { return X11Selection }

func (x11Selection) Read() (string, error) {
	s, err := atotto.ReadAll()
	if err != nil {
		// The helper ran and exited non-zero: nobody owns the selection.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", unavailable(X11Selection, "read", err)
	}
	return s, nil
}

func (x11Selection) Write(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return unavailable(X11Selection, "write", err)
	}
	return nil
}
