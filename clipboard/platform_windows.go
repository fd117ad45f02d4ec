//go:build windows

package clipboard

import xclipboard "golang.design/x/clipboard"

// PlatformProbers returns the native backends for this platform in priority
// order.
func PlatformProbers() []Prober { return []Prober{probeWindows} }

// windowsClipboard uses the Win32 clipboard in CF_UNICODETEXT format.
type windowsClipboard struct{}

func probeWindows() (Backend, error) {
	if err := xclipboard.Init(); err != nil {
		return nil, unavailable(WindowsClipboard, "probe", err)
	}
	return windowsClipboard{}, nil
}

func (windowsClipboard) ID() ID { return WindowsClipboard }

// Read returns "" for an empty clipboard or one holding no text.
func (windowsClipboard) Read() (string, error) {
	return string(xclipboard.Read(xclipboard.FmtText)), nil
}

func (windowsClipboard) Write(text string) error {
	if changed := xclipboard.Write(xclipboard.FmtText, []byte(text)); changed == nil {
		return unavailable(WindowsClipboard, "write", nil)
	}
	return nil
}
