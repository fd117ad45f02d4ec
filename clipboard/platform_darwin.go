//go:build darwin

package clipboard

import (
	"os/exec"

	atotto "github.com/atotto/clipboard"
)

// PlatformProbers returns the native backends for this platform in priority
// order.
func PlatformProbers() []Prober { return []Prober{probeCocoa} }

// cocoaPasteboard talks to the general pasteboard through pbcopy/pbpaste.
type cocoaPasteboard struct{}

func probeCocoa() (Backend, error) {
	for _, bin := range []string{"pbcopy", "pbpaste"} {
		if _, err := exec.LookPath(bin); err != nil {
			return nil, unavailable(CocoaPasteboard, "probe", err)
		}
	}
	return cocoaPasteboard{}, nil
}

func (cocoaPasteboard) ID() ID { return CocoaPasteboard }

func (cocoaPasteboard) Read() (string, error) {
	s, err := atotto.ReadAll()
	if err != nil {
		return "", unavailable(CocoaPasteboard, "read", err)
	}
	return s, nil
}

func (cocoaPasteboard) Write(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return unavailable(CocoaPasteboard, "write", err)
	}
	return nil
}
