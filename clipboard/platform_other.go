//go:build !(linux || freebsd || openbsd || netbsd || dragonfly || darwin || windows)

package clipboard

// PlatformProbers returns nil: no native clipboard is supported here, so
// the facade always uses the session clipboard.
func PlatformProbers() []Prober { return nil }
