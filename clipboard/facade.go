package clipboard

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

const defaultTimeout = 2 * time.Second

type Options struct {
	// Probers are tried in order; the first to succeed becomes active.
	// nil means PlatformProbers(). An empty non-nil slice disables the
	// platform clipboard.
	Probers []Prober

	// Timeout bounds every platform call, probing included. Default 2s;
	// negative disables the bound.
	Timeout time.Duration

	Logger *slog.Logger
}

// Facade is the clipboard the editor talks to.
//
// Every write is mirrored into the session clipboard, so switching to it
// after a platform failure keeps the last copied text.
type Facade struct {
	active   Backend
	internal *Internal
	demoted  bool
	log      *slog.Logger
}

// New probes for a platform backend and falls back to the session
// clipboard. It never fails.
func New(opt Options) *Facade {
	if opt.Probers == nil {
		opt.Probers = PlatformProbers()
	}
	if opt.Timeout == 0 {
		opt.Timeout = defaultTimeout
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	f := &Facade{internal: NewInternal(), log: opt.Logger}
	f.active = f.internal

	for _, probe := range opt.Probers {
		b, err := runProbe(probe, opt.Timeout)
		if err != nil {
			f.log.Debug("clipboard backend unavailable", "err", err)
			continue
		}
		f.active = Guard(b, opt.Timeout)
		break
	}
	f.log.Info("clipboard backend selected", "backend", f.active.ID())
	return f
}

func runProbe(probe Prober, timeout time.Duration) (Backend, error) {
	if timeout <= 0 {
		return probe()
	}
	return withTimeout(timeout, "probe", func() (Backend, error) { return probe() })
}

// Active returns the backend currently serving reads and writes.
func (f *Facade) Active() ID { return f.active.ID() }

// Demoted reports whether a platform failure moved the facade to the
// session clipboard.
func (f *Facade) Demoted() bool { return f.demoted }

// Write stores text on the active backend. Failures switch the facade to the
// session clipboard, which already holds text.
func (f *Facade) Write(text string) {
	f.internal.Set(text)
	if f.onInternal() {
		return
	}
	if err := f.active.Write(text); err != nil {
		f.demote(err)
	}
}

// Read returns the active backend's text. Line endings from the platform are
// normalized to "\n"; the normalization is idempotent.
func (f *Facade) Read() Content {
	if !f.onInternal() {
		s, err := f.active.Read()
		if err == nil {
			return Content{Text: normalizeNewlines(s), Origin: f.active.ID()}
		}
		f.demote(err)
	}
	s := f.internal.Text()
	return Content{Text: s, Origin: InternalFallback}
}

func (f *Facade) onInternal() bool { return f.active.ID() == InternalFallback }

func (f *Facade) demote(err error) {
	f.log.Warn("clipboard backend failed; using session clipboard",
		"backend", f.active.ID(),
		"err", err,
	)
	f.active = f.internal
	f.demoted = true
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
