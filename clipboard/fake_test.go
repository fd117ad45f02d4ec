package clipboard

import (
	"errors"
	"sync"
)

// fakeBackend is a scriptable platform backend.
type fakeBackend struct {
	mu       sync.Mutex
	id       ID
	text     string
	readErr  error
	writeErr error
	block    chan struct{} // when non-nil, calls wait on it
	reads    int
	writes   int
}

func (f *fakeBackend) ID() ID { return f.id }

func (f *fakeBackend) Read() (string, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.text, nil
}

func (f *fakeBackend) Write(text string) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func (f *fakeBackend) counts() (reads, writes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads, f.writes
}

func proberFor(b Backend) Prober {
	return func() (Backend, error) { return b, nil }
}

func failingProber(id ID) Prober {
	return func() (Backend, error) {
		return nil, unavailable(id, "probe", errors.New("no display server"))
	}
}
