package clipboard

import (
	"fmt"
	"time"
)

// Guard wraps b so that every call returns within timeout. A call that
// overruns fails with ErrTimeout; its goroutine is abandoned and its late
// result dropped, since platform clipboard APIs offer no cancellation.
// A non-positive timeout returns b unchanged.
func Guard(b Backend, timeout time.Duration) Backend {
	if timeout <= 0 {
		return b
	}
	return &guarded{b: b, timeout: timeout}
}

type guarded struct {
	b       Backend
	timeout time.Duration
}

func (g *guarded) ID() ID { return g.b.ID() }

func (g *guarded) Read() (string, error) {
	return withTimeout(g.timeout, fmt.Sprintf("%s read", g.b.ID()), g.b.Read)
}

func (g *guarded) Write(text string) error {
	_, err := withTimeout(g.timeout, fmt.Sprintf("%s write", g.b.ID()), func() (struct{}, error) {
		return struct{}{}, g.b.Write(text)
	})
	return err
}

type result[T any] struct {
	v   T
	err error
}

func withTimeout[T any](timeout time.Duration, what string, fn func() (T, error)) (T, error) {
	// Buffered so an abandoned call can still deliver and exit.
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn()
		ch <- result[T]{v: v, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-timer.C:
		var zero T
		return zero, fmt.Errorf("%s after %v: %w", what, timeout, ErrTimeout)
	}
}
