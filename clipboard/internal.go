package clipboard

import "sync"

// Internal is the in-process clipboard. It never fails; Read returns the
// last text written, or "" before the first write.
type Internal struct {
	mu   sync.Mutex
	text string
}

func NewInternal() *Internal { return &Internal{} }

func (c *Internal) ID() ID { return InternalFallback }

// Text returns the last text set.
func (c *Internal) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Set replaces the stored text.
func (c *Internal) Set(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}

func (c *Internal) Read() (string, error) { return c.Text(), nil }

func (c *Internal) Write(text string) error {
	c.Set(text)
	return nil
}
