package pager

import "sync"

// Position is the primary/secondary key pair shown by the always-visible
// header: book name and chapter for the chapter surface, topic name and
// category for the topic surface.
type Position struct {
	Primary   string
	Secondary string
}

// Channel is the display synchronization channel: a process-wide,
// last-write-wins holder updated synchronously inside the same event
// that moves the pager, so the header never lags behind the content
// slots. All readers observe the one shared instance; handing each
// consumer its own copy is exactly the staleness defect this type
// exists to prevent.
type Channel struct {
	mu  sync.Mutex
	pos Position
}

var shared = &Channel{}

// Shared returns the process-wide channel instance.
func Shared() *Channel {
	return shared
}

// Set replaces the current position. Must be cheap enough to call from
// inside an event handler without deferring.
func (c *Channel) Set(primary, secondary string) {
	c.mu.Lock()
	c.pos = Position{Primary: primary, Secondary: secondary}
	c.mu.Unlock()
}

// Current returns the position last written.
func (c *Channel) Current() Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// Reset restores the zero position. Tests use it to reseed the shared
// instance between cases, given its process-wide lifetime.
func (c *Channel) Reset() {
	c.mu.Lock()
	c.pos = Position{}
	c.mu.Unlock()
}
