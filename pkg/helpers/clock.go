package helpers

import (
	"sync"
	"time"
)

// Clock supplies timestamps so tests can control them.
type Clock interface {
	NowUTC() time.Time
}

type RealClock struct{}

func (RealClock) NowUTC() time.Time {
	return time.Now().UTC()
}

// StubClock returns a fixed time until moved with Set or Advance.
type StubClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewStubClock(now time.Time) *StubClock {
	return &StubClock{now: now.UTC()}
}

func (c *StubClock) NowUTC() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *StubClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now.UTC()
}

// Advance moves the clock forward by d and returns the new time.
func (c *StubClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
