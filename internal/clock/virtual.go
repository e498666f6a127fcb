package clock

import (
	"sync"
	"time"
)

// VirtualClock only moves when told to. Channels returned by After fire
// from Advance or Set once their deadline is reached.
type VirtualClock struct {
	mu      sync.Mutex
	current time.Time
	pending []timer
}

type timer struct {
	at time.Time
	ch chan time.Time
}

// NewVirtualClock creates a VirtualClock reading start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{current: start}
}

func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *VirtualClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *VirtualClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- c.current
		return ch
	}
	c.pending = append(c.pending, timer{at: c.current.Add(d), ch: ch})
	return ch
}

// Advance moves the clock forward by d. Negative durations panic.
func (c *VirtualClock) Advance(d time.Duration) {
	if d < 0 {
		panic("clock: negative advance")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	c.fire()
}

// Set jumps the clock to t, which must not be before the current time.
func (c *VirtualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Before(c.current) {
		panic("clock: cannot move backwards")
	}
	c.current = t
	c.fire()
}

// fire must be called with c.mu held.
func (c *VirtualClock) fire() {
	kept := c.pending[:0]
	for _, tm := range c.pending {
		if tm.at.After(c.current) {
			kept = append(kept, tm)
			continue
		}
		tm.ch <- c.current
	}
	c.pending = kept
}
