package game

import "time"

// Clock supplies a monotonically increasing timestamp, read once per tick
type Clock interface {
	Now() time.Duration
}

// SystemClock reports monotonic wall time elapsed since its creation
type SystemClock struct {
	origin time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock only moves when told to. Use it to step the loop deterministically.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set moves the clock to t
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}
