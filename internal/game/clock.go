package game

import "time"

// Clock is the single time source a Game reads, once per frame.
// Readings are offsets from an arbitrary origin and should not decrease.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time since its creation using the runtime's
// monotonic clock reading.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Used for replays and tests.
type ManualClock struct {
	now time.Duration
}

// Now returns the current reading.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Set jumps the clock to t, including backwards.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}
