package engine

import "time"

// FrameClock turns successive clock readings into per-frame deltas
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock that reports zero delta on its first tick
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{provider: provider}
}

// Tick returns the time elapsed since the previous tick, never negative
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset makes the next tick report zero delta
// Called when the terminal resizes, so the time spent redrawing is not simulated
func (c *FrameClock) Reset() {
	c.started = false
}
