package archipelago

import "time"

// Clock supplies the time base for growth gestures. Values are durations
// since an arbitrary origin; only differences matter.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures wall time since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a wall clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since NewSystemClock.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// FrameClock is a deterministic clock. A Simulation using it advances the
// clock by Frame on every Step; Advance moves it explicitly.
type FrameClock struct {
	Frame time.Duration
	now   time.Duration
}

// NewFrameClock creates a clock that advances by frame per Step.
func NewFrameClock(frame time.Duration) *FrameClock {
	return &FrameClock{Frame: frame}
}

// Now returns the accumulated time.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *FrameClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

func (c *FrameClock) tick() {
	c.Advance(c.Frame)
}
