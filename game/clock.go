package game

import "time"

// Clock accumulates elapsed time between movement steps.
type Clock struct {
	elapsed time.Duration
}

func (c *Clock) Add(d time.Duration) {
	c.elapsed += d
}

func (c *Clock) Reset() {
	c.elapsed = 0
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// TimeProvider is the wall-clock source of the game loop.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}
