package main

import (
	"time"

	"github.com/DylanBulfin/dmk"
)

// wallClock implements dmk.Timer over the host's monotonic wall clock,
// matching the base_instant/elapsed() pattern of the original Rust demo's
// CrosstermTimer.
type wallClock struct {
	base time.Time
}

func newWallClock() *wallClock {
	return &wallClock{base: time.Now()}
}

func (c *wallClock) Now() dmk.Instant {
	return dmk.Instant(time.Since(c.base).Microseconds())
}

func (c *wallClock) AddDuration(d dmk.Duration) dmk.Instant {
	return c.Now() + dmk.Instant(d)
}
