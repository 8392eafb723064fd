// Package tui provides the Bubble Tea platform for the engine: a renderer
// that rasterizes logical drawing calls onto terminal cells, an event queue
// fed by the Bubble Tea input loop, a wall clock and the program runner.
// It also holds the session history scoreboard.
package tui

import (
	"time"

	"github.com/vovakirdan/hungry-pixel/internal/engine"
)

// Clock is a wall clock engine.Timer counting milliseconds since creation.
type Clock struct {
	start time.Time
	sleep func(time.Duration)
}

var _ engine.Timer = (*Clock)(nil)

// NewClock creates a clock starting at zero.
func NewClock() *Clock {
	return &Clock{start: time.Now(), sleep: time.Sleep}
}

// Ticks returns the milliseconds elapsed since the clock was created.
func (c *Clock) Ticks() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// Delay blocks for ms milliseconds.
func (c *Clock) Delay(ms uint32) {
	c.sleep(time.Duration(ms) * time.Millisecond)
}
