package editor

import (
	"time"

	"github.com/bep/debounce"
)

// DefaultFrameInterval approximates one display frame.
const DefaultFrameInterval = 16 * time.Millisecond

// Scheduler is a single-slot "latest pending work" primitive: scheduling a
// task while another is pending replaces the pending one, so at most one
// task runs per interval and a superseded task is dropped, never executed.
type Scheduler interface {
	Schedule(fn func())
}

// Coalescer is the production Scheduler, a trailing-edge debounce.
type Coalescer struct {
	debounced func(func())
}

// NewCoalescer returns a Coalescer that fires at most once per interval.
func NewCoalescer(interval time.Duration) *Coalescer {
	return &Coalescer{debounced: debounce.New(interval)}
}

// Schedule replaces any pending task with fn.
func (c *Coalescer) Schedule(fn func()) {
	c.debounced(fn)
}

// deferTick runs fn on the next tick, after the current callback returns.
func deferTick(fn func()) {
	time.AfterFunc(0, fn)
}
