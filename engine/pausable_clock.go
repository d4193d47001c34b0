package engine

import (
	"slices"
	"time"
)

// PauseReason identifies a subsystem requesting a simulation pause
type PauseReason string

const (
	PauseShop   PauseReason = "shop"
	PauseCursor PauseReason = "cursor"
)

// SimClock is the pausable simulation time domain, advanced manually once per tick
// Paused while at least one pause reason is held; one subsystem's resume never
// releases another's pause
type SimClock struct {
	elapsed time.Duration
	delta   time.Duration
	reasons map[PauseReason]struct{}

	// Cumulative time dropped while paused
	pausedFor time.Duration
}

// NewSimClock creates a running clock at zero
func NewSimClock() *SimClock {
	return &SimClock{reasons: make(map[PauseReason]struct{})}
}

// Advance moves simulation time forward by realDelta unless paused
// Returns the applied delta, zero while paused
func (c *SimClock) Advance(realDelta time.Duration) time.Duration {
	if realDelta < 0 {
		realDelta = 0
	}
	if c.IsPaused() {
		c.delta = 0
		c.pausedFor += realDelta
		return 0
	}
	c.delta = realDelta
	c.elapsed += realDelta
	return realDelta
}

// Pause adds a pause request, idempotent per reason
func (c *SimClock) Pause(reason PauseReason) {
	c.reasons[reason] = struct{}{}
}

// Resume removes a pause request, the clock runs again only when no request remains
func (c *SimClock) Resume(reason PauseReason) {
	delete(c.reasons, reason)
}

// IsPaused returns current pause state
func (c *SimClock) IsPaused() bool {
	return len(c.reasons) > 0
}

// IsPausedBy reports whether the given reason is currently held
func (c *SimClock) IsPausedBy(reason PauseReason) bool {
	_, ok := c.reasons[reason]
	return ok
}

// Reasons returns the held pause reasons in sorted order
func (c *SimClock) Reasons() []PauseReason {
	out := make([]PauseReason, 0, len(c.reasons))
	for r := range c.reasons {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Elapsed returns total simulation time
func (c *SimClock) Elapsed() time.Duration {
	return c.elapsed
}

// Delta returns the delta applied by the last Advance
func (c *SimClock) Delta() time.Duration {
	return c.delta
}

// PausedFor returns cumulative time dropped while paused
func (c *SimClock) PausedFor() time.Duration {
	return c.pausedFor
}

// Reset returns the clock to zero and clears all pause requests
func (c *SimClock) Reset() {
	c.elapsed = 0
	c.delta = 0
	c.pausedFor = 0
	clear(c.reasons)
}
