package session

import (
	"fmt"
	"time"
)

// TickInterval is the polling resolution of the session clock. Phase
// durations are always whole multiples of it.
const TickInterval = time.Second

// TickResult reports what happened during a single clock tick.
type TickResult struct {
	// Advanced is true when the tick crossed a phase boundary and the
	// clock moved to the next phase.
	Advanced bool
	// Completed is true when the tick finished the last phase. Once set,
	// further ticks are no-ops.
	Completed bool
}

// Clock owns the current phase index and the remaining time within it.
// It has no timers of its own: the caller drives it by calling Tick once
// per TickInterval. The zero value is an idle clock; call Start to begin.
type Clock struct {
	perPhase  time.Duration
	remaining time.Duration
	idx       int
	started   bool
	complete  bool
}

// Start resets the clock to the first phase with the given per-phase
// duration. perPhase must be positive.
func (c *Clock) Start(perPhase time.Duration) error {
	if perPhase <= 0 {
		return fmt.Errorf("session: per-phase duration must be positive, got %v", perPhase)
	}
	c.perPhase = perPhase
	c.remaining = perPhase
	c.idx = 0
	c.started = true
	c.complete = false
	return nil
}

// Reset returns the clock to its idle pre-start state.
func (c *Clock) Reset() {
	*c = Clock{}
}

// Tick advances the clock by one TickInterval. When the current phase runs
// out and a next phase exists, the clock advances exactly once and the
// remaining time resets to the per-phase duration; when the last phase runs
// out the clock completes. Ticking an idle or completed clock does nothing.
func (c *Clock) Tick() TickResult {
	if !c.started || c.complete {
		return TickResult{}
	}

	c.remaining -= TickInterval
	if c.remaining > 0 {
		return TickResult{}
	}
	c.remaining = 0

	// Single advance per tick boundary: either move to the next phase or
	// complete, never both in one call.
	if c.idx < len(Phases)-1 {
		c.idx++
		c.remaining = c.perPhase
		return TickResult{Advanced: true}
	}

	c.complete = true
	return TickResult{Completed: true}
}

// PhaseIndex returns the current phase index.
func (c *Clock) PhaseIndex() int { return c.idx }

// Phase returns the current phase definition.
func (c *Clock) Phase() Phase { return Phases[c.idx] }

// Remaining returns the time left in the current phase.
func (c *Clock) Remaining() time.Duration { return c.remaining }

// PerPhase returns the duration every phase runs for in this session.
func (c *Clock) PerPhase() time.Duration { return c.perPhase }

// Started reports whether Start has been called since the last Reset.
func (c *Clock) Started() bool { return c.started }

// Complete reports whether the last phase has finished.
func (c *Clock) Complete() bool { return c.complete }

// Elapsed returns total session time spent so far.
func (c *Clock) Elapsed() time.Duration {
	if !c.started {
		return 0
	}
	return time.Duration(c.idx)*c.perPhase + (c.perPhase - c.remaining)
}

// Total returns the full session duration.
func (c *Clock) Total() time.Duration {
	return time.Duration(len(Phases)) * c.perPhase
}

// Progress returns overall session progress in the range 0-100: the
// completed phases' share plus fractional progress within the current
// phase. It is non-decreasing over a run and reaches exactly 100 only
// when the session is complete.
func (c *Clock) Progress() float64 {
	if !c.started {
		return 0
	}
	if c.complete {
		return 100
	}
	frac := float64(c.perPhase-c.remaining) / float64(c.perPhase)
	return (float64(c.idx) + frac) / float64(len(Phases)) * 100
}

// FormatClock renders a duration as m:ss for the elapsed/remaining display.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
