package session

import "time"

// Breathing cycle timing. One cycle is 12 seconds: 4 of inhale followed by
// 8 of exhale. The visible indicator fades out over the final second of
// each sub-state, and never exceeds MaxOpacity.
const (
	InhaleDuration = 4 * time.Second
	ExhaleDuration = 8 * time.Second
	CycleLength    = InhaleDuration + ExhaleDuration

	fadeWindow = time.Second

	// MaxOpacity is the ceiling of the breathing indicator's fade envelope.
	MaxOpacity = 0.6
)

// Substate is the half of the breathing cycle the listener is in.
type Substate int

const (
	Inhale Substate = iota
	Exhale
)

// Label returns the guidance text shown for the sub-state.
func (s Substate) Label() string {
	if s == Inhale {
		return "breathe in"
	}
	return "breathe out"
}

// BreathState is the derived breathing-cycle state at a point in time.
type BreathState struct {
	Substate Substate
	// InCycle is elapsed time within the current 12s cycle.
	InCycle time.Duration
	// InSubstate is elapsed time within the current sub-state.
	InSubstate time.Duration
	// Opacity is the indicator's fade envelope value, 0 to MaxOpacity.
	Opacity float64
}

// BreathAt derives the breathing state at now given the cycle anchor (the
// instant the current phase's cycle began). It recomputes from the wall
// clock delta each call rather than accumulating ticks, so indicator timing
// never drifts. A now before anchor is treated as the cycle start.
func BreathAt(anchor, now time.Time) BreathState {
	e := now.Sub(anchor)
	if e < 0 {
		e = 0
	}
	e %= CycleLength

	st := BreathState{InCycle: e}
	var length time.Duration
	if e < InhaleDuration {
		st.Substate = Inhale
		st.InSubstate = e
		length = InhaleDuration
	} else {
		st.Substate = Exhale
		st.InSubstate = e - InhaleDuration
		length = ExhaleDuration
	}

	// Linear fade over the last fadeWindow of the sub-state, clamped to
	// MaxOpacity everywhere before that.
	left := length - st.InSubstate
	if left < fadeWindow {
		st.Opacity = MaxOpacity * (float64(left) / float64(fadeWindow))
	} else {
		st.Opacity = MaxOpacity
	}
	return st
}
