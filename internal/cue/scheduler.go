// Package cue fires the session's audio cues: the phase-start chime, the
// per-cycle hum with its fade-out, and the ambience loop.
//
// The scheduler owns no timers. The caller polls it with the current time
// and the scheduler re-derives the hum envelope from the wall-clock delta
// since the phase anchor, applying Start/SetVolume/Stop transitions to the
// playback handle as the derived state changes. Leaving a phase stops
// everything synchronously, so no scheduled work can outlive its phase.
package cue

import (
	"sync"
	"time"

	"github.com/bwilliford/zenOut/internal/log"
	"github.com/bwilliford/zenOut/internal/session"
	"github.com/bwilliford/zenOut/internal/sound"
)

// Hum envelope within one 12s breathing cycle: play at full volume for 7s,
// ramp linearly to silence over the next 1s, stay silent until the cycle
// wraps.
const (
	humPlayFor = 7 * time.Second
	humFadeLen = time.Second
)

// envelope derives the hum playback state at offset e from the first
// firing. A negative e means the first firing has not happened yet.
func envelope(e time.Duration) (playing bool, volume float64) {
	if e < 0 {
		return false, 0
	}
	c := e % session.CycleLength
	switch {
	case c < humPlayFor:
		return true, 1
	case c < humPlayFor+humFadeLen:
		return true, float64(humPlayFor+humFadeLen-c) / float64(humFadeLen)
	default:
		return false, 0
	}
}

// Scheduler coordinates the three audio resources of a session run. All
// methods are safe for concurrent use, though the player drives them from
// a single update loop.
type Scheduler struct {
	sounds sound.Service
	// startDelay offsets the first hum from the phase start, aligning it
	// with the first exhale. Configurable; 4s by default.
	startDelay time.Duration

	mu         sync.Mutex
	running    bool
	humPhase   bool
	anchor     time.Time
	hum        sound.Handle
	humPlaying bool
	ambience   sound.Handle
	ambienceOn bool
}

// New creates a scheduler playing through sounds. startDelay is the delay
// between entering a hum phase and its first hum firing.
func New(sounds sound.Service, startDelay time.Duration) *Scheduler {
	return &Scheduler{sounds: sounds, startDelay: startDelay}
}

// StartSession acquires the ambience loop and, when ambienceOn, starts it.
// Call once per run, before the first EnterPhase.
func (s *Scheduler) StartSession(ambienceOn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
	s.ambience = s.sounds.NewHandle(sound.CueAmbience, true)
	s.ambienceOn = ambienceOn
	if ambienceOn {
		s.ambience.Start()
	}
	log.Debug(log.CatCue, "Session cues started", "ambience", ambienceOn)
}

// EnterPhase fires the phase-start chime and rebinds the hum to the new
// phase. The previous phase's hum is stopped synchronously before the new
// handle is acquired, so no playback or volume mutation can leak across
// the boundary. anchor is the instant the phase's breathing cycle begins.
func (s *Scheduler) EnterPhase(idx int, anchor time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	s.releaseHumLocked()

	s.sounds.PlayOnce(sound.CueChime)

	s.humPhase = session.HumPhase(idx)
	s.anchor = anchor
	if s.humPhase {
		s.hum = s.sounds.NewHandle(sound.CueHum, false)
	}
	log.Debug(log.CatCue, "Entered phase", "phase", idx, "hum", s.humPhase)
}

// Poll applies the hum envelope derived at now. Call it on the player's
// sub-second poll; calling after Stop is a no-op.
func (s *Scheduler) Poll(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || !s.humPhase || s.hum == nil {
		return
	}

	playing, volume := envelope(now.Sub(s.anchor.Add(s.startDelay)))
	switch {
	case playing && !s.humPlaying:
		// First firing of the cycle; one Start per cycle wrap.
		s.hum.SetVolume(volume)
		s.hum.Start()
		s.humPlaying = true
	case playing:
		s.hum.SetVolume(volume)
	case !playing && s.humPlaying:
		// Fade finished: stop and rewind, ready for the next cycle.
		s.hum.Stop()
		s.humPlaying = false
	}
}

// ToggleAmbience flips the ambience mute state and returns the new state.
// This is also the opportunistic resume gesture: unmuting restarts
// playback that an earlier failure may have silenced. Cue timing is
// unaffected either way.
func (s *Scheduler) ToggleAmbience() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambienceOn = !s.ambienceOn
	if s.ambience != nil {
		if s.ambienceOn {
			s.ambience.Start()
		} else {
			s.ambience.Stop()
		}
	}
	return s.ambienceOn
}

// AmbienceOn reports the current ambience state.
func (s *Scheduler) AmbienceOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ambienceOn
}

// Stop halts all playback synchronously: the in-flight hum, the ambience
// loop, and any pending fade (fades are derived on poll, and polling a
// stopped scheduler is a no-op). Used both for completion and for leaving
// a session early.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.releaseHumLocked()
	if s.ambience != nil {
		s.ambience.Stop()
		s.ambience = nil
	}
	log.Debug(log.CatCue, "Session cues stopped")
}

// releaseHumLocked stops and detaches the current hum handle. Caller holds
// the lock.
func (s *Scheduler) releaseHumLocked() {
	if s.hum != nil {
		s.hum.Stop()
		s.hum = nil
	}
	s.humPlaying = false
	s.humPhase = false
}
