package sound

import (
	"os/exec"
	"sync"

	"github.com/bwilliford/zenOut/internal/log"
)

// Handle is a stoppable playback resource for a single cue. A handle is
// owned by whatever scope acquired it (the session for ambience, a phase
// for the hum) and must be stopped before that scope ends. All methods are
// fire-and-forget: playback failure is logged and swallowed.
type Handle interface {
	// Start begins playback. Starting an already playing handle does
	// nothing.
	Start()
	// Stop halts playback immediately and rewinds to the beginning.
	// Stopping an idle handle does nothing.
	Stop()
	// SetVolume adjusts playback volume in the range 0..1. System players
	// apply it best-effort: it takes effect on the next (re)start of the
	// underlying player process.
	SetVolume(v float64)
	// Playing reports whether the handle is currently playing.
	Playing() bool
}

// NoopHandle is a Handle that does nothing. Returned for disabled or
// unknown cues so callers never branch on audio availability.
type NoopHandle struct{}

func (NoopHandle) Start()            {}
func (NoopHandle) Stop()             {}
func (NoopHandle) SetVolume(float64) {}
func (NoopHandle) Playing() bool     { return false }

// systemHandle plays a file via the service's audio command in a background
// goroutine, optionally relaunching it to loop. Stop kills the in-flight
// player process so it takes effect immediately.
type systemHandle struct {
	svc  *SystemService
	cue  string
	path string
	loop bool

	mu      sync.Mutex
	playing bool
	volume  float64
	cmd     *exec.Cmd
	gen     int
}

func newSystemHandle(svc *SystemService, cue, path string, loop bool) *systemHandle {
	return &systemHandle{svc: svc, cue: cue, path: path, loop: loop, volume: 1}
}

// Start begins playback in a background goroutine.
func (h *systemHandle) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.playing {
		return
	}
	h.playing = true
	h.gen++
	go h.playLoop(h.gen)
}

// playLoop runs the player process, relaunching while looping. gen guards
// against a stale loop resurrecting a handle that was stopped and
// restarted.
func (h *systemHandle) playLoop(gen int) {
	for {
		h.mu.Lock()
		if !h.playing || h.gen != gen {
			h.mu.Unlock()
			return
		}
		args := h.svc.buildArgs(h.path, h.volume)
		cmd := exec.Command(h.svc.audioCommand, args...) //nolint:gosec // audioCommand validated at construction
		if err := cmd.Start(); err != nil {
			h.playing = false
			h.mu.Unlock()
			log.Debug(log.CatSound, "Playback failed to start", "cue", h.cue, "error", err)
			return
		}
		h.cmd = cmd
		h.mu.Unlock()

		// Wait returns on natural end or on Stop killing the process.
		err := cmd.Wait()

		h.mu.Lock()
		h.cmd = nil
		stopped := !h.playing || h.gen != gen
		if !h.loop && !stopped {
			h.playing = false
		}
		done := stopped || !h.loop
		h.mu.Unlock()

		if err != nil && !stopped {
			log.Debug(log.CatSound, "Playback ended with error", "cue", h.cue, "error", err)
		}
		if done {
			return
		}
	}
}

// Stop halts playback immediately. The player process is killed, which for
// file players is equivalent to rewinding to position zero.
func (h *systemHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.playing {
		return
	}
	h.playing = false
	if h.cmd != nil && h.cmd.Process != nil {
		if err := h.cmd.Process.Kill(); err != nil {
			log.Debug(log.CatSound, "Failed to kill player process", "cue", h.cue, "error", err)
		}
	}
}

// SetVolume stores the volume for the next player launch. System commands
// cannot change volume mid-flight; a ramp to zero is realized by the caller
// stopping the handle when the ramp ends.
func (h *systemHandle) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	h.mu.Lock()
	h.volume = v
	h.mu.Unlock()
}

// Playing reports whether the handle is currently playing.
func (h *systemHandle) Playing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.playing
}
