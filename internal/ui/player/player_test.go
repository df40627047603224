package player

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/bwilliford/zenOut/internal/config"
	"github.com/bwilliford/zenOut/internal/cue"
	"github.com/bwilliford/zenOut/internal/session"
	"github.com/bwilliford/zenOut/internal/sound"
)

// recHandle is a minimal recording playback handle.
type recHandle struct {
	mu      sync.Mutex
	playing bool
}

func (h *recHandle) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.playing = true
}

func (h *recHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.playing = false
}

func (h *recHandle) SetVolume(float64) {}

func (h *recHandle) Playing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.playing
}

// recService records cue activity for assertions.
type recService struct {
	mu       sync.Mutex
	oneShots []string
	handles  []*recHandle
}

func (s *recService) PlayOnce(cueName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oneShots = append(s.oneShots, cueName)
}

func (s *recService) NewHandle(string, bool) sound.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &recHandle{}
	s.handles = append(s.handles, h)
	return h
}

func (s *recService) Available() bool { return true }

func (s *recService) chimes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.oneShots {
		if c == sound.CueChime {
			n++
		}
	}
	return n
}

func (s *recService) anyPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.handles {
		if h.Playing() {
			return true
		}
	}
	return false
}

// newTestModel builds a started player over a recording sound service with
// a controllable clock.
func newTestModel(t *testing.T, perPhase time.Duration) (Model, *recService, *time.Time) {
	t.Helper()

	svc := &recService{}
	sched := cue.New(svc, 4*time.Second)

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	m := New(config.Default(), sched, perPhase)
	m.now = func() time.Time { return now }
	m = m.SetSize(80, 30)

	m, cmd := m.Update(startRunMsg{})
	require.NotNil(t, cmd)
	return m, svc, &now
}

// tick delivers n clock ticks, advancing the fake wall clock alongside.
func tick(m Model, now *time.Time, n int) Model {
	for range n {
		*now = now.Add(session.TickInterval)
		m, _ = m.Update(clockTickMsg{gen: m.gen})
	}
	return m
}

// TestPlayer_StartFiresFirstChime verifies starting a run chimes for phase
// one and starts the ambience loop.
func TestPlayer_StartFiresFirstChime(t *testing.T) {
	m, svc, _ := newTestModel(t, 24*time.Second)

	require.Equal(t, 1, svc.chimes())
	require.True(t, svc.anyPlaying(), "ambience loop should be playing")
	require.Equal(t, 0, m.clock.PhaseIndex())
}

// TestPlayer_PhaseAdvanceReanchorsAndChimes verifies the 24th tick of a
// 24s phase advances, re-anchors the breathing cycle, and chimes again.
func TestPlayer_PhaseAdvanceReanchorsAndChimes(t *testing.T) {
	m, svc, now := newTestModel(t, 24*time.Second)
	before := m.anchor

	m = tick(m, now, 24)

	require.Equal(t, 1, m.clock.PhaseIndex())
	require.Equal(t, 24*time.Second, m.clock.Remaining())
	require.Equal(t, 2, svc.chimes())
	require.True(t, m.anchor.After(before), "cycle anchor must reset on phase change")
}

// TestPlayer_FullRunCompletes verifies the 2-minute scenario: 120 ticks end
// the session with every audio handle stopped.
func TestPlayer_FullRunCompletes(t *testing.T) {
	m, svc, now := newTestModel(t, 24*time.Second)

	m = tick(m, now, 120)

	require.True(t, m.Complete())
	require.Equal(t, float64(100), m.clock.Progress())
	require.Equal(t, 5, svc.chimes())
	require.False(t, svc.anyPlaying(), "all audio must stop at completion")

	// Further ticks change nothing.
	m = tick(m, now, 3)
	require.Equal(t, len(session.Phases)-1, m.clock.PhaseIndex())
}

// TestPlayer_BreathTickDerivesState verifies the sub-second poll re-derives
// the breathing indicator from the wall clock.
func TestPlayer_BreathTickDerivesState(t *testing.T) {
	m, _, now := newTestModel(t, 60*time.Second)

	*now = now.Add(5 * time.Second)
	m, _ = m.Update(breathTickMsg{gen: m.gen})
	require.Equal(t, session.Exhale, m.breath.Substate)

	*now = now.Add(-1100 * time.Millisecond) // back inside the inhale window
	m, _ = m.Update(breathTickMsg{gen: m.gen})
	require.Equal(t, session.Inhale, m.breath.Substate)
}

// TestPlayer_EndSessionConfirmStopsEverything verifies confirming the end
// modal stops audio, resets the clock, and emits BackToStartMsg.
func TestPlayer_EndSessionConfirmStopsEverything(t *testing.T) {
	m, svc, now := newTestModel(t, 60*time.Second)
	m = tick(m, now, 5)
	staleGen := m.gen

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, m.endModal.IsVisible())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	_, ok := cmd().(BackToStartMsg)
	require.True(t, ok)

	require.False(t, svc.anyPlaying())
	require.False(t, m.clock.Started())

	// A stale tick from the abandoned run must not mutate anything.
	m, next := m.Update(clockTickMsg{gen: staleGen})
	require.Nil(t, next)
	require.False(t, m.clock.Started())
	require.Equal(t, time.Duration(0), m.clock.Remaining())
}

// TestPlayer_EndSessionCancelKeepsRunning verifies dismissing the modal
// leaves the session running.
func TestPlayer_EndSessionCancelKeepsRunning(t *testing.T) {
	m, _, now := newTestModel(t, 60*time.Second)
	m = tick(m, now, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.False(t, m.endModal.IsVisible())

	m = tick(m, now, 1)
	require.Equal(t, 54*time.Second, m.clock.Remaining())
}

// TestPlayer_MuteToggleIndependentOfClock verifies m toggles ambience
// without disturbing the session clock.
func TestPlayer_MuteToggleIndependentOfClock(t *testing.T) {
	m, _, now := newTestModel(t, 60*time.Second)
	m = tick(m, now, 10)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	require.False(t, m.sched.AmbienceOn())
	require.Equal(t, 50*time.Second, m.clock.Remaining())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	require.True(t, m.sched.AmbienceOn())
}

// TestPlayer_CompleteThenEnterReturnsToStart verifies the completion view
// routes back to the start screen.
func TestPlayer_CompleteThenEnterReturnsToStart(t *testing.T) {
	m, _, now := newTestModel(t, time.Second)
	m = tick(m, now, len(session.Phases))
	require.True(t, m.Complete())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(BackToStartMsg)
	require.True(t, ok)
}

// TestPlayer_ViewShowsPhaseAndClock sanity-checks the running view.
func TestPlayer_ViewShowsPhaseAndClock(t *testing.T) {
	m, _, now := newTestModel(t, 60*time.Second)
	m = tick(m, now, 10)

	view := m.View()
	require.Contains(t, view, "Deep Breathing")
	require.Contains(t, view, "phase 1 of 5")
	require.Contains(t, view, "0:50 remaining in phase")
	require.Contains(t, view, "breathe")
}

// TestPlayer_ViewComplete sanity-checks the completion view.
func TestPlayer_ViewComplete(t *testing.T) {
	m, _, now := newTestModel(t, time.Second)
	m = tick(m, now, len(session.Phases))

	view := m.View()
	require.Contains(t, view, "Session complete")
	require.Contains(t, view, "enter: return to start")
}
