// Package player provides the session screen: the running phase clock, the
// pulsing breathing indicator, and the audio cue wiring.
package player

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bwilliford/zenOut/internal/config"
	"github.com/bwilliford/zenOut/internal/cue"
	"github.com/bwilliford/zenOut/internal/keys"
	"github.com/bwilliford/zenOut/internal/log"
	"github.com/bwilliford/zenOut/internal/session"
	"github.com/bwilliford/zenOut/internal/ui/shared/confirm"
)

// breathPollInterval drives the breathing indicator and cue poll. The
// session clock itself ticks at session.TickInterval; this finer poll only
// re-derives display state and the hum envelope from the wall clock.
const breathPollInterval = 100 * time.Millisecond

// BackToStartMsg asks the app to return to the start screen.
type BackToStartMsg struct{}

// clockTickMsg and breathTickMsg carry the run generation that scheduled
// them; ticks from an abandoned run are dropped so stale callbacks can
// never mutate a newer session's state.
type (
	clockTickMsg  struct{ gen int }
	breathTickMsg struct{ gen int }
)

// Model holds the session screen state.
type Model struct {
	cfg      config.Config
	sched    *cue.Scheduler
	now      func() time.Time
	clock    session.Clock
	perPhase time.Duration
	// anchor marks when the current phase's breathing cycle began.
	anchor   time.Time
	breath   session.BreathState
	progress progress.Model
	endModal confirm.Model

	gen        int
	width      int
	height     int
	fullscreen bool
	complete   bool
	stopped    bool
}

// New creates a session screen that will run each phase for perPhase.
func New(cfg config.Config, sched *cue.Scheduler, perPhase time.Duration) Model {
	return Model{
		cfg:      cfg,
		sched:    sched,
		now:      time.Now,
		perPhase: perPhase,
		progress: progress.New(progress.WithSolidFill("#84A98C"), progress.WithoutPercentage()),
		endModal: confirm.New(confirm.Config{
			Title:   "End Session?",
			Message: "The session is still in progress.",
		}),
		fullscreen: true,
	}
}

// Init starts the clock and the cue scheduler and arms both tick loops.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startRunMsg{} }
}

// startRunMsg defers run start into Update so state mutation happens on
// the update loop.
type startRunMsg struct{}

// Update implements the screen's message handling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startRunMsg:
		return m.startRun()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.endModal.SetSize(msg.Width, msg.Height)
		w := msg.Width - 20
		if w > 48 {
			w = 48
		}
		if w < 10 {
			w = 10
		}
		m.progress.Width = w
		return m, nil

	case clockTickMsg:
		return m.handleClockTick(msg)

	case breathTickMsg:
		return m.handleBreathTick(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// startRun begins a fresh run: clock from phase one, cues bound, both tick
// loops armed.
func (m Model) startRun() (Model, tea.Cmd) {
	if err := m.clock.Start(m.perPhase); err != nil {
		log.Error(log.CatSession, "Failed to start session clock", "error", err)
		return m, func() tea.Msg { return BackToStartMsg{} }
	}

	m.stopped = false
	m.complete = false
	m.gen++
	m.anchor = m.now()
	m.breath = session.BreathAt(m.anchor, m.anchor)

	m.sched.StartSession(m.cfg.Ambience.Enabled)
	m.sched.EnterPhase(0, m.anchor)

	log.Info(log.CatSession, "Session started",
		"perPhase", m.perPhase,
		"total", m.clock.Total(),
	)
	return m, tea.Batch(m.clockTickCmd(), m.breathTickCmd())
}

func (m Model) clockTickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(session.TickInterval, func(time.Time) tea.Msg {
		return clockTickMsg{gen: gen}
	})
}

func (m Model) breathTickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(breathPollInterval, func(time.Time) tea.Msg {
		return breathTickMsg{gen: gen}
	})
}

// handleClockTick advances the session clock by one interval.
func (m Model) handleClockTick(msg clockTickMsg) (Model, tea.Cmd) {
	if msg.gen != m.gen || m.stopped || m.complete {
		return m, nil
	}

	res := m.clock.Tick()
	if res.Advanced {
		m.anchor = m.now()
		m.sched.EnterPhase(m.clock.PhaseIndex(), m.anchor)
		log.Debug(log.CatSession, "Phase advanced", "phase", m.clock.PhaseIndex())
	}
	if res.Completed {
		m.complete = true
		m.sched.Stop()
		log.Info(log.CatSession, "Session complete", "total", m.clock.Total())
		return m, nil
	}
	return m, m.clockTickCmd()
}

// handleBreathTick re-derives the breathing indicator and polls the cue
// scheduler.
func (m Model) handleBreathTick(msg breathTickMsg) (Model, tea.Cmd) {
	if msg.gen != m.gen || m.stopped || m.complete {
		return m, nil
	}

	now := m.now()
	m.breath = session.BreathAt(m.anchor, now)
	m.sched.Poll(now)
	return m, m.breathTickCmd()
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	// The end-confirmation modal owns the keyboard while visible.
	if m.endModal.IsVisible() {
		var cmd tea.Cmd
		var result confirm.Result
		m.endModal, cmd, result = m.endModal.Update(msg)
		if result == confirm.ResultConfirm {
			m = m.stopRun()
			return m, func() tea.Msg { return BackToStartMsg{} }
		}
		return m, cmd
	}

	// After completion any of the usual exits returns to start.
	if m.complete {
		switch {
		case key.Matches(msg, keys.Common.Enter),
			key.Matches(msg, keys.Common.Escape),
			key.Matches(msg, keys.Common.Quit):
			return m, func() tea.Msg { return BackToStartMsg{} }
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Player.ToggleMute):
		// Also the opportunistic resume gesture after a playback failure.
		on := m.sched.ToggleAmbience()
		log.Debug(log.CatUI, "Ambience toggled", "on", on)
		return m, nil

	case key.Matches(msg, keys.Player.ToggleFullscreen):
		m.fullscreen = !m.fullscreen
		if m.fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen

	case key.Matches(msg, keys.Player.EndSession):
		m.endModal.Show()
		return m, nil

	case msg.String() == "ctrl+c":
		m.endModal.Show()
		return m, nil
	}
	return m, nil
}

// stopRun tears the run down synchronously: cues stopped, clock reset, and
// the generation bumped so in-flight ticks are dropped on arrival.
func (m Model) stopRun() Model {
	m.stopped = true
	m.gen++
	m.sched.Stop()
	m.clock.Reset()
	log.Info(log.CatSession, "Session abandoned")
	return m
}

// Complete reports whether the run finished all phases.
func (m Model) Complete() bool { return m.complete }

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.endModal.SetSize(width, height)
	return m
}
