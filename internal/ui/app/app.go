// Package app composes the screens: the start screen and the session
// player. It owns screen routing; each screen owns its own state.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bwilliford/zenOut/internal/config"
	"github.com/bwilliford/zenOut/internal/cue"
	"github.com/bwilliford/zenOut/internal/log"
	"github.com/bwilliford/zenOut/internal/sound"
	"github.com/bwilliford/zenOut/internal/ui/player"
	"github.com/bwilliford/zenOut/internal/ui/start"
)

// screen identifies the active top-level view.
type screen int

const (
	screenStart screen = iota
	screenPlayer
)

// Model is the root application model.
type Model struct {
	cfg    config.Config
	sounds sound.Service

	active screen
	start  start.Model
	player player.Model

	width  int
	height int
}

// New creates the root model on the start screen.
func New(cfg config.Config, sounds sound.Service) Model {
	return Model{
		cfg:    cfg,
		sounds: sounds,
		start:  start.New(cfg.Session.LengthsMinutes),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.start = m.start.SetSize(msg.Width, msg.Height)
		if m.active == screenPlayer {
			var cmd tea.Cmd
			m.player, cmd = m.player.Update(msg)
			return m, cmd
		}
		return m, nil

	case start.StartSessionMsg:
		// Each run gets its own scheduler, so cue resources are scoped to
		// the run that acquired them.
		sched := cue.New(m.sounds, m.cfg.CueStartDelay())
		m.player = player.New(m.cfg, sched, msg.PerPhase)
		m.player = m.player.SetSize(m.width, m.height)
		m.active = screenPlayer
		log.Info(log.CatUI, "Starting session", "minutes", msg.TotalMinutes)
		return m, m.player.Init()

	case player.BackToStartMsg:
		m.active = screenStart
		return m, nil
	}

	switch m.active {
	case screenPlayer:
		var cmd tea.Cmd
		m.player, cmd = m.player.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.start, cmd = m.start.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.active == screenPlayer {
		return m.player.View()
	}
	return m.start.View()
}
