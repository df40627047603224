// Package start provides the start screen: pick a session length and begin.
package start

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bwilliford/zenOut/internal/keys"
	"github.com/bwilliford/zenOut/internal/session"
	"github.com/bwilliford/zenOut/internal/ui/styles"
)

// StartSessionMsg asks the app to begin a session run.
type StartSessionMsg struct {
	// PerPhase is the duration of each of the five phases.
	PerPhase time.Duration
	// TotalMinutes is the selected preset, for display.
	TotalMinutes int
}

// Model holds the start screen state.
type Model struct {
	lengths  []int // minutes
	selected int
	width    int
	height   int
}

// New creates a start screen offering the given session lengths in minutes.
func New(lengths []int) Model {
	return Model{lengths: lengths}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Common.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Common.Up):
			m.selected--
			if m.selected < 0 {
				m.selected = len(m.lengths) - 1
			}
		case key.Matches(msg, keys.Common.Down):
			m.selected++
			if m.selected >= len(m.lengths) {
				m.selected = 0
			}
		case key.Matches(msg, keys.Common.Enter):
			minutes := m.lengths[m.selected]
			perPhase := time.Duration(minutes) * time.Minute / time.Duration(len(session.Phases))
			return m, func() tea.Msg {
				return StartSessionMsg{PerPhase: perPhase, TotalMinutes: minutes}
			}
		}
	}
	return m, nil
}

// View renders the start screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.AccentColor)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(styles.TextDescriptionColor).
		MarginBottom(1)
	itemStyle := lipgloss.NewStyle().
		Foreground(styles.TextDescriptionColor)
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.AccentColor)
	hintStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Italic(true).
		MarginTop(2)

	var content strings.Builder
	content.WriteString(titleStyle.Render("z e n O u t"))
	content.WriteString("\n\n")
	content.WriteString(subtitleStyle.Render("A guided wind-down: breathing, humming, and gentle massage."))
	content.WriteString("\n\n")
	content.WriteString(itemStyle.Render("How long do you have?"))
	content.WriteString("\n\n")

	for i, minutes := range m.lengths {
		label := fmt.Sprintf("%d minutes", minutes)
		if i == m.selected {
			content.WriteString(selectedStyle.Render("▸ " + label))
		} else {
			content.WriteString(itemStyle.Render("  " + label))
		}
		content.WriteString("\n")
	}

	content.WriteString(hintStyle.Render("↑/↓: choose  •  enter: begin  •  q: quit"))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content.String())
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Selected returns the currently highlighted length in minutes.
func (m Model) Selected() int {
	return m.lengths[m.selected]
}
