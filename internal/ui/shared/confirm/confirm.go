// Package confirm provides a small yes/no confirmation modal, used before
// abandoning a session in progress. It exposes a Result enum so callers
// decide their own exit behavior.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bwilliford/zenOut/internal/ui/styles"
)

// Result indicates the outcome of modal interaction.
type Result int

const (
	ResultNone    Result = iota // modal still open or not visible
	ResultConfirm               // user confirmed
	ResultCancel                // user dismissed
)

// Config controls the modal text.
type Config struct {
	Title   string // e.g. "End Session?"
	Message string // e.g. "Your progress will not be kept."
}

// Model is the confirmation modal state. The zero value is unusable; call
// New.
type Model struct {
	cfg     Config
	visible bool
	width   int
	height  int
}

// New creates a hidden modal; call Show to display it.
func New(cfg Config) Model {
	return Model{cfg: cfg}
}

// Show makes the modal visible.
func (m *Model) Show() { m.visible = true }

// Hide dismisses the modal.
func (m *Model) Hide() { m.visible = false }

// IsVisible reports whether the modal is currently displayed.
func (m Model) IsVisible() bool { return m.visible }

// SetSize records viewport dimensions for overlay centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles keys while the modal is visible. y/enter confirms,
// n/esc dismisses; ctrl+c force-quits.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, Result) {
	if !m.visible {
		return m, nil, ResultNone
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, ResultNone
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.visible = false
		return m, nil, ResultConfirm
	case "n", "N", "esc":
		m.visible = false
		return m, nil, ResultCancel
	case "ctrl+c":
		return m, tea.Quit, ResultNone
	}
	return m, nil, ResultNone
}

// Overlay renders the modal centered over the viewport, replacing content.
func (m Model) Overlay(content string) string {
	if !m.visible {
		return content
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextPrimaryColor)
	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextDescriptionColor).
		MarginTop(1)
	hintStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		MarginTop(1)

	inner := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.cfg.Title),
		messageStyle.Render(m.cfg.Message),
		hintStyle.Render("y: yes  •  n: no"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Padding(1, 3).
		Render(inner)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
