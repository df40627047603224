package start

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStart_SelectionWraps(t *testing.T) {
	m := New([]int{2, 5, 10})
	require.Equal(t, 2, m.Selected())

	m, _ = m.Update(keyMsg("down"))
	require.Equal(t, 5, m.Selected())

	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	require.Equal(t, 2, m.Selected(), "down past the end wraps to the top")

	m, _ = m.Update(keyMsg("up"))
	require.Equal(t, 10, m.Selected(), "up past the top wraps to the bottom")
}

func TestStart_EnterEmitsStartSessionMsg(t *testing.T) {
	m := New([]int{2, 5, 10})
	m, _ = m.Update(keyMsg("down")) // 5 minutes

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	startMsg, ok := msg.(StartSessionMsg)
	require.True(t, ok)
	require.Equal(t, 5, startMsg.TotalMinutes)
	require.Equal(t, time.Minute, startMsg.PerPhase, "5 minutes across 5 phases is 1 minute per phase")
}

func TestStart_TwoMinutePresetPerPhase(t *testing.T) {
	m := New([]int{2})
	_, cmd := m.Update(keyMsg("enter"))
	msg := cmd().(StartSessionMsg)
	require.Equal(t, 24*time.Second, msg.PerPhase)
}

func TestStart_ViewListsPresets(t *testing.T) {
	m := New([]int{2, 5, 10}).SetSize(80, 24)
	view := m.View()

	require.Contains(t, view, "z e n O u t")
	require.Contains(t, view, "2 minutes")
	require.Contains(t, view, "5 minutes")
	require.Contains(t, view, "10 minutes")
	require.Contains(t, view, "▸ 2 minutes", "first preset starts selected")
}

func TestStart_ViewEmptyBeforeSize(t *testing.T) {
	m := New([]int{2})
	require.Empty(t, m.View())
}
