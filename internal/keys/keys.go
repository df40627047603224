// Package keys defines the application's keybindings.
package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeyMap holds bindings shared by every screen.
type CommonKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// Common is the shared keymap.
var Common = CommonKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PlayerKeyMap holds bindings active during a session.
type PlayerKeyMap struct {
	ToggleMute       key.Binding
	ToggleFullscreen key.Binding
	EndSession       key.Binding
}

// Player is the session-screen keymap.
var Player = PlayerKeyMap{
	ToggleMute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute ambience"),
	),
	ToggleFullscreen: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fullscreen"),
	),
	EndSession: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "end session"),
	),
}
