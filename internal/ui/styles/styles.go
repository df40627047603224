// Package styles holds the color tokens shared by every screen. Tokens are
// package vars so a theme preset can restyle the whole UI in one call.
package styles

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Color tokens. Defaults are the "default" preset; ApplyTheme rewrites them.
var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1A1B26", Dark: "#E8E3D3"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6E6A86"}
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#4A4A4A", Dark: "#B8B2A7"}
	AccentColor          = lipgloss.AdaptiveColor{Light: "#2D6A4F", Dark: "#95D5B2"}
	BreathCircleColor    = lipgloss.AdaptiveColor{Light: "#40916C", Dark: "#74C69D"}
	ProgressColor        = lipgloss.AdaptiveColor{Light: "#52796F", Dark: "#84A98C"}
	BorderFocusColor     = lipgloss.AdaptiveColor{Light: "#2D6A4F", Dark: "#95D5B2"}
)

// Preset is a named set of color tokens.
type Preset struct {
	Description string
	Colors      map[string]lipgloss.AdaptiveColor
}

// Presets are the built-in themes selectable via config.
var Presets = map[string]Preset{
	"default": {
		Description: "Soft greens on a warm neutral base",
		Colors: map[string]lipgloss.AdaptiveColor{
			"text.primary":     {Light: "#1A1B26", Dark: "#E8E3D3"},
			"text.muted":       {Light: "#8A8A8A", Dark: "#6E6A86"},
			"text.description": {Light: "#4A4A4A", Dark: "#B8B2A7"},
			"accent":           {Light: "#2D6A4F", Dark: "#95D5B2"},
			"breath.circle":    {Light: "#40916C", Dark: "#74C69D"},
			"progress":         {Light: "#52796F", Dark: "#84A98C"},
			"border.focus":     {Light: "#2D6A4F", Dark: "#95D5B2"},
		},
	},
	"dusk": {
		Description: "Muted violets for low-light evenings",
		Colors: map[string]lipgloss.AdaptiveColor{
			"text.primary":     {Light: "#2B2640", Dark: "#E0DEF4"},
			"text.muted":       {Light: "#9893A5", Dark: "#6E6A86"},
			"text.description": {Light: "#57526E", Dark: "#C0BCD6"},
			"accent":           {Light: "#907AA9", Dark: "#C4A7E7"},
			"breath.circle":    {Light: "#7C6F9F", Dark: "#A48FD1"},
			"progress":         {Light: "#56949F", Dark: "#9CCFD8"},
			"border.focus":     {Light: "#907AA9", Dark: "#C4A7E7"},
		},
	},
	"tide": {
		Description: "Cool blues with a touch of sea foam",
		Colors: map[string]lipgloss.AdaptiveColor{
			"text.primary":     {Light: "#1B2A33", Dark: "#D7E3EA"},
			"text.muted":       {Light: "#7F8C94", Dark: "#5E6F78"},
			"text.description": {Light: "#41535E", Dark: "#A9BDC9"},
			"accent":           {Light: "#1D7A85", Dark: "#76C7D0"},
			"breath.circle":    {Light: "#2E8C99", Dark: "#8FD8E0"},
			"progress":         {Light: "#3A7CA5", Dark: "#7FB3D5"},
			"border.focus":     {Light: "#1D7A85", Dark: "#76C7D0"},
		},
	},
}

// ApplyTheme rewrites the color tokens from the named preset.
func ApplyTheme(preset string) error {
	if preset == "" {
		preset = "default"
	}
	p, ok := Presets[preset]
	if !ok {
		return fmt.Errorf("unknown theme preset: %q (run 'zenout themes' to list presets)", preset)
	}

	assign := func(key string, dst *lipgloss.AdaptiveColor) {
		if c, ok := p.Colors[key]; ok {
			*dst = c
		}
	}
	assign("text.primary", &TextPrimaryColor)
	assign("text.muted", &TextMutedColor)
	assign("text.description", &TextDescriptionColor)
	assign("accent", &AccentColor)
	assign("breath.circle", &BreathCircleColor)
	assign("progress", &ProgressColor)
	assign("border.focus", &BorderFocusColor)
	return nil
}

// PresetNames returns the preset names sorted for display.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
