package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bwilliford/zenOut/internal/session"
	"github.com/bwilliford/zenOut/internal/ui/styles"
)

// Breathing circle geometry: the disc grows over the inhale and shrinks
// back over the exhale, the terminal stand-in for the original's eased
// scale animation.
const (
	minRadius = 1
	maxRadius = 5
)

// View renders the session screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content string
	if m.complete {
		content = m.renderComplete()
	} else {
		content = m.renderRunning()
	}

	out := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	if m.endModal.IsVisible() {
		return m.endModal.Overlay(out)
	}
	return out
}

// renderRunning renders the active-phase layout.
func (m Model) renderRunning() string {
	phase := m.clock.Phase()

	phaseStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.AccentColor)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextDescriptionColor).
		Width(52).
		Align(lipgloss.Center)
	counterStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor)
	clockStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor)
	hintStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Italic(true)

	var b strings.Builder
	b.WriteString(counterStyle.Render(fmt.Sprintf("phase %d of %d", m.clock.PhaseIndex()+1, len(session.Phases))))
	b.WriteString("\n")
	b.WriteString(phaseStyle.Render(phase.Illustration + "  " + phase.Name))
	b.WriteString("\n\n")
	b.WriteString(descStyle.Render(phase.Description))
	b.WriteString("\n\n")
	b.WriteString(renderBreathCircle(m.breath))
	b.WriteString("\n")
	b.WriteString(renderBreathLabel(m.breath))
	b.WriteString("\n\n")
	b.WriteString(clockStyle.Render(fmt.Sprintf("%s remaining in phase  •  %s / %s",
		session.FormatClock(m.clock.Remaining()),
		session.FormatClock(m.clock.Elapsed()),
		session.FormatClock(m.clock.Total()),
	)))
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(m.clock.Progress() / 100))
	b.WriteString("\n\n")

	mute := "mute"
	if !m.sched.AmbienceOn() {
		mute = "unmute"
	}
	b.WriteString(hintStyle.Render(fmt.Sprintf("m: %s ambience  •  f: fullscreen  •  esc: end session", mute)))

	return b.String()
}

// renderComplete renders the end-of-session layout.
func (m Model) renderComplete() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.AccentColor)
	bodyStyle := lipgloss.NewStyle().
		Foreground(styles.TextDescriptionColor).
		MarginTop(1)
	hintStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Italic(true).
		MarginTop(2)

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("✦  Session complete"),
		bodyStyle.Render(fmt.Sprintf("You took %s for yourself.", session.FormatClock(m.clock.Total()))),
		hintStyle.Render("enter: return to start"),
	)
}

// renderBreathLabel renders the inhale/exhale guidance text, dimmed as the
// indicator's fade envelope falls off.
func renderBreathLabel(st session.BreathState) string {
	style := lipgloss.NewStyle().Foreground(styles.BreathCircleColor)
	if st.Opacity < session.MaxOpacity/2 {
		style = style.Faint(true)
	}
	return style.Render(st.Substate.Label())
}

// renderBreathCircle draws the pulsing disc. Radius tracks progress through
// the sub-state (growing on inhale, shrinking on exhale) and the fill
// character tracks the fade envelope.
func renderBreathCircle(st session.BreathState) string {
	var growth float64
	if st.Substate == session.Inhale {
		growth = float64(st.InSubstate) / float64(session.InhaleDuration)
	} else {
		growth = 1 - float64(st.InSubstate)/float64(session.ExhaleDuration)
	}
	radius := minRadius + growth*(maxRadius-minRadius)

	fill := fillForOpacity(st.Opacity)
	style := lipgloss.NewStyle().Foreground(styles.BreathCircleColor)

	var rows []string
	for y := -maxRadius; y <= maxRadius; y++ {
		var row strings.Builder
		for x := -maxRadius * 2; x <= maxRadius*2; x++ {
			// Terminal cells are roughly twice as tall as wide.
			fx := float64(x) / 2
			fy := float64(y)
			if fx*fx+fy*fy <= radius*radius {
				row.WriteString(fill)
			} else {
				row.WriteString(" ")
			}
		}
		rows = append(rows, row.String())
	}
	return style.Render(strings.Join(rows, "\n"))
}

// fillForOpacity buckets the fade envelope into shade characters.
func fillForOpacity(opacity float64) string {
	switch {
	case opacity >= 0.45:
		return "█"
	case opacity >= 0.3:
		return "▓"
	case opacity >= 0.15:
		return "▒"
	case opacity > 0:
		return "░"
	default:
		return " "
	}
}
