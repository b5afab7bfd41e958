package render

import "github.com/charmbracelet/lipgloss"

// BeatColor is the accent used for the display string.
var BeatColor = lipgloss.AdaptiveColor{Light: "#2E7DE9", Dark: "#54A0FF"}

func displayStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Bold(true).
		Foreground(BeatColor)
}
