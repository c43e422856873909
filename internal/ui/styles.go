package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/glowgrid/internal/theme"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)

// buttonStyle draws the call-to-action box in the palette's colors.
func buttonStyle(p theme.Palette, hover bool) lipgloss.Style {
	text := p.ButtonText
	if hover {
		text = p.ButtonHoverText
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.ButtonBorder)).
		BorderBackground(lipgloss.Color(p.GridCell)).
		Background(lipgloss.Color(p.GridCell)).
		Foreground(lipgloss.Color(text)).
		Bold(hover).
		Padding(0, 3)
}
