package tui

import (
	"splendor/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

var kindColors = [game.NumKinds]lipgloss.Color{
	game.Black: "#A0A0A0",
	game.Blue:  "#4A90E2",
	game.Green: "#50C878",
	game.Red:   "#FF6B6B",
	game.White: "#FAFAFA",
	game.Gold:  "#FFD700",
}

// KindStyle colours text by token kind.
func KindStyle(k game.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(kindColors[k]).Bold(true)
}
