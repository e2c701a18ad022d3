package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Output styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
