package ui

import (
	"charm.land/lipgloss/v2"
)

// Color palette, roughly the blue-and-gold of a state road manual.
var (
	colorPrimary = lipgloss.Color("#2563EB") // Highway Blue
	colorAccent  = lipgloss.Color("#F59E0B") // Sign Gold
	colorSuccess = lipgloss.Color("#16A34A") // Green
	colorError   = lipgloss.Color("#DC2626") // Red
	colorText    = lipgloss.Color("#F1F5F9") // Near White
	colorTextDim = lipgloss.Color("#94A3B8") // Slate
	colorBgCard  = lipgloss.Color("#1E293B") // Dark Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleBody = lipgloss.NewStyle().
			Foreground(colorText)

	styleDim = lipgloss.NewStyle().
			Foreground(colorTextDim)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleAccent = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleBar = lipgloss.NewStyle().
			Background(colorBgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)
)
