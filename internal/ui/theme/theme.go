package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — midnight blue with a warm accent, readable on both
// dark and light terminal backgrounds.
var (
	Primary   = lipgloss.Color("#7AA2F7") // Periwinkle
	Secondary = lipgloss.Color("#2AC3DE") // Cyan
	Accent    = lipgloss.Color("#E0AF68") // Gold
	Success   = lipgloss.Color("#9ECE6A") // Green
	Error     = lipgloss.Color("#F7768E") // Coral
	Warning   = lipgloss.Color("#FF9E64") // Orange
	Text      = lipgloss.Color("#C0CAF5") // Pale lavender
	TextDim   = lipgloss.Color("#565F89") // Muted slate
	BgDark    = lipgloss.Color("#1A1B26") // Midnight
	BgCard    = lipgloss.Color("#24283B") // Dark slate
	Border    = lipgloss.Color("#3B4261") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
