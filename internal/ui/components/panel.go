package components

import (
	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centered panels.
// All boxes render at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the outer border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// PanelFrame wraps content in a double-border frame, centering it within
// the given dimensions.
func PanelFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// PanelCard wraps content in a rounded-border card at the given width.
func PanelCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// PanelButton renders a selectable button matching the home menu style.
func PanelButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Secondary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
