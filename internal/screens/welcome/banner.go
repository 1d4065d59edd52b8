package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

const bannerArt = `
 ██████╗  ██████╗ █████╗ ██████╗ ██╗   ██╗██████╗ ██████╗ ██╗   ██╗
 ██╔══██╗██╔════╝██╔══██╗██╔══██╗██║   ██║██╔══██╗██╔══██╗╚██╗ ██╔╝
 ██████╔╝██║     ███████║██████╔╝██║   ██║██║  ██║██║  ██║ ╚████╔╝
 ██╔══██╗██║     ██╔══██║██╔══██╗██║   ██║██║  ██║██║  ██║  ╚██╔╝
 ██████╔╝╚██████╗██║  ██║██████╔╝╚██████╔╝██████╔╝██████╔╝   ██║
 ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═════╝ ╚═════╝    ╚═╝`

const bannerCompact = "B C A B U D D Y"

// RenderBanner returns the BCABUDDY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 70 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 70 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
