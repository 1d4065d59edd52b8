package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/ui/components"
	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleArtFull = ` ██████╗  ██████╗ █████╗ ██████╗ ██╗   ██╗██████╗ ██████╗ ██╗   ██╗
 ██╔══██╗██╔════╝██╔══██╗██╔══██╗██║   ██║██╔══██╗██╔══██╗╚██╗ ██╔╝
 ██████╔╝██║     ███████║██████╔╝██║   ██║██║  ██║██║  ██║ ╚████╔╝
 ██╔══██╗██║     ██╔══██║██╔══██╗██║   ██║██║  ██║██║  ██║  ╚██╔╝
 ██████╔╝╚██████╗██║  ██║██████╔╝╚██████╔╝██████╔╝██████╔╝   ██║
 ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═════╝ ╚═════╝    ╚═╝`

const titleArtCompact = "B · C · A · B · U · D · D · Y"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleArtCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleArtFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching
// content width: attempts taken, last score, weak topics due.
func renderStatsBar(attempts int, lastScore float64, hasScore bool, topicsDue, cw int, compact bool) string {
	attemptStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dueStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	score := dimStyle.Render("— NO SCORE")
	if hasScore {
		score = scoreStyle.Render(fmt.Sprintf("◆ %d%% LAST", int(lastScore+0.5)))
	}

	var stats string
	if compact {
		compactScore := dimStyle.Render("◆—")
		if hasScore {
			compactScore = scoreStyle.Render(fmt.Sprintf("◆%d%%", int(lastScore+0.5)))
		}
		stats = fmt.Sprintf("%s %s %s",
			attemptStyle.Render(fmt.Sprintf("★%d", attempts)),
			compactScore,
			dueText(topicsDue, true, dueStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			attemptStyle.Render(fmt.Sprintf("★ %d ATTEMPTS", attempts)),
			score,
			dueText(topicsDue, false, dueStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func dueText(due int, compact bool, active, dim lipgloss.Style) string {
	if due == 0 {
		if compact {
			return dim.Render("⚡0")
		}
		return dim.Render("⚡ NONE DUE")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d", due))
	}
	return active.Render(fmt.Sprintf("⚡ %d TOPICS DUE", due))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenuButtons renders each menu item as a fixed-width button.
func renderMenuButtons(items []string, selected, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.PanelButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines for very
// small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Secondary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderSourceBanner renders a warning banner when no question source is
// configured.
func renderSourceBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Warning).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key or backend URL to take exams (see bcabuddy --help)")
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
