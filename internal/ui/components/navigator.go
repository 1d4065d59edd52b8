package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

// Navigator renders the question palette: one cell per question, colored
// by answered/marked state, with the current question highlighted.
type Navigator struct {
	Total    int
	Current  int
	Answered func(idx int) bool
	Marked   func(idx int) bool
	PerRow   int
}

// NewNavigator creates a navigator over total questions.
func NewNavigator(total, current int, answered, marked func(int) bool) Navigator {
	return Navigator{
		Total:    total,
		Current:  current,
		Answered: answered,
		Marked:   marked,
		PerRow:   10,
	}
}

// View renders the palette grid.
func (n Navigator) View() string {
	if n.Total == 0 {
		return ""
	}

	var rows []string
	var row []string
	for i := 0; i < n.Total; i++ {
		cell := fmt.Sprintf(" %2d ", i+1)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case n.Marked != nil && n.Marked(i):
			style = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
		case n.Answered != nil && n.Answered(i):
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if i == n.Current {
			style = style.Reverse(true).Bold(true)
		}

		row = append(row, style.Render(cell))
		if len(row) == n.PerRow {
			rows = append(rows, strings.Join(row, ""))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, ""))
	}

	legend := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		"answered ") + lipgloss.NewStyle().Foreground(theme.Success).Render("■") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  marked ") +
		lipgloss.NewStyle().Foreground(theme.Warning).Render("■")

	return strings.Join(rows, "\n") + "\n" + legend
}
