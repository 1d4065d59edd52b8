package results

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	examcore "github.com/sauravjha/bcabuddy/internal/exam"
	"github.com/sauravjha/bcabuddy/internal/ui/components"
	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

func (r *ResultsScreen) View(width, height int) string {
	if r.reviewMode {
		return r.renderReview(width, height)
	}
	return r.renderSummary(width, height)
}

func (r *ResultsScreen) renderSummary(width, height int) string {
	stats := r.cfg.Outcome.Stats

	var b strings.Builder

	percent := lipgloss.NewStyle().
		Foreground(percentColor(stats.PercentTotal)).
		Bold(true).
		Render(fmt.Sprintf("%.0f%%", stats.PercentTotal))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(percent))
	b.WriteString("\n")

	remark := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Remark(stats.PercentTotal))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(remark))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", stats.PercentTotal/100, false, min(width-10, 48))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderStatsCard(stats)))
	b.WriteString("\n\n")

	if line := r.renderGradingStatus(); line != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line))
		b.WriteString("\n\n")
	}

	if n := len(r.cfg.Outcome.Mistakes) + len(r.graded); n > 0 {
		note := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d items to review — press R", n))
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(note))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (r *ResultsScreen) renderStatsCard(stats examcore.Stats) string {
	row := func(label, value string, c color.Color) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Width(22).Render(label) +
			lipgloss.NewStyle().Foreground(c).Bold(true).Render(value)
	}

	lines := []string{
		row("Correct", fmt.Sprintf("%d", stats.Correct), theme.Success),
		row("Incorrect", fmt.Sprintf("%d", stats.Incorrect), theme.Error),
		row("Skipped", fmt.Sprintf("%d", stats.Skipped), theme.Warning),
	}
	if stats.Attempted > 0 {
		lines = append(lines, row("Of attempted", fmt.Sprintf("%.0f%%", stats.PercentAttempted), theme.Text))
	}
	if stats.SubjectiveTotal > 0 {
		lines = append(lines, row("Subjective answered",
			fmt.Sprintf("%d/%d", stats.SubjectiveAttempted, stats.SubjectiveTotal), theme.Text))
	}

	return components.PanelCard(strings.Join(lines, "\n"), 40)
}

func (r *ResultsScreen) renderGradingStatus() string {
	pending := len(r.cfg.Outcome.PendingGrading)
	if pending == 0 {
		return ""
	}
	if r.grading {
		return lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("Grading answer %d of %d...", r.gradePos+1, pending))
	}
	if r.gradeErr != "" {
		return lipgloss.NewStyle().Foreground(theme.Error).Render(r.gradeErr)
	}
	if r.cfg.Grader == nil {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Subjective answers not graded (no grader configured).")
	}

	var total, earned float64
	for _, g := range r.graded {
		total += float64(g.Result.MaxMarks)
		earned += g.Result.Score
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Subjective: %.1f / %.0f marks", earned, total))
}

func (r *ResultsScreen) renderReview(width, height int) string {
	lines := r.reviewLines(min(width-6, 76))

	// Simple scroll window over the assembled lines.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if r.reviewOffset > maxOffset {
		r.reviewOffset = maxOffset
	}
	end := r.reviewOffset + visible
	if end > len(lines) {
		end = len(lines)
	}

	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Review (%d items)", len(r.cfg.Outcome.Mistakes)+len(r.graded)))

	return header + "\n" + strings.Join(lines[r.reviewOffset:end], "\n")
}

// reviewLines flattens mistakes and graded answers into display lines.
func (r *ResultsScreen) reviewLines(wrap int) []string {
	qStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(wrap).PaddingLeft(2)
	userStyle := lipgloss.NewStyle().Foreground(theme.Error).Width(wrap).PaddingLeft(4)
	correctStyle := lipgloss.NewStyle().Foreground(theme.Success).Width(wrap).PaddingLeft(4)
	tipStyle := lipgloss.NewStyle().Foreground(theme.Accent).Width(wrap).PaddingLeft(4)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(wrap).PaddingLeft(4)

	var lines []string
	push := func(rendered string) {
		lines = append(lines, strings.Split(rendered, "\n")...)
	}

	for _, m := range r.cfg.Outcome.Mistakes {
		push(qStyle.Render(fmt.Sprintf("Q%d. %s", m.Index+1, m.Question)))
		push(userStyle.Render("Your answer: " + m.UserAnswer))
		if m.CorrectAnswer != "" {
			push(correctStyle.Render("Correct: " + m.CorrectAnswer))
		}
		if m.Tip != "" {
			push(tipStyle.Render("Tip: " + m.Tip))
		}
		lines = append(lines, "")
	}

	for _, g := range r.graded {
		q := r.cfg.Questions[g.Index]
		res := g.Result
		push(qStyle.Render(fmt.Sprintf("Q%d. %s", g.Index+1, q.Text)))
		push(correctStyle.Render(fmt.Sprintf("Score: %.1f / %d", res.Score, res.MaxMarks)))
		if res.Feedback != "" {
			push(dimStyle.Render(res.Feedback))
		}
		for _, p := range res.MissedPoints {
			push(userStyle.Render("• missed: " + p))
		}
		if len(res.SuggestedKeywords) > 0 {
			push(tipStyle.Render("Keywords: " + strings.Join(res.SuggestedKeywords, ", ")))
		}
		if res.ModelAnswer != "" {
			push(dimStyle.Render("Model answer: " + res.ModelAnswer))
		}
		lines = append(lines, "")
	}

	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("Nothing to review. Full marks on every question."))
	}
	return lines
}

func percentColor(percent float64) color.Color {
	switch {
	case percent >= 75:
		return theme.Success
	case percent >= 40:
		return theme.Warning
	default:
		return theme.Error
	}
}
