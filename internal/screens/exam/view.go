package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	examcore "github.com/sauravjha/bcabuddy/internal/exam"
	"github.com/sauravjha/bcabuddy/internal/ui/components"
	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (e *ExamScreen) View(width, height int) string {
	switch e.state.Phase {
	case examcore.PhaseSetup:
		return e.renderSetup(width, height)
	case examcore.PhaseLoading:
		return e.renderLoading(width, height)
	case examcore.PhaseError:
		return e.renderLoadError(width, height)
	case examcore.PhaseActive:
		return e.renderActive(width, height)
	}
	return ""
}

func (e *ExamScreen) renderSetup(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(18)
	focusedLabel := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Width(18)

	label := func(idx int, text string) string {
		if e.focus == idx {
			return focusedLabel.Render("▸ " + text)
		}
		return labelStyle.Render("  " + text)
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Set up your mock exam"))
	b.WriteString("\n\n")

	b.WriteString(label(focusSemester, "Semester"))
	b.WriteString(e.semInput.View())
	b.WriteString("\n\n")

	b.WriteString(label(focusSubject, "Subject"))
	b.WriteString(e.subjInput.View())
	b.WriteString("\n\n")

	b.WriteString(label(focusCount, "Questions"))
	b.WriteString(e.renderCountPicker())
	b.WriteString("\n")
	duration := examcore.DurationForCount(questionCounts[e.countIdx])
	b.WriteString(labelStyle.Render("  "))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d minutes on the clock", duration)))
	b.WriteString("\n\n")

	start := components.NewButton("START EXAM", e.focus == focusStart, nil)
	b.WriteString(labelStyle.Render("  "))
	b.WriteString(start.View())

	if e.setupErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + e.setupErr))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (e *ExamScreen) renderCountPicker() string {
	var parts []string
	for i, c := range questionCounts {
		text := fmt.Sprintf(" %d ", c)
		if i == e.countIdx {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(text))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(text))
		}
	}
	return strings.Join(parts, " ")
}

func (e *ExamScreen) renderLoading(width, height int) string {
	frame := spinnerFrames[e.spinnerTicks%len(spinnerFrames)]

	spinner := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)
	text := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf(" Preparing your %s paper...", e.state.Subject))
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("this can take a minute")

	content := spinner + text + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (e *ExamScreen) renderLoadError(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render("Could not load questions")
	detail := lipgloss.NewStyle().Foreground(theme.TextDim).
		Width(min(width-8, 70)).
		Render(e.state.LoadErr)
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("[R] Retry    [Esc] Back to setup")

	content := title + "\n\n" + detail + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (e *ExamScreen) renderActive(width, height int) string {
	if e.state.Paused {
		return renderPaused(width, height)
	}
	if e.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	if e.confirmSubmit {
		return e.renderSubmitConfirm(width, height)
	}

	var b strings.Builder

	b.WriteString(e.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	idx := e.state.Current
	q := e.state.Questions[idx]

	header := fmt.Sprintf("Q%d.", idx+1)
	if q.Kind == examcore.KindSubjective {
		header += fmt.Sprintf("  [%d marks]", q.MaxMarks)
	}
	if e.state.Marked[idx] {
		header += "  " + lipgloss.NewStyle().Foreground(theme.Warning).Render("⚑ flagged")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("  " + header))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true).
		PaddingLeft(2)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	if q.Kind == examcore.KindSubjective {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(e.answer.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(e.picker.View()))
	}
	b.WriteString("\n")

	nav := components.NewNavigator(len(e.state.Questions), idx,
		e.state.Answered, func(i int) bool { return e.state.Marked[i] })
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(nav.View()))

	if e.gotoActive {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Foreground(theme.Accent).Bold(true).
			Render("Go to question: " + e.gotoBuf + "▏"))
	}

	return b.String()
}

// renderInfoLine shows progress, answered count, and the countdown.
func (e *ExamScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", e.state.Current+1, len(e.state.Questions)))

	timer := formatClock(e.state.RemainingSec)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	switch {
	case e.state.RemainingSec <= 60:
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case e.state.RemainingSec <= 300:
		timerStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}

	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("answered %d/%d  ", e.state.AnsweredCount(), len(e.state.Questions))) +
		timerStyle.Render("⏱ "+timer)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func renderPaused(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render("⏸  Exam paused")
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("The clock is stopped. Press any key to resume.")
	content := title + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Leave the exam?")
	warning := lipgloss.NewStyle().Foreground(theme.Error).
		Render("Nothing will be saved and this attempt will not count.")
	choices := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("[Y] Leave    [N] Keep going")
	content := title + "\n" + warning + "\n\n" + choices
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (e *ExamScreen) renderSubmitConfirm(width, height int) string {
	answered := e.state.AnsweredCount()
	total := len(e.state.Questions)

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Submit the exam?")

	summary := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d questions answered", answered, total))
	if answered < total {
		summary += "\n" + lipgloss.NewStyle().Foreground(theme.Warning).
			Render(fmt.Sprintf("%d unanswered questions will count as skipped", total-answered))
	}

	choices := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("[Y] Submit    [N] Keep working")

	content := title + "\n\n" + summary + "\n\n" + choices
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
