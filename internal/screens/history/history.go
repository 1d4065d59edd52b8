// Package history lists past exam attempts, newest first, with a trend
// marker against the previous attempt in the same subject.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/router"
	"github.com/sauravjha/bcabuddy/internal/screen"
	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/sauravjha/bcabuddy/internal/ui/layout"
	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// trend describes the score movement against the previous attempt in the
// same subject.
type trend int

const (
	trendNone trend = iota
	trendUp
	trendDown
	trendFlat
)

// HistoryScreen displays past attempts.
type HistoryScreen struct {
	st       *store.Store
	attempts []store.Attempt // newest first
	trends   []trend
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{st: st}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.st == nil {
			return historyLoadedMsg{}
		}
		attempts, err := s.st.Attempts(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: attempts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts, s.trends = orderWithTrends(msg.Attempts)
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

// orderWithTrends reverses the stored oldest-first log into newest-first
// display order and computes each attempt's trend against the previous
// attempt in the same subject.
func orderWithTrends(attempts []store.Attempt) ([]store.Attempt, []trend) {
	n := len(attempts)
	reversed := make([]store.Attempt, n)
	trends := make([]trend, n)

	for i, a := range attempts {
		display := n - 1 - i
		reversed[display] = a

		trends[display] = trendNone
		for j := i - 1; j >= 0; j-- {
			if attempts[j].Subject != a.Subject {
				continue
			}
			switch {
			case a.PercentTotal > attempts[j].PercentTotal:
				trends[display] = trendUp
			case a.PercentTotal < attempts[j].PercentTotal:
				trends[display] = trendDown
			default:
				trends[display] = trendFlat
			}
			break
		}
	}
	return reversed, trends
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take your first mock exam!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Scroll window keeping the selection visible.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := start + visible
	if end > len(s.attempts) {
		end = len(s.attempts)
	}

	for i := start; i < end; i++ {
		a := s.attempts[i]
		dateStr := a.At.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  Sem %d  %-28s %3.0f%%  %d✓ %d✗ %d–  %dm",
			prefix, dateStr, a.Semester, truncate(a.Subject, 28),
			a.PercentTotal, a.Correct, a.Incorrect, a.Skipped, a.DurationMinutes)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)+trendMarker(s.trends[i])))
		b.WriteString("\n")
	}

	return b.String()
}

func trendMarker(t trend) string {
	switch t {
	case trendUp:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(" ▲")
	case trendDown:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(" ▼")
	case trendFlat:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(" ▬")
	default:
		return "  "
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
