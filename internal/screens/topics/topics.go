// Package topics lists tracked weak topics with their review schedule.
// Topics whose review date has arrived are highlighted at the top of
// their entries.
package topics

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/router"
	"github.com/sauravjha/bcabuddy/internal/screen"
	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/sauravjha/bcabuddy/internal/ui/layout"
	"github.com/sauravjha/bcabuddy/internal/ui/theme"
	"github.com/sauravjha/bcabuddy/internal/weaktopic"
)

type topicsLoadedMsg struct {
	Topics []store.WeakTopic
	Err    error
}

// TopicsScreen displays the weak topic review list.
type TopicsScreen struct {
	st       *store.Store
	topics   []store.WeakTopic // newest first, as stored
	due      map[string]bool
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates a new TopicsScreen.
func New(st *store.Store) *TopicsScreen {
	return &TopicsScreen{st: st, due: make(map[string]bool)}
}

func (s *TopicsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.st == nil {
			return topicsLoadedMsg{}
		}
		topics, err := s.st.WeakTopics(context.Background())
		if err != nil {
			return topicsLoadedMsg{Err: err}
		}
		return topicsLoadedMsg{Topics: topics}
	}
}

func (s *TopicsScreen) Title() string {
	return "Weak Topics"
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.topics = msg.Topics
			s.due = make(map[string]bool)
			for _, t := range weaktopic.Due(msg.Topics, time.Now()) {
				s.due[t.Key] = true
			}
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
			if s.selected < len(s.topics)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *TopicsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading weak topics...")
	}
	if len(s.topics) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No weak topics tracked yet. They appear after missed questions.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if n := len(s.due); n > 0 {
		header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("⚡ %d due for revision", n))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
		b.WriteString("\n\n")
	}

	now := time.Now()
	visible := (height - 3) / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := start + visible
	if end > len(s.topics) {
		end = len(s.topics)
	}

	for i := start; i < end; i++ {
		t := s.topics[i]

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		topicStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if s.due[t.Key] {
			topicStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
		}
		if i == s.selected {
			topicStyle = topicStyle.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  ·  %s", prefix, t.Subject, t.Topic)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, topicStyle.Render(line)))
		b.WriteString("\n")

		detail := fmt.Sprintf("    %s · every %dd · %s", dueLabel(t, now), t.LastInterval, t.Source)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
		b.WriteString("\n")
	}

	return b.String()
}

// dueLabel renders the review date relative to now.
func dueLabel(t store.WeakTopic, now time.Time) string {
	if !t.DueAt.After(now) {
		return "due now"
	}
	days := int(t.DueAt.Sub(now).Hours()/24) + 1
	if days == 1 {
		return "due tomorrow"
	}
	return fmt.Sprintf("due in %d days", days)
}
