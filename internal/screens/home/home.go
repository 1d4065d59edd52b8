package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sauravjha/bcabuddy/internal/examgen"
	"github.com/sauravjha/bcabuddy/internal/grading"
	"github.com/sauravjha/bcabuddy/internal/router"
	"github.com/sauravjha/bcabuddy/internal/screen"
	examscreen "github.com/sauravjha/bcabuddy/internal/screens/exam"
	"github.com/sauravjha/bcabuddy/internal/screens/history"
	"github.com/sauravjha/bcabuddy/internal/screens/topics"
	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/sauravjha/bcabuddy/internal/ui/components"
	"github.com/sauravjha/bcabuddy/internal/weaktopic"
)

// HomeScreen is the main dashboard of the application.
type HomeScreen struct {
	menu         components.Menu
	menuLabels   []string
	attemptCount int
	lastScore    float64
	hasScore     bool
	topicsDue    int
	hasSource    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The dashboard stats (attempt count, last
// score, due weak topics) are loaded from the store once at construction.
func New(source examgen.Source, grader grading.Grader, st *store.Store) *HomeScreen {
	var attemptCount, topicsDue int
	var lastScore float64
	var hasScore bool

	if st != nil {
		ctx := context.Background()
		if attempts, err := st.Attempts(ctx); err == nil {
			attemptCount = len(attempts)
			if len(attempts) > 0 {
				// Attempts are stored oldest first.
				lastScore = attempts[len(attempts)-1].PercentTotal
				hasScore = true
			}
		}
		if all, err := st.WeakTopics(ctx); err == nil {
			topicsDue = len(weaktopic.Due(all, time.Now()))
		}
	}

	menuLabels := []string{"MOCK EXAM", "HISTORY", "WEAK TOPICS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if source == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: examscreen.New(source, grader, st),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topics.New(st)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		menuLabels:   menuLabels,
		attemptCount: attemptCount,
		lastScore:    lastScore,
		hasScore:     hasScore,
		topicsDue:    topicsDue,
		hasSource:    source != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	sections = append(sections, renderStatsBar(
		h.attemptCount, h.lastScore, h.hasScore, h.topicsDue, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenuButtons(
			h.menuLabels, h.menu.Selected, cw))
	}

	if !h.hasSource {
		sections = append(sections, renderSourceBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.PanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
