// Package welcome renders the splash animation shown on startup: the
// crest fades in, sparkles start, then the banner and tagline appear
// and a keypress hands over to the home screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/router"
	"github.com/sauravjha/bcabuddy/internal/screen"
	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

const (
	tickEvery = 100 * time.Millisecond
	sparkleAt = 400 * time.Millisecond
	bannerAt  = 1200 * time.Millisecond
	animDone  = 2000 * time.Millisecond
)

const crestArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ▣ ▣ │  │
  │  │ ═══ │  │
  │  ├─────┤  │
  │  │ BCA │  │
  │  └─────┘  │
  ╰───────────╯`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// WelcomeScreen plays the splash animation, then swaps itself for the
// home screen on the first keypress after the animation finishes.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the splash screen. homeFactory is called once, at
// transition time, so the home screen sees fresh store state.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < animDone {
			w.elapsed += tickEvery
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Keys pressed mid-animation are ignored.
		if w.elapsed >= animDone {
			return w, w.toHome()
		}
	}

	return w, nil
}

// toHome builds the home screen and emits the replace message, at most
// once no matter how many keys arrive.
func (w *WelcomeScreen) toHome() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true

	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderCrest()}

	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Your BCA exam companion")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")

		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// renderCrest draws the crest, with sparkles in alternating colors once
// the first phase has passed.
func (w *WelcomeScreen) renderCrest() string {
	crest := lipgloss.NewStyle().Foreground(theme.Primary).Render(crestArt)
	if w.elapsed < sparkleAt {
		return crest
	}

	frame := sparkleFrames[w.tickCount%len(sparkleFrames)]
	warm := lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
	cool := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)

	lines := strings.Split(crest, "\n")
	for _, p := range []struct {
		row         int
		left, right string
	}{
		{0, warm, cool},
		{3, cool, warm},
		{6, warm, cool},
	} {
		if p.row < len(lines) {
			lines[p.row] = p.left + "  " + lines[p.row] + "  " + p.right
		}
	}
	return strings.Join(lines, "\n")
}
