package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/examgen"
	"github.com/sauravjha/bcabuddy/internal/grading"
	"github.com/sauravjha/bcabuddy/internal/router"
	"github.com/sauravjha/bcabuddy/internal/screen"
	examscreen "github.com/sauravjha/bcabuddy/internal/screens/exam"
	"github.com/sauravjha/bcabuddy/internal/screens/home"
	"github.com/sauravjha/bcabuddy/internal/screens/welcome"
	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/sauravjha/bcabuddy/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Source examgen.Source
	Grader grading.Grader
	Store  *store.Store

	// SkipIntro starts directly on the home screen.
	SkipIntro bool

	// StartExam opens the exam setup immediately, on top of home.
	StartExam bool
}

// statusProvider lets a screen put a badge in the header's right slot.
type statusProvider interface {
	Status() string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Source, opts.Grader, opts.Store)
	}

	var first screen.Screen
	if opts.SkipIntro || opts.StartExam {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}
	r := router.New(first)
	if opts.StartExam {
		r.Push(examscreen.New(opts.Source, opts.Grader, opts.Store))
	}
	return AppModel{
		router: r,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is a screen-level key (setup back, quit confirm, review
		// exit), so only ctrl+c is handled globally.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// The welcome splash owns the whole terminal; no chrome.
	if active != nil && active.Title() == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(statusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
