package exam

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	examcore "github.com/sauravjha/bcabuddy/internal/exam"
	"github.com/sauravjha/bcabuddy/internal/examgen"
	"github.com/sauravjha/bcabuddy/internal/grading"
	"github.com/sauravjha/bcabuddy/internal/router"
	"github.com/sauravjha/bcabuddy/internal/screen"
	"github.com/sauravjha/bcabuddy/internal/screens/results"
	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/sauravjha/bcabuddy/internal/ui/components"
	"github.com/sauravjha/bcabuddy/internal/ui/layout"
	"github.com/sauravjha/bcabuddy/internal/weaktopic"
)

// questionCounts are the selectable paper sizes.
var questionCounts = []int{15, 30, 50}

// setup form focus positions.
const (
	focusSemester = iota
	focusSubject
	focusCount
	focusStart
)

// ExamScreen drives one mock exam session from setup through submission.
type ExamScreen struct {
	state  *examcore.State
	source examgen.Source
	grader grading.Grader
	st     *store.Store

	// Setup form.
	semInput  components.TextInput
	subjInput components.TextInput
	countIdx  int
	focus     int
	setupErr  string

	// Active-phase answer widget for the current question. widgetFor
	// tracks which question index it was built for.
	picker    components.OptionPicker
	answer    components.AnswerArea
	widgetFor int

	tickGen      int
	spinnerTicks int

	confirmSubmit bool
	confirmQuit   bool

	// Go-to prompt: ctrl+g opens it, digits accumulate, enter jumps.
	gotoActive bool
	gotoBuf    string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an exam screen in the setup phase.
func New(source examgen.Source, grader grading.Grader, st *store.Store) *ExamScreen {
	return &ExamScreen{
		state:     examcore.NewState(),
		source:    source,
		grader:    grader,
		st:        st,
		semInput:  components.NewTextInput("1", true, 2),
		subjInput: components.NewTextInput("e.g. Operating Systems", false, 60),
		widgetFor: -1,
	}
}

func (e *ExamScreen) Init() tea.Cmd {
	return e.semInput.Init()
}

func (e *ExamScreen) Title() string {
	switch e.state.Phase {
	case examcore.PhaseActive:
		return "Mock Exam"
	default:
		return "Exam Setup"
	}
}

// Status returns the subject/semester badge for the header once setup is
// locked in.
func (e *ExamScreen) Status() string {
	if e.state.Phase == examcore.PhaseSetup || e.state.Subject == "" {
		return ""
	}
	return fmt.Sprintf("%s · Sem %d", e.state.Subject, e.state.Semester)
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	switch e.state.Phase {
	case examcore.PhaseSetup:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case examcore.PhaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case examcore.PhaseActive:
		if e.confirmQuit || e.confirmSubmit {
			return []layout.KeyHint{
				{Key: "Y", Description: "Yes"},
				{Key: "N", Description: "No"},
			}
		}
		if e.state.Paused {
			return []layout.KeyHint{
				{Key: "any key", Description: "Resume"},
			}
		}
		if e.gotoActive {
			return []layout.KeyHint{
				{Key: "0-9", Description: "Question number"},
				{Key: "Enter", Description: "Jump"},
				{Key: "Esc", Description: "Cancel"},
			}
		}
		return []layout.KeyHint{
			{Key: "^N/^P", Description: "Next/Prev"},
			{Key: "^G", Description: "Go to"},
			{Key: "^F", Description: "Flag"},
			{Key: "^O", Description: "Pause"},
			{Key: "^S", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return e.handleLoaded(msg)

	case timerTickMsg:
		return e.handleTick(msg)

	case spinnerTickMsg:
		if e.state.Phase == examcore.PhaseLoading {
			e.spinnerTicks++
			return e, spinnerCmd()
		}
		return e, nil

	case attemptSavedMsg:
		if msg.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save attempt: %v\n", msg.Err)
		}
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	// Non-key messages (cursor blinks) still reach the focused widget.
	return e, e.forward(msg)
}

// forward routes a message to whichever text widget is focused.
func (e *ExamScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch e.state.Phase {
	case examcore.PhaseSetup:
		switch e.focus {
		case focusSemester:
			e.semInput, cmd = e.semInput.Update(msg)
		case focusSubject:
			e.subjInput, cmd = e.subjInput.Update(msg)
		}
	case examcore.PhaseActive:
		if e.subjectiveActive() && !e.state.Paused && !e.confirmQuit && !e.confirmSubmit {
			e.answer, cmd = e.answer.Update(msg)
			e.state.SetResponse(e.state.Current, e.answer.Value())
		}
	}
	return cmd
}

func (e *ExamScreen) subjectiveActive() bool {
	idx := e.state.Current
	return idx >= 0 && idx < len(e.state.Questions) &&
		e.state.Questions[idx].Kind == examcore.KindSubjective
}

func (e *ExamScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if e.state.Phase != examcore.PhaseLoading {
		return e, nil
	}
	if msg.Err != nil {
		e.state.FailLoad(msg.Err)
		return e, nil
	}
	if !e.state.StartWith(msg.Questions) {
		return e, nil
	}
	e.buildWidget()
	e.tickGen++
	return e, tea.Batch(tickCmd(e.tickGen), e.widgetInit())
}

func (e *ExamScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != e.tickGen || e.state.Finalized() {
		return e, nil
	}
	if e.state.Phase != examcore.PhaseActive || e.state.Paused {
		return e, nil
	}
	if e.state.Tick() {
		// Time up: submission is unconditional.
		return e, e.finalize()
	}
	return e, tickCmd(e.tickGen)
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch e.state.Phase {
	case examcore.PhaseSetup:
		return e.handleSetupKey(msg)
	case examcore.PhaseLoading:
		if msg.String() == "esc" {
			e.state.Phase = examcore.PhaseSetup
		}
		return e, nil
	case examcore.PhaseError:
		return e.handleErrorKey(msg)
	case examcore.PhaseActive:
		return e.handleActiveKey(msg)
	}
	return e, nil
}

func (e *ExamScreen) handleSetupKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return e, func() tea.Msg { return router.PopScreenMsg{} }

	case "tab", "down":
		e.focus = (e.focus + 1) % 4
		return e, e.focusCmd()

	case "shift+tab", "up":
		e.focus = (e.focus + 3) % 4
		return e, e.focusCmd()

	case "left", "h":
		if e.focus == focusCount {
			e.countIdx = (e.countIdx + len(questionCounts) - 1) % len(questionCounts)
			return e, nil
		}

	case "right", "l":
		if e.focus == focusCount {
			e.countIdx = (e.countIdx + 1) % len(questionCounts)
			return e, nil
		}

	case "enter":
		if e.focus == focusStart {
			return e, e.startExam()
		}
		e.focus++
		return e, e.focusCmd()
	}

	return e, e.forward(msg)
}

func (e *ExamScreen) focusCmd() tea.Cmd {
	switch e.focus {
	case focusSemester:
		return e.semInput.Init()
	case focusSubject:
		return e.subjInput.Init()
	}
	return nil
}

// startExam validates the form, locks the parameters in, and kicks off
// the fetch.
func (e *ExamScreen) startExam() tea.Cmd {
	semester, err := e.semInput.NumericValue()
	if err != nil || semester < 1 || semester > 8 {
		e.setupErr = "Enter a semester between 1 and 8."
		e.focus = focusSemester
		return e.focusCmd()
	}

	subject := strings.TrimSpace(e.subjInput.Value())
	if subject == "" {
		e.setupErr = "Enter a subject name."
		e.focus = focusSubject
		return e.focusCmd()
	}

	e.setupErr = ""
	e.state.Begin(semester, subject, questionCounts[e.countIdx])
	e.spinnerTicks = 0
	return tea.Batch(e.fetchQuestions(), spinnerCmd())
}

func (e *ExamScreen) handleErrorKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r", "R", "enter":
		e.state.Begin(e.state.Semester, e.state.Subject, e.state.QuestionCount)
		e.spinnerTicks = 0
		return e, tea.Batch(e.fetchQuestions(), spinnerCmd())
	case "esc":
		e.state.Phase = examcore.PhaseSetup
		return e, e.focusCmd()
	}
	return e, nil
}

func (e *ExamScreen) handleActiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Quit confirmation: leaving before submission discards the run
	// entirely, nothing is saved.
	if e.confirmQuit {
		switch key {
		case "y", "Y":
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			e.confirmQuit = false
		}
		return e, nil
	}

	if e.confirmSubmit {
		switch key {
		case "y", "Y", "enter":
			e.confirmSubmit = false
			return e, e.finalize()
		case "n", "N", "esc":
			e.confirmSubmit = false
		}
		return e, nil
	}

	if e.state.Paused {
		e.state.Paused = false
		e.tickGen++
		return e, tickCmd(e.tickGen)
	}

	if e.gotoActive {
		return e.handleGotoKey(key)
	}

	switch key {
	case "esc":
		e.confirmQuit = true
		return e, nil
	case "ctrl+g":
		e.gotoActive = true
		e.gotoBuf = ""
		return e, nil
	case "ctrl+s":
		e.confirmSubmit = true
		return e, nil
	case "ctrl+o":
		e.state.Paused = true
		return e, nil
	case "ctrl+f":
		e.state.ToggleMark(e.state.Current)
		return e, nil
	case "ctrl+n":
		return e, e.navigate(e.state.Current + 1)
	case "ctrl+p":
		return e, e.navigate(e.state.Current - 1)
	}

	if e.subjectiveActive() {
		return e, e.forward(msg)
	}

	// MCQ extras: plain navigation and marking don't clash with the
	// option picker's keys.
	switch key {
	case "right", "n":
		return e, e.navigate(e.state.Current + 1)
	case "left", "p":
		return e, e.navigate(e.state.Current - 1)
	case "m":
		e.state.ToggleMark(e.state.Current)
		return e, nil
	}

	var changed bool
	e.picker, changed = e.picker.Update(msg)
	if changed {
		e.state.SetResponse(e.state.Current, e.picker.Value())
	}
	return e, nil
}

// handleGotoKey collects a question number for a direct jump. Out of
// range or empty input just closes the prompt.
func (e *ExamScreen) handleGotoKey(key string) (screen.Screen, tea.Cmd) {
	switch {
	case key == "esc" || key == "ctrl+g":
		e.gotoActive = false
		e.gotoBuf = ""
	case key == "enter":
		buf := e.gotoBuf
		e.gotoActive = false
		e.gotoBuf = ""
		if n, err := strconv.Atoi(buf); err == nil {
			return e, e.navigate(n - 1)
		}
	case key == "backspace":
		if len(e.gotoBuf) > 0 {
			e.gotoBuf = e.gotoBuf[:len(e.gotoBuf)-1]
		}
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		if len(e.gotoBuf) < 3 {
			e.gotoBuf += key
		}
	}
	return e, nil
}

// navigate moves to another question and rebuilds the answer widget.
func (e *ExamScreen) navigate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(e.state.Questions) {
		return nil
	}
	e.state.Navigate(idx)
	e.buildWidget()
	return e.widgetInit()
}

// buildWidget constructs the answer widget for the current question,
// restoring any recorded response.
func (e *ExamScreen) buildWidget() {
	idx := e.state.Current
	if idx < 0 || idx >= len(e.state.Questions) {
		return
	}
	q := e.state.Questions[idx]
	prior := e.state.Responses[idx]

	if q.Kind == examcore.KindSubjective {
		e.answer = components.NewAnswerArea(prior, 70, 8)
	} else {
		chosen := -1
		for i, opt := range q.Options {
			if opt == prior {
				chosen = i
				break
			}
		}
		e.picker = components.NewOptionPicker(q.Options, chosen)
	}
	e.widgetFor = idx
}

func (e *ExamScreen) widgetInit() tea.Cmd {
	if e.subjectiveActive() {
		return e.answer.Init()
	}
	return e.picker.Init()
}

// finalize submits the exam: computes the outcome once, persists the
// attempt and its review items in the background, and moves to results.
func (e *ExamScreen) finalize() tea.Cmd {
	out := e.state.Finalize(time.Now())
	if out == nil {
		return nil
	}

	resultsScreen := results.New(results.Config{
		Outcome:   out,
		Questions: e.state.Questions,
		Responses: e.state.Responses,
		Duration:  e.state.DurationMinutes,
		Grader:    e.grader,
		Store:     e.st,
		Retake: func() screen.Screen {
			return New(e.source, e.grader, e.st)
		},
	})

	return tea.Batch(
		e.persistAttempt(out),
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: resultsScreen}
		},
	)
}

// persistAttempt writes the attempt record, the review items for every
// miss, and their weak topic schedule entries. Failures are warnings,
// never fatal: the results are already on screen.
func (e *ExamScreen) persistAttempt(out *examcore.Outcome) tea.Cmd {
	st := e.st
	duration := e.state.DurationMinutes
	return func() tea.Msg {
		if st == nil {
			return attemptSavedMsg{}
		}
		ctx := context.Background()

		err := st.AppendAttempt(ctx, store.Attempt{
			PercentTotal:    out.Stats.PercentTotal,
			Correct:         out.Stats.Correct,
			Incorrect:       out.Stats.Incorrect,
			Skipped:         out.Stats.Skipped,
			Total:           out.Stats.TotalQuestions(),
			Subject:         out.Subject,
			Semester:        out.Semester,
			DurationMinutes: duration,
			At:              out.When,
		})

		scheduler := weaktopic.NewScheduler(st)
		for _, m := range out.Mistakes {
			item := store.ReviewItem{
				Subject:    out.Subject,
				Semester:   out.Semester,
				Question:   m.Question,
				UserAnswer: m.UserAnswer,
				Tip:        m.Tip,
				At:         out.When,
			}
			// A skipped subjective answer is still a miss: it feeds the
			// scheduler like a wrong MCQ, just tagged with its own source.
			source := "exam-subjective"
			if m.Kind == examcore.KindMCQ {
				item.ID = out.MCQReviewID(m.Index)
				item.Type = "mcq"
				item.SupremeAnswer = m.CorrectAnswer
				source = "exam-mcq"
			} else {
				item.ID = out.SubjectiveReviewID(m.Index)
				item.Type = "subjective"
			}
			if uerr := st.UpsertReviewItem(ctx, item); uerr != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to save review item: %v\n", uerr)
			}
			if _, werr := scheduler.Record(ctx, out.Subject, m.Question, source, out.When); werr != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record weak topic: %v\n", werr)
			}
		}

		return attemptSavedMsg{Err: err}
	}
}

// fetchQuestions asks the source for a fresh paper.
func (e *ExamScreen) fetchQuestions() tea.Cmd {
	mcq, subjective := examcore.CountSplit(e.state.QuestionCount)
	req := examgen.Request{
		Semester:        e.state.Semester,
		Subject:         e.state.Subject,
		MCQCount:        mcq,
		SubjectiveCount: subjective,
	}
	source := e.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		questions, err := source.Fetch(ctx, req)
		return questionsLoadedMsg{Questions: questions, Err: err}
	}
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Gen: gen}
	})
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
