// Package results shows the finalized attempt: statistics, graded
// subjective answers, and the mistake review list.
package results

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	examcore "github.com/sauravjha/bcabuddy/internal/exam"
	"github.com/sauravjha/bcabuddy/internal/grading"
	"github.com/sauravjha/bcabuddy/internal/router"
	"github.com/sauravjha/bcabuddy/internal/screen"
	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/sauravjha/bcabuddy/internal/ui/layout"
	"github.com/sauravjha/bcabuddy/internal/weaktopic"
)

// Config carries everything the results screen needs from the finished
// session.
type Config struct {
	Outcome   *examcore.Outcome
	Questions []examcore.Question
	Responses map[int]string
	Duration  int

	Grader grading.Grader
	Store  *store.Store

	// Retake builds a fresh exam screen for the same stack position.
	Retake func() screen.Screen
}

// gradeDoneMsg reports one graded subjective answer. Pos is the position
// within the pending list, Index the question index.
type gradeDoneMsg struct {
	Pos    int
	Index  int
	Result *grading.Result
	Err    error
}

// gradeSavedMsg reports background persistence of a graded item.
type gradeSavedMsg struct {
	Err error
}

// gradedAnswer pairs a question index with its grade.
type gradedAnswer struct {
	Index  int
	Result *grading.Result
}

// ResultsScreen displays the attempt outcome and drives grading of the
// attempted subjective answers, one at a time.
type ResultsScreen struct {
	cfg Config

	graded   []gradedAnswer
	grading  bool
	gradePos int
	gradeErr string

	reviewMode   bool
	reviewOffset int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a finalized outcome.
func New(cfg Config) *ResultsScreen {
	return &ResultsScreen{cfg: cfg}
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.cfg.Grader != nil && len(r.cfg.Outcome.PendingGrading) > 0 {
		r.grading = true
		return r.gradeCmd(0)
	}
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

// Status returns the subject/semester badge for the header.
func (r *ResultsScreen) Status() string {
	return fmt.Sprintf("%s · Sem %d", r.cfg.Outcome.Subject, r.cfg.Outcome.Semester)
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.reviewMode {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Scroll"},
			{Key: "R", Description: "Back to summary"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review mistakes"},
		{Key: "T", Description: "Retake"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradeDoneMsg:
		return r.handleGraded(msg)

	case gradeSavedMsg:
		if msg.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save grade: %v\n", msg.Err)
		}
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *ResultsScreen) handleGraded(msg gradeDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Abort the remaining answers but keep the grades already in.
		r.grading = false
		r.gradeErr = fmt.Sprintf("grading stopped: %v", msg.Err)
		return r, nil
	}

	r.graded = append(r.graded, gradedAnswer{Index: msg.Index, Result: msg.Result})
	saveCmd := r.persistGrade(msg.Index, msg.Result)

	next := msg.Pos + 1
	if next < len(r.cfg.Outcome.PendingGrading) {
		r.gradePos = next
		return r, tea.Batch(saveCmd, r.gradeCmd(next))
	}

	r.grading = false
	return r, saveCmd
}

func (r *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return r, func() tea.Msg { return router.PopScreenMsg{} }

	case "r", "R":
		r.reviewMode = !r.reviewMode
		r.reviewOffset = 0
		return r, nil

	case "t", "T":
		if r.reviewMode || r.cfg.Retake == nil {
			return r, nil
		}
		next := r.cfg.Retake()
		return r, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case "up", "k":
		if r.reviewMode && r.reviewOffset > 0 {
			r.reviewOffset--
		}
		return r, nil

	case "down", "j":
		if r.reviewMode {
			r.reviewOffset++
		}
		return r, nil
	}
	return r, nil
}

// gradeCmd grades the pending answer at the given position.
func (r *ResultsScreen) gradeCmd(pos int) tea.Cmd {
	idx := r.cfg.Outcome.PendingGrading[pos]
	q := r.cfg.Questions[idx]
	req := grading.Request{
		Semester: r.cfg.Outcome.Semester,
		Subject:  r.cfg.Outcome.Subject,
		Question: q.Text,
		Answer:   r.cfg.Responses[idx],
		MaxMarks: q.MaxMarks,
	}
	grader := r.cfg.Grader
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		res, err := grader.Grade(ctx, req)
		return gradeDoneMsg{Pos: pos, Index: idx, Result: res, Err: err}
	}
}

// persistGrade stores an imperfectly graded answer as a review item and
// records its topic as weak. Full marks leave nothing to review.
func (r *ResultsScreen) persistGrade(idx int, res *grading.Result) tea.Cmd {
	st := r.cfg.Store
	if st == nil {
		return nil
	}
	out := r.cfg.Outcome
	q := r.cfg.Questions[idx]
	answer := r.cfg.Responses[idx]
	return func() tea.Msg {
		if res.Score >= float64(res.MaxMarks) {
			return gradeSavedMsg{}
		}
		ctx := context.Background()

		err := st.UpsertReviewItem(ctx, store.ReviewItem{
			ID:                out.SubjectiveReviewID(idx),
			Type:              "subjective",
			Subject:           out.Subject,
			Semester:          out.Semester,
			Question:          q.Text,
			UserAnswer:        answer,
			SupremeAnswer:     res.ModelAnswer,
			Feedback:          res.Feedback,
			MissedPoints:      res.MissedPoints,
			SuggestedKeywords: res.SuggestedKeywords,
			Score:             res.Score,
			MaxMarks:          res.MaxMarks,
			At:                out.When,
		})

		scheduler := weaktopic.NewScheduler(st)
		if _, werr := scheduler.Record(ctx, out.Subject, q.Text, "exam-subjective", out.When); werr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record weak topic: %v\n", werr)
		}

		return gradeSavedMsg{Err: err}
	}
}

// Remark returns the headline remark for a score percentage.
func Remark(percent float64) string {
	switch {
	case percent >= 90:
		return "Outstanding. You're ready for the real thing."
	case percent >= 75:
		return "Strong performance. Polish the weak spots."
	case percent >= 60:
		return "Good effort. Review your mistakes below."
	case percent >= 40:
		return "Needs work. Focus on your weak topics."
	default:
		return "Don't panic. Start with the basics and retake soon."
	}
}
