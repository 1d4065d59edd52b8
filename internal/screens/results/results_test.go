package results

import (
	"context"
	"errors"
	"testing"
	"time"

	examcore "github.com/sauravjha/bcabuddy/internal/exam"
	"github.com/sauravjha/bcabuddy/internal/grading"
	"github.com/sauravjha/bcabuddy/internal/store"
	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

// scriptedGrader returns queued results in order, then errors.
type scriptedGrader struct {
	results []*grading.Result
	errs    []error
	calls   []grading.Request
}

func (g *scriptedGrader) Grade(_ context.Context, req grading.Request) (*grading.Result, error) {
	pos := len(g.calls)
	g.calls = append(g.calls, req)
	if pos < len(g.errs) && g.errs[pos] != nil {
		return nil, g.errs[pos]
	}
	if pos < len(g.results) {
		return g.results[pos], nil
	}
	return nil, errors.New("no scripted result")
}

func testConfig(grader grading.Grader) Config {
	questions := []examcore.Question{
		{Text: "What is an operating system?", Kind: examcore.KindSubjective, MaxMarks: 10},
		{Text: "Explain paging.", Kind: examcore.KindSubjective, MaxMarks: 10},
	}
	return Config{
		Outcome: &examcore.Outcome{
			RunID:          "run1",
			When:           time.Now(),
			Subject:        "Operating Systems",
			Semester:       4,
			PendingGrading: []int{0, 1},
		},
		Questions: questions,
		Responses: map[int]string{
			0: "Software that manages hardware.",
			1: "Memory is divided into fixed pages.",
		},
		Grader: grader,
	}
}

func TestGradingRunsSequentially(t *testing.T) {
	grader := &scriptedGrader{
		results: []*grading.Result{
			{Score: 7, MaxMarks: 10, Feedback: "Decent."},
			{Score: 9, MaxMarks: 10, Feedback: "Strong."},
		},
	}
	r := New(testConfig(grader))

	cmd := r.Init()
	if cmd == nil {
		t.Fatal("expected grading command from Init")
	}
	if !r.grading {
		t.Error("expected grading flag set")
	}

	// First grade completes; only one call so far.
	msg := cmd()
	done, ok := msg.(gradeDoneMsg)
	if !ok {
		t.Fatalf("expected gradeDoneMsg, got %T", msg)
	}
	if len(grader.calls) != 1 {
		t.Fatalf("expected 1 call before first result handled, got %d", len(grader.calls))
	}

	_, cmd = r.Update(done)
	if cmd == nil {
		t.Fatal("expected next grading command")
	}
	if len(r.graded) != 1 {
		t.Fatalf("expected 1 graded answer, got %d", len(r.graded))
	}

	// Run the second grade.
	msg = cmd()
	done, ok = msg.(gradeDoneMsg)
	if !ok {
		t.Fatalf("expected gradeDoneMsg, got %T", msg)
	}
	r.Update(done)

	if len(r.graded) != 2 {
		t.Fatalf("expected 2 graded answers, got %d", len(r.graded))
	}
	if r.grading {
		t.Error("grading flag should be cleared after the last answer")
	}
	if got, want := grader.calls[1].Question, "Explain paging."; got != want {
		t.Errorf("second call question = %q, want %q", got, want)
	}
}

func TestGradingFailureStopsChainKeepsEarlierGrades(t *testing.T) {
	grader := &scriptedGrader{
		results: []*grading.Result{
			{Score: 6, MaxMarks: 10},
			nil,
		},
		errs: []error{nil, errors.New("provider unavailable")},
	}
	r := New(testConfig(grader))

	cmd := r.Init()
	_, cmd = r.Update(cmd())
	_, cmd = r.Update(cmd())

	if cmd != nil {
		// The only remaining command would be a persistence one; with a
		// nil store there is none.
		t.Error("expected no further commands after failure")
	}
	if len(r.graded) != 1 {
		t.Errorf("expected earlier grade kept, got %d", len(r.graded))
	}
	if r.grading {
		t.Error("grading flag should be cleared on failure")
	}
	if r.gradeErr == "" {
		t.Error("expected grading error message")
	}
}

func TestNoGraderSkipsGrading(t *testing.T) {
	cfg := testConfig(nil)
	r := New(cfg)
	if cmd := r.Init(); cmd != nil {
		t.Error("expected no command without a grader")
	}
	if r.grading {
		t.Error("grading flag should not be set without a grader")
	}
}

func TestPersistGradeSkipsFullMarks(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	cfg := testConfig(nil)
	cfg.Store = st
	r := New(cfg)
	ctx := context.Background()

	// Full marks: nothing to review, nothing scheduled.
	msg := r.persistGrade(0, &grading.Result{Score: 10, MaxMarks: 10})()
	if saved, ok := msg.(gradeSavedMsg); !ok || saved.Err != nil {
		t.Fatalf("unexpected message: %#v", msg)
	}
	items, err := st.ReviewItems(ctx)
	if err != nil {
		t.Fatalf("read review items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("review items after full marks = %d, want 0", len(items))
	}
	topics, err := st.WeakTopics(ctx)
	if err != nil {
		t.Fatalf("read weak topics: %v", err)
	}
	if len(topics) != 0 {
		t.Fatalf("weak topics after full marks = %d, want 0", len(topics))
	}

	// An imperfect grade persists both.
	r.persistGrade(1, &grading.Result{Score: 6, MaxMarks: 10, Feedback: "Thin on detail."})()
	items, err = st.ReviewItems(ctx)
	if err != nil {
		t.Fatalf("read review items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("review items after partial marks = %d, want 1", len(items))
	}
	topics, err = st.WeakTopics(ctx)
	if err != nil {
		t.Fatalf("read weak topics: %v", err)
	}
	if len(topics) != 1 {
		t.Fatalf("weak topics after partial marks = %d, want 1", len(topics))
	}
}

func TestPercentColorTiers(t *testing.T) {
	if got := percentColor(80); got != theme.Success {
		t.Errorf("percentColor(80) = %v, want success", got)
	}
	if got := percentColor(50); got != theme.Warning {
		t.Errorf("percentColor(50) = %v, want warning", got)
	}
	if got := percentColor(10); got != theme.Error {
		t.Errorf("percentColor(10) = %v, want error", got)
	}
}

func TestRemarkTiers(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{95, "Outstanding. You're ready for the real thing."},
		{80, "Strong performance. Polish the weak spots."},
		{65, "Good effort. Review your mistakes below."},
		{45, "Needs work. Focus on your weak topics."},
		{10, "Don't panic. Start with the basics and retake soon."},
	}
	for _, c := range cases {
		if got := Remark(c.percent); got != c.want {
			t.Errorf("Remark(%.0f) = %q, want %q", c.percent, got, c.want)
		}
	}
}
