package exam

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Phase represents the current phase of an exam session.
type Phase int

const (
	PhaseSetup   Phase = iota // Choosing semester/subject/question count
	PhaseLoading              // Fetching the question set
	PhaseError                // Load failed; retry or exit
	PhaseActive               // Countdown running, accepting input
	PhaseResults              // Finalized; showing statistics and review
)

// State tracks the runtime state of one exam session. It is owned
// exclusively by the exam screen and mutated only on the UI event loop;
// the countdown is a plain value here, decremented by tick messages,
// never a free-running side effect.
type State struct {
	// Setup parameters.
	Subject         string
	Semester        int
	QuestionCount   int
	DurationMinutes int

	// Phase is the current lifecycle phase.
	Phase Phase

	// LoadErr holds the load failure message while Phase == PhaseError.
	LoadErr string

	// Questions is the shuffled, truncated question set for this run.
	Questions []Question

	// Responses maps question index to the student's raw answer. A
	// missing key means not attempted; whitespace-only answers are
	// removed rather than stored.
	Responses map[int]string

	// Marked is the set of question indices flagged for review. Marking
	// is independent of answering.
	Marked map[int]bool

	// Current is the index of the question on screen. The navigator
	// supports random access.
	Current int

	// RemainingSec is the countdown value in seconds.
	RemainingSec int

	// Paused stops the countdown without clearing any state.
	Paused bool

	// RunID is minted on the first finalize and guards idempotence.
	RunID string

	finalized bool
}

// DurationForCount derives the exam duration in minutes from the question
// count via a fixed lookup.
func DurationForCount(count int) int {
	switch count {
	case 15, 30:
		return 45
	case 50:
		return 90
	default:
		return 20
	}
}

// CountSplit derives the default MCQ/subjective request split for a total
// question count: roughly 20% subjective, clamped so at least one MCQ is
// always requested.
func CountSplit(total int) (mcq, subjective int) {
	subjective = int(math.Round(float64(total) * 0.2))
	if subjective > total-1 {
		subjective = total - 1
	}
	if subjective < 0 {
		subjective = 0
	}
	mcq = total - subjective
	if mcq < 1 {
		mcq = 1
	}
	return mcq, subjective
}

// NewState creates a session state in the setup phase.
func NewState() *State {
	return &State{
		Phase:         PhaseSetup,
		QuestionCount: 15,
		Responses:     make(map[int]string),
		Marked:        make(map[int]bool),
	}
}

// Begin locks in the setup parameters and moves to loading.
func (s *State) Begin(semester int, subject string, count int) {
	s.Semester = semester
	s.Subject = subject
	s.QuestionCount = count
	s.DurationMinutes = DurationForCount(count)
	s.Phase = PhaseLoading
	s.LoadErr = ""
}

// StartWith installs the fetched question set, shuffles it, truncates to
// the requested count, seeds the timer and transitions to active. An
// empty set is a load failure, never a zero-question active session.
func (s *State) StartWith(questions []Question) bool {
	if len(questions) == 0 {
		s.Phase = PhaseError
		s.LoadErr = "the question service returned no questions"
		return false
	}

	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > s.QuestionCount {
		shuffled = shuffled[:s.QuestionCount]
	}

	s.Questions = shuffled
	s.Responses = make(map[int]string)
	s.Marked = make(map[int]bool)
	s.Current = 0
	s.RemainingSec = s.DurationMinutes * 60
	s.Paused = false
	s.RunID = ""
	s.finalized = false
	s.Phase = PhaseActive
	return true
}

// FailLoad records a load failure and moves to the retryable error phase.
func (s *State) FailLoad(err error) {
	s.Phase = PhaseError
	if err != nil {
		s.LoadErr = err.Error()
	} else {
		s.LoadErr = "failed to load questions"
	}
}

// SetResponse records the student's answer for a question. A value that
// trims to nothing clears the entry entirely, so an abandoned answer is
// indistinguishable from one never given.
func (s *State) SetResponse(idx int, value string) {
	if idx < 0 || idx >= len(s.Questions) {
		return
	}
	if strings.TrimSpace(value) == "" {
		delete(s.Responses, idx)
		return
	}
	s.Responses[idx] = value
}

// ToggleMark flips the review mark on a question without touching its
// answered status.
func (s *State) ToggleMark(idx int) {
	if idx < 0 || idx >= len(s.Questions) {
		return
	}
	if s.Marked[idx] {
		delete(s.Marked, idx)
	} else {
		s.Marked[idx] = true
	}
}

// Navigate jumps to the given question index.
func (s *State) Navigate(idx int) {
	if idx >= 0 && idx < len(s.Questions) {
		s.Current = idx
	}
}

// Tick decrements the countdown by one second and reports whether it has
// reached zero. Paused or non-active sessions do not tick.
func (s *State) Tick() (expired bool) {
	if s.Phase != PhaseActive || s.Paused {
		return false
	}
	if s.RemainingSec > 0 {
		s.RemainingSec--
	}
	return s.RemainingSec == 0
}

// AnsweredCount returns how many questions currently have a response.
func (s *State) AnsweredCount() int {
	return len(s.Responses)
}

// Answered reports whether the question at idx has a response.
func (s *State) Answered(idx int) bool {
	_, ok := s.Responses[idx]
	return ok
}

// Finalized reports whether this session has already been finalized.
func (s *State) Finalized() bool {
	return s.finalized
}
