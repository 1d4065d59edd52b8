package exam

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NotAttempted is the user-answer placeholder recorded for questions the
// student never answered.
const NotAttempted = "Not Attempted"

// Mistake is one reviewable miss from a finalized attempt: a wrong or
// skipped MCQ, or an unattempted subjective question.
type Mistake struct {
	// Index is the question's position in the attempt's question set.
	Index int

	// Kind mirrors the question's kind.
	Kind Kind

	// Question is the prompt text.
	Question string

	// UserAnswer is the raw response, or NotAttempted.
	UserAnswer string

	// CorrectAnswer is the resolved correct option text. Empty for
	// subjective items.
	CorrectAnswer string

	// Tip is a short study suggestion derived from the question.
	Tip string
}

// Outcome is the product of finalizing a session exactly once.
type Outcome struct {
	// RunID uniquely identifies this attempt across storage and review
	// item IDs.
	RunID string

	// When is the finalize timestamp.
	When time.Time

	Subject  string
	Semester int

	Stats Stats

	// Mistakes lists the reviewable misses in question order.
	Mistakes []Mistake

	// PendingGrading lists indices of attempted subjective questions,
	// in order, awaiting external grading.
	PendingGrading []int
}

// MCQReviewID and SubjectiveReviewID build the stable review-item IDs for
// a question index within this attempt.
func (o *Outcome) MCQReviewID(idx int) string {
	return fmt.Sprintf("%s_mcq_%d", o.RunID, idx)
}

func (o *Outcome) SubjectiveReviewID(idx int) string {
	return fmt.Sprintf("%s_subj_%d", o.RunID, idx)
}

// MCQTip builds the study tip attached to a missed MCQ.
func MCQTip(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = "this topic"
	}
	return fmt.Sprintf("Revise %s and solve 5 MCQs.", topic)
}

// Finalize computes the attempt outcome and transitions the session to
// results. It is idempotent: the first call mints the run ID and builds
// the outcome, every later call returns nil. Expiry and manual submission
// both route here, so a session can never produce two attempts.
func (s *State) Finalize(now time.Time) *Outcome {
	if s.finalized {
		return nil
	}
	s.finalized = true
	s.Paused = false
	s.Phase = PhaseResults
	s.RunID = uuid.NewString()

	out := &Outcome{
		RunID:    s.RunID,
		When:     now,
		Subject:  s.Subject,
		Semester: s.Semester,
		Stats:    Score(s.Questions, s.Responses),
	}

	for idx, q := range s.Questions {
		resp, answered := s.Responses[idx]

		if q.Kind == KindSubjective {
			if answered {
				out.PendingGrading = append(out.PendingGrading, idx)
				continue
			}
			out.Mistakes = append(out.Mistakes, Mistake{
				Index:      idx,
				Kind:       KindSubjective,
				Question:   q.Text,
				UserAnswer: NotAttempted,
				Tip:        "Write a full answer from memory, then compare with your notes.",
			})
			continue
		}

		if answered && IsCorrect(resp, q) {
			continue
		}

		user := NotAttempted
		if answered {
			user = resp
		}
		out.Mistakes = append(out.Mistakes, Mistake{
			Index:         idx,
			Kind:          KindMCQ,
			Question:      q.Text,
			UserAnswer:    user,
			CorrectAnswer: ResolveCorrectAnswer(q),
			Tip:           MCQTip(TopicOf(q.Text)),
		})
	}

	return out
}

// TopicOf extracts a short topic phrase from a question prompt: the first
// clause before punctuation, capped at a handful of words.
func TopicOf(question string) string {
	s := strings.TrimSpace(question)
	if cut := strings.IndexAny(s, "?.,:;"); cut > 0 {
		s = s[:cut]
	}
	words := strings.Fields(s)
	if len(words) > 6 {
		words = words[:6]
	}
	if len(words) == 0 {
		return "general"
	}
	return strings.Join(words, " ")
}
