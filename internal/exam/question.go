package exam

import "strings"

// DefaultMaxMarks is assumed for subjective questions that arrive without
// an explicit marks value.
const DefaultMaxMarks = 10

// Question represents a single assessment item ready for display.
type Question struct {
	// Text is the question prompt shown to the student.
	Text string

	// Kind indicates how the student answers this question.
	Kind Kind

	// Options holds the answer choices. Populated only for MCQ; the order
	// is the display order (A, B, C, ...).
	Options []string

	// CorrectAnswer is the raw correct-answer value as delivered by the
	// question source. It may be an option's text, a letter ("B"), or a
	// stringified index ("1"); ResolveCorrectAnswer handles all three.
	// Empty for subjective questions.
	CorrectAnswer string

	// MaxMarks is the grading ceiling for subjective questions.
	MaxMarks int
}

// Kind describes how a question is answered and scored.
type Kind string

const (
	// KindMCQ is a multiple-choice question with one correct option.
	KindMCQ Kind = "mcq"

	// KindSubjective is a free-text question graded externally.
	KindSubjective Kind = "subjective"
)

// InferKind resolves a question's kind from a raw payload. The explicit
// type label wins when present; otherwise a non-empty options list implies
// MCQ and its absence implies subjective. Resolved once at ingestion so
// the rest of the engine never re-infers.
func InferKind(typeLabel string, options []string) Kind {
	label := strings.ToLower(strings.TrimSpace(typeLabel))
	if strings.Contains(label, "subject") {
		return KindSubjective
	}
	if strings.Contains(label, "mcq") || strings.Contains(label, "objective") {
		return KindMCQ
	}
	if len(options) > 0 {
		return KindMCQ
	}
	return KindSubjective
}
