// Package grading scores free-text answers against their questions,
// either via an LLM provider or a backend grading service.
package grading

import "context"

// Request carries one subjective answer to grade.
type Request struct {
	Semester int    `json:"semester"`
	Subject  string `json:"subject"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	MaxMarks int    `json:"max_marks"`
}

// Result is the grade for one answer.
type Result struct {
	Score             float64  `json:"score"`
	MaxMarks          int      `json:"max_marks"`
	Feedback          string   `json:"feedback"`
	MissedPoints      []string `json:"missed_points"`
	SuggestedKeywords []string `json:"suggested_keywords"`
	ModelAnswer       string   `json:"model_answer"`
}

// Grader grades a single answer. Callers grade pending answers one at a
// time; a failure aborts the remaining answers of that run but keeps the
// grades already produced.
type Grader interface {
	Grade(ctx context.Context, req Request) (*Result, error)
}

const (
	maxMissedPoints      = 6
	maxSuggestedKeywords = 10
)

// clamp normalizes a result in place: score into [0, MaxMarks], list
// lengths bounded, MaxMarks backfilled from the request when the grader
// omitted it.
func clamp(res *Result, req Request) {
	if res.MaxMarks <= 0 {
		res.MaxMarks = req.MaxMarks
	}
	if res.Score < 0 {
		res.Score = 0
	}
	if max := float64(res.MaxMarks); res.Score > max {
		res.Score = max
	}
	if len(res.MissedPoints) > maxMissedPoints {
		res.MissedPoints = res.MissedPoints[:maxMissedPoints]
	}
	if len(res.SuggestedKeywords) > maxSuggestedKeywords {
		res.SuggestedKeywords = res.SuggestedKeywords[:maxSuggestedKeywords]
	}
}
