// Package examgen produces exam question sets, either by asking an LLM
// directly or by calling a backend question service.
package examgen

import (
	"context"

	"github.com/sauravjha/bcabuddy/internal/exam"
)

// Request describes the question set to produce.
type Request struct {
	Semester        int
	Subject         string
	MCQCount        int
	SubjectiveCount int
}

// Total returns the full requested question count.
func (r Request) Total() int {
	return r.MCQCount + r.SubjectiveCount
}

// Source produces exam questions. Implementations must be safe to call
// from a command goroutine; the result is delivered back to the event
// loop as a message.
type Source interface {
	Fetch(ctx context.Context, req Request) ([]exam.Question, error)
}
