package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sauravjha/bcabuddy/internal/llm"
)

const gradeSystemPrompt = `You are an examiner grading subjective answers from BCA (Bachelor of Computer Applications) students.

Rules:
- Grade strictly against the question, awarding between 0 and max_marks.
- A blank or off-topic answer scores 0. A complete, accurate answer scores max_marks.
- Feedback must be concrete: name what was right and what was missing, in plain language.
- missed_points lists the specific points a full answer would have covered; leave it empty for a full-marks answer.
- suggested_keywords lists the technical terms a strong answer would use.
- model_answer is a concise answer that would earn full marks, in plain ASCII text.`

// LLMGrader implements Grader using the LLM provider.
type LLMGrader struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewLLMGrader creates an LLMGrader with the given provider.
func NewLLMGrader(provider llm.Provider) *LLMGrader {
	return &LLMGrader{
		provider:    provider,
		maxTokens:   2048,
		temperature: 0.2,
	}
}

// Grade scores one answer.
func (g *LLMGrader) Grade(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	llmReq := llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradeMessage(req)},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM grading failed: %w", err)
	}

	var res Result
	if err := json.Unmarshal(resp.Content, &res); err != nil {
		return nil, fmt.Errorf("failed to parse grade: %w", err)
	}

	clamp(&res, req)
	return &res, nil
}

func buildGradeMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Semester: %d\n", req.Semester)
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Max marks: %d\n", req.MaxMarks)
	fmt.Fprintf(&b, "\nQuestion:\n%s\n", req.Question)
	fmt.Fprintf(&b, "\nStudent answer:\n%s\n", req.Answer)

	return b.String()
}
