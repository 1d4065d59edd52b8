package examgen

import (
	"context"
	"fmt"

	"github.com/sauravjha/bcabuddy/internal/exam"
	"github.com/sauravjha/bcabuddy/internal/llm"
)

// Config controls the behavior of the LLMSource.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Exam sets are
	// large, so this defaults well above single-question budgets.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}

// LLMSource implements Source by asking an LLM provider directly.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// NewLLMSource creates an LLMSource with the given provider and config.
func NewLLMSource(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// Fetch generates a question set for the request.
func (s *LLMSource) Fetch(ctx context.Context, req Request) ([]exam.Question, error) {
	ctx = llm.WithPurpose(ctx, "examgen")

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      ExamSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	questions := ParsePayload(resp.Content)
	if len(questions) == 0 {
		return nil, fmt.Errorf("LLM returned no usable questions")
	}
	return questions, nil
}
