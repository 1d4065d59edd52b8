// Package llm abstracts over the LLM backends used for question
// generation and subjective grading. All backends implement Provider
// and return schema-validated JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is implemented by each LLM backend.
type Provider interface {
	// Generate sends one request and returns the model's output. When
	// the request carries a Schema the returned Content is JSON that
	// validates against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the configured model.
	ModelID() string
}

// Request is a single generation call. Exam generation and grading are
// single-turn, so Messages usually holds one user message.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, makes the provider use its structured-output
	// mechanism. When nil the raw text comes back as a JSON string.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON Schema a response must conform to. Name doubles
// as the tool name for Anthropic and the schema name for OpenAI, so
// keep it kebab-case ("exam-questions", "graded-answer").
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a backend's output, normalized across providers.
type Response struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request, which can
	// differ from the friendly name in the config.
	Model string

	// StopReason is one of "end", "max_tokens", or "error".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
