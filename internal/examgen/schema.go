package examgen

import "github.com/sauravjha/bcabuddy/internal/llm"

// ExamSchema defines the JSON schema for LLM exam generation responses.
var ExamSchema = &llm.Schema{
	Name:        "exam-questions",
	Description: "A set of exam questions mixing MCQ and subjective items",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the student, in plain text",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"mcq", "subjective"},
							"description": "How the student answers: pick an option or write a free-text answer",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for mcq type. Empty array for subjective type.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "For mcq: the text of the correct option. Empty for subjective.",
						},
						"max_marks": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Marks available for a subjective question. 1 for mcq.",
						},
					},
					"required":             []any{"question", "type", "options", "correct_answer", "max_marks"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
