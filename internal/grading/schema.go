package grading

import "github.com/sauravjha/bcabuddy/internal/llm"

// GradeSchema defines the JSON schema for LLM grading responses.
var GradeSchema = &llm.Schema{
	Name:        "subjective-grade",
	Description: "A grade for one subjective exam answer with feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"description": "Marks awarded, between 0 and max_marks",
			},
			"max_marks": map[string]any{
				"type":        "integer",
				"description": "The marks ceiling this answer was graded against",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Two to four sentences of concrete feedback on the answer",
			},
			"missed_points": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Key points the answer failed to cover, at most 6",
			},
			"suggested_keywords": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Terms a full-marks answer would use, at most 10",
			},
			"model_answer": map[string]any{
				"type":        "string",
				"description": "A concise full-marks answer to the question",
			},
		},
		"required":             []any{"score", "max_marks", "feedback", "missed_points", "suggested_keywords", "model_answer"},
		"additionalProperties": false,
	},
}
