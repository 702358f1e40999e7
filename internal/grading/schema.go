package grading

import "github.com/abhisek/lecturely/internal/llm"

// GradingSchema is deliberately loose: the reply is relayed as-is, so only
// the fields scoring relies on are pinned down.
var GradingSchema = &llm.Schema{
	Name:        "quiz-grading",
	Description: "Per-question verdicts with an overall feedback summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"graded_results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_number": map[string]any{"type": "integer"},
						"is_correct":      map[string]any{"type": "boolean"},
						"explanation":     map[string]any{"type": "string"},
					},
					"required": []any{"question_number", "is_correct"},
				},
			},
			"feedback_summary": map[string]any{"type": "string"},
		},
		"required": []any{"graded_results", "feedback_summary"},
	},
}
