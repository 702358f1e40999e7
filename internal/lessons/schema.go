package lessons

import "github.com/abhisek/lecturely/internal/llm"

// LectureSchema defines the JSON schema for a lecture with its quiz.
var LectureSchema = &llm.Schema{
	Name:        "lecture-content",
	Description: "A long-form lecture followed by a multiple-choice quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lecture_title": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"lecture_text": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Multi-paragraph lecture, paragraphs separated by blank lines",
			},
			"quiz": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_number": map[string]any{
							"type":    "integer",
							"minimum": 1,
						},
						"question_text": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":     "array",
							"minItems": OptionsPerQuestion,
							"maxItems": OptionsPerQuestion,
							"items": map[string]any{
								"type":    "string",
								"pattern": `^[A-D]\.`,
							},
						},
						"correct_answer": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D"},
						},
						"explanation": map[string]any{
							"type": "string",
						},
					},
					"required": []any{"question_number", "question_text", "options", "correct_answer", "explanation"},
				},
			},
		},
		"required": []any{"lecture_title", "lecture_text", "quiz"},
	},
}
