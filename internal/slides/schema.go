package slides

import "github.com/abhisek/lecturely/internal/llm"

// OutlineSchema is the shape of the first stage: slides without images.
var OutlineSchema = &llm.Schema{
	Name:        "slide-outline",
	Description: "Presentation slides summarizing a lecture",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"slides": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"slide_number": map[string]any{"type": "integer"},
						"title":        map[string]any{"type": "string"},
						"bullets": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"search_query": map[string]any{"type": "string"},
					},
					"required": []any{"slide_number", "title", "bullets", "search_query"},
				},
			},
		},
		"required": []any{"slides"},
	},
}
