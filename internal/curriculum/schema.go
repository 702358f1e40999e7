package curriculum

import "github.com/abhisek/lecturely/internal/llm"

// ModuleListSchema is the shape of a course outline: a bare JSON array of
// module stubs.
var ModuleListSchema = &llm.Schema{
	Name:        "module-list",
	Description: "Ordered list of study modules for a topic",
	Definition: map[string]any{
		"type":     "array",
		"minItems": MinModules,
		"maxItems": MaxModules,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"module_number": map[string]any{
					"type":    "integer",
					"minimum": 1,
				},
				"module_title": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"description": map[string]any{
					"type": "string",
				},
			},
			"required": []any{"module_number", "module_title", "description"},
		},
	},
}
