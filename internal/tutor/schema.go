package tutor

import "github.com/ashwinkumar/biotutor/internal/llm"

// ResourcesSchema defines the JSON schema for learning-resource
// suggestion responses.
var ResourcesSchema = &llm.Schema{
	Name:        "learning-resources",
	Description: "Suggested learning resources for a biotechnology topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"resources": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Name of the resource",
						},
						"kind": map[string]any{
							"type":        "string",
							"enum":        []any{"article", "video", "book", "course"},
							"description": "What kind of resource this is",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One sentence on what it covers and why it helps",
						},
					},
					"required":             []any{"title", "kind", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"resources"},
		"additionalProperties": false,
	},
}
