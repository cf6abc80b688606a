package quiz

import "github.com/ashwinkumar/biotutor/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
// All question kinds share one shape: the "type" tag selects which of
// correct_index / correct_text carries the answer.
var QuizSchema = &llm.Schema{
	Name:        "biotech-quiz",
	Description: "A quiz on a biotechnology topic with per-question answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"mcq", "tf", "fill"},
							"description": "Question kind: multiple choice, true/false, or fill-in-the-blank",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for mcq. Empty array for tf and fill.",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"description": "Index of the correct option for mcq. -1 for tf and fill.",
						},
						"correct_text": map[string]any{
							"type":        "string",
							"description": "The correct answer for tf (exactly \"True\" or \"False\") and fill. Empty for mcq.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining the correct answer",
						},
					},
					"required":             []any{"type", "question", "options", "correct_index", "correct_text", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
