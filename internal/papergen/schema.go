package papergen

import "github.com/Atchuta30/JEE-Prep-AI/internal/llm"

// PaperSchema is the JSON schema declared to the backend for paper
// generation. Declaring it is not enough — backends may still violate
// it, so the generator re-checks every question after the call.
var PaperSchema = &llm.Schema{
	Name:        "jee-paper",
	Description: "A set of JEE Main-style multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in paper order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, with LaTeX markup for equations",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options, with LaTeX markup",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index (0-3) of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Optional short worked solution, with LaTeX markup",
						},
					},
					"required":             []any{"question", "options", "correctAnswer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
