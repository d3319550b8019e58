package challenge

import "github.com/skillissue/engine/internal/llm"

// CandidateSchema defines the JSON schema for generated challenges.
// Field names match the platform's stored challenge shape.
var CandidateSchema = &llm.Schema{
	Name:        "mcq-challenge",
	Description: "A single multiple-choice challenge with four options and an explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the user, in plain text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 distinct answer options",
			},
			"correctAnswerIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is right; shown after answering",
			},
		},
		"required":             []any{"question", "options", "correctAnswerIndex", "explanation"},
		"additionalProperties": false,
	},
}
