package quality

import "github.com/skillissue/engine/internal/llm"

func scoreProperty(desc string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"minimum":     0,
		"maximum":     10,
		"description": desc,
	}
}

func reasonProperty(desc string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": desc,
	}
}

// JudgeSchema defines the JSON schema for judge evaluations. The key
// names match the platform's stored evaluation shape.
var JudgeSchema = &llm.Schema{
	Name:        "challenge-evaluation",
	Description: "Five-dimension quality scores for a multiple-choice challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"clarity":             scoreProperty("Clarity score, 0-10"),
			"clarityReason":       reasonProperty("One-line justification for the clarity score"),
			"difficultyAlignment": scoreProperty("Difficulty alignment score, 0-10"),
			"difficultyReason":    reasonProperty("One-line justification for the difficulty score"),
			"distractorQuality":   scoreProperty("Distractor quality score, 0-10"),
			"distractorReason":    reasonProperty("One-line justification for the distractor score"),
			"educationalValue":    scoreProperty("Educational value score, 0-10"),
			"educationalReason":   reasonProperty("One-line justification for the educational score"),
			"skillRelevance":      scoreProperty("Skill relevance score, 0-10"),
			"relevanceReason":     reasonProperty("One-line justification for the relevance score"),
			"overall":             reasonProperty("One-line overall assessment"),
		},
		"required": []any{
			"clarity", "clarityReason",
			"difficultyAlignment", "difficultyReason",
			"distractorQuality", "distractorReason",
			"educationalValue", "educationalReason",
			"skillRelevance", "relevanceReason",
			"overall",
		},
		"additionalProperties": false,
	},
}
