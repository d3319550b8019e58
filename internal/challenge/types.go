package challenge

import (
	"context"

	"github.com/skillissue/engine/internal/store"
)

// Candidate is a generated multiple-choice challenge before it has
// passed the structural validator and the quality gate.
type Candidate struct {
	// Question is the prompt shown to the user. Plain text.
	Question string

	// Options holds the answer options. A valid candidate has exactly
	// 4 distinct, non-empty options.
	Options []string

	// CorrectAnswerIndex is the index of the correct option (0-3).
	CorrectAnswerIndex int

	// Explanation teaches why the correct answer is right. Shown after
	// the user answers.
	Explanation string
}

// GenerateInput holds all context needed to generate one candidate.
type GenerateInput struct {
	// Skill is the target skill for the challenge.
	Skill store.Skill

	// Difficulty is the target difficulty level (1-10).
	Difficulty int

	// UserID identifies the user the challenge is for. Empty for
	// shared content such as calibration probe questions.
	UserID string
}

// Generator produces challenge candidates. Implementations must not
// retry internally; retries are the transport layer's concern.
type Generator interface {
	// Generate produces a single candidate for the given input.
	Generate(ctx context.Context, input GenerateInput) (*Candidate, error)

	// GeneratorID identifies the producing model for provenance.
	GeneratorID() string

	// PromptVersion identifies the prompt revision used.
	PromptVersion() string
}
