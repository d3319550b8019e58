package challenge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skillissue/engine/internal/llm"
)

// GeneratorConfig controls the LLM content generator.
type GeneratorConfig struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultGeneratorConfig returns the recommended generator settings.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   GeneratorConfig
}

// NewGenerator creates an LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// candidateOutput is the raw LLM response shape.
type candidateOutput struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// Generate produces a single candidate for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Candidate, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      CandidateSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw candidateOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return &Candidate{
		Question:           raw.Question,
		Options:            raw.Options,
		CorrectAnswerIndex: raw.CorrectAnswerIndex,
		Explanation:        raw.Explanation,
	}, nil
}

// GeneratorID returns the provider's model ID for provenance.
func (g *LLMGenerator) GeneratorID() string {
	return g.provider.ModelID()
}

// PromptVersion returns the prompt revision used for generation.
func (g *LLMGenerator) PromptVersion() string {
	return promptVersion
}
