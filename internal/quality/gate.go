package quality

import (
	"context"
	"encoding/json"

	"github.com/skillissue/engine/internal/challenge"
	"github.com/skillissue/engine/internal/llm"
)

// reasonUnparseable marks evaluations that failed because the judge
// never returned a parseable score structure.
const reasonUnparseable = "unparseable judge response"

// DimensionScores holds the raw 0-10 judge scores.
type DimensionScores struct {
	Clarity             int
	DifficultyAlignment int
	DistractorQuality   int
	EducationalValue    int
	SkillRelevance      int
}

// Result is the outcome of one gate evaluation.
type Result struct {
	Passed         bool
	CompositeScore float64
	Scores         DimensionScores
	Reasons        map[string]string
}

// Gate scores candidates with an LLM judge and compares the weighted
// composite against the configured threshold. Pure orchestration over
// the judge; no persistence.
type Gate struct {
	judge  llm.Provider
	config Config
}

// NewGate creates a Gate. Config must already be validated.
func NewGate(judge llm.Provider, cfg Config) *Gate {
	return &Gate{judge: judge, config: cfg}
}

// judgeOutput is the raw judge response shape.
type judgeOutput struct {
	Clarity             int    `json:"clarity"`
	ClarityReason       string `json:"clarityReason"`
	DifficultyAlignment int    `json:"difficultyAlignment"`
	DifficultyReason    string `json:"difficultyReason"`
	DistractorQuality   int    `json:"distractorQuality"`
	DistractorReason    string `json:"distractorReason"`
	EducationalValue    int    `json:"educationalValue"`
	EducationalReason   string `json:"educationalReason"`
	SkillRelevance      int    `json:"skillRelevance"`
	RelevanceReason     string `json:"relevanceReason"`
	Overall             string `json:"overall"`
}

// Evaluate scores one candidate. It never returns an error: a judge
// that stays unparseable after the configured retries produces a
// failed Result with a dedicated reason. When the gate is disabled it
// passes immediately without calling the judge.
func (g *Gate) Evaluate(ctx context.Context, c *challenge.Candidate, ec EvalContext) *Result {
	if !g.config.Enabled {
		return &Result{
			Passed:         true,
			CompositeScore: 1.0,
			Reasons:        map[string]string{"overall": "quality gate disabled"},
		}
	}

	ctx = llm.WithPurpose(ctx, "quality-judge")

	req := llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildJudgeMessage(c, ec)},
		},
		Schema:      JudgeSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	var lastErr error
	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		resp, err := g.judge.Generate(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}

		var out judgeOutput
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			lastErr = err
			continue
		}

		return g.score(out)
	}

	reason := reasonUnparseable
	if lastErr != nil {
		reason = reasonUnparseable + ": " + lastErr.Error()
	}
	return &Result{
		Passed:         false,
		CompositeScore: 0,
		Reasons:        map[string]string{"overall": reason},
	}
}

// score computes the weighted composite and pass/fail from raw judge output.
func (g *Gate) score(out judgeOutput) *Result {
	scores := DimensionScores{
		Clarity:             clampScore(out.Clarity),
		DifficultyAlignment: clampScore(out.DifficultyAlignment),
		DistractorQuality:   clampScore(out.DistractorQuality),
		EducationalValue:    clampScore(out.EducationalValue),
		SkillRelevance:      clampScore(out.SkillRelevance),
	}

	w := g.config.Weights
	composite := float64(scores.Clarity)/10*w.Clarity +
		float64(scores.DifficultyAlignment)/10*w.DifficultyAlignment +
		float64(scores.DistractorQuality)/10*w.DistractorQuality +
		float64(scores.EducationalValue)/10*w.EducationalValue +
		float64(scores.SkillRelevance)/10*w.SkillRelevance

	return &Result{
		Passed:         composite >= g.config.Threshold,
		CompositeScore: composite,
		Scores:         scores,
		Reasons: map[string]string{
			"clarity":             out.ClarityReason,
			"difficultyAlignment": out.DifficultyReason,
			"distractorQuality":   out.DistractorReason,
			"educationalValue":    out.EducationalReason,
			"skillRelevance":      out.RelevanceReason,
			"overall":             out.Overall,
		},
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
