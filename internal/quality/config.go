package quality

import (
	"fmt"
	"math"
	"os"
	"strconv"
)

// weightSumTolerance absorbs float rounding when checking that the
// dimension weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights holds the relative importance of each judge dimension.
// They must sum to 1.0; Config.Validate enforces this at load time.
type Weights struct {
	Clarity             float64
	DifficultyAlignment float64
	DistractorQuality   float64
	EducationalValue    float64
	SkillRelevance      float64
}

// Sum returns the total of all dimension weights.
func (w Weights) Sum() float64 {
	return w.Clarity + w.DifficultyAlignment + w.DistractorQuality +
		w.EducationalValue + w.SkillRelevance
}

// Config controls the quality gate.
type Config struct {
	// Enabled toggles the gate globally. When false, Evaluate
	// short-circuits to a pass without calling the judge.
	Enabled bool

	// Threshold is the minimum composite score (0-1) to pass.
	Threshold float64

	// Weights are the per-dimension weights of the composite score.
	Weights Weights

	// MaxRetries is how many times an unparseable judge response is
	// retried with the identical request before the gate fails.
	MaxRetries int

	// MaxTokens is the token budget for the judge response.
	MaxTokens int

	// Temperature for the judge. Kept low for consistent scoring.
	Temperature float64
}

// DefaultConfig returns the production gate settings.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Threshold: 0.70,
		Weights: Weights{
			Clarity:             0.20,
			DifficultyAlignment: 0.25,
			DistractorQuality:   0.20,
			EducationalValue:    0.15,
			SkillRelevance:      0.20,
		},
		MaxRetries:  1,
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// ConfigFromEnv builds a Config from SKILLISSUE_QUALITY_* environment
// variables, falling back to defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SKILLISSUE_QUALITY_GATE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("SKILLISSUE_QUALITY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Threshold = f
		}
	}
	if v := os.Getenv("SKILLISSUE_QUALITY_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// Validate checks the configuration. Called once at load time so a
// bad weight table fails fast instead of skewing every evaluation.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("quality threshold must be in [0, 1], got %v", c.Threshold)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must be >= 0, got %d", c.MaxRetries)
	}
	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("dimension weights must sum to 1.0, got %v", sum)
	}
	return nil
}
