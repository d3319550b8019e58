package quality

import (
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if math.Abs(cfg.Weights.Sum()-1.0) > weightSumTolerance {
		t.Errorf("default weights sum to %v", cfg.Weights.Sum())
	}
	if cfg.Threshold != 0.70 {
		t.Errorf("threshold = %v, want 0.70", cfg.Threshold)
	}
	if cfg.MaxRetries != 1 {
		t.Errorf("max retries = %d, want 1", cfg.MaxRetries)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold above 1", func(c *Config) { c.Threshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Threshold = -0.1 }},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }},
		{"weights sum below 1", func(c *Config) { c.Weights.Clarity = 0.10 }},
		{"weights sum above 1", func(c *Config) { c.Weights.SkillRelevance = 0.50 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SKILLISSUE_QUALITY_GATE_ENABLED", "false")
	t.Setenv("SKILLISSUE_QUALITY_THRESHOLD", "0.85")
	t.Setenv("SKILLISSUE_QUALITY_MAX_RETRIES", "3")

	cfg := ConfigFromEnv()
	if cfg.Enabled {
		t.Error("expected gate disabled")
	}
	if cfg.Threshold != 0.85 {
		t.Errorf("threshold = %v, want 0.85", cfg.Threshold)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("max retries = %d, want 3", cfg.MaxRetries)
	}
}
