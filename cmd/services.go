package cmd

import (
	"context"
	"fmt"

	"github.com/skillissue/engine/internal/calibration"
	"github.com/skillissue/engine/internal/challenge"
	"github.com/skillissue/engine/internal/llm"
	"github.com/skillissue/engine/internal/notify"
	"github.com/skillissue/engine/internal/pipeline"
	"github.com/skillissue/engine/internal/quality"
	"github.com/skillissue/engine/internal/store"
	"github.com/spf13/cobra"
)

// Commands construct exactly the collaborators they need; there are no
// process-wide singletons.

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newGenerator builds the LLM-backed content generator. Only commands
// that actually generate content pay the provider configuration cost.
func newGenerator(ctx context.Context, s *store.Store) (challenge.Generator, error) {
	provider, err := newLLMProvider(ctx, s)
	if err != nil {
		return nil, err
	}
	return challenge.NewGenerator(provider, challenge.DefaultGeneratorConfig()), nil
}

func newLLMProvider(ctx context.Context, s *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	provider, err := llm.NewProvider(ctx, cfg, s.TraceRepo())
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	return provider, nil
}

// newCalibrationService wires a calibration service. generator may be
// nil for commands that never generate questions.
func newCalibrationService(s *store.Store, generator challenge.Generator) *calibration.Service {
	return calibration.NewService(
		s.SkillRepo(),
		s.CalibrationRepo(),
		s.PerformanceRepo(),
		generator,
		s.TraceRepo(),
	)
}

func newDesigner(ctx context.Context, s *store.Store) (*pipeline.Designer, error) {
	provider, err := newLLMProvider(ctx, s)
	if err != nil {
		return nil, err
	}

	qCfg := quality.ConfigFromEnv()
	if err := qCfg.Validate(); err != nil {
		return nil, fmt.Errorf("quality gate config: %w", err)
	}

	return pipeline.NewDesigner(
		s.SkillRepo(),
		s.PerformanceRepo(),
		s.ChallengeRepo(),
		s.TraceRepo(),
		challenge.NewGenerator(provider, challenge.DefaultGeneratorConfig()),
		quality.NewGate(provider, qCfg),
		notify.StderrNotifier{},
	), nil
}
