// Package performance maintains the per-(user, skill) counters that
// drive difficulty decisions: streaks, totals, and the last result.
package performance

import (
	"context"
	"fmt"

	"github.com/skillissue/engine/internal/store"
)

// Apply mutates st with the outcome of one answered challenge:
// attempts and correct totals, mutually-resetting streaks, and the
// last result. It does not touch DifficultyTarget; target adjustment
// policy belongs to the scheduling layer.
func Apply(st *store.PerformanceState, isCorrect bool) {
	st.AttemptsTotal++
	if isCorrect {
		st.CorrectTotal++
		st.StreakCorrect++
		st.StreakIncorrect = 0
		st.LastResult = store.ResultCorrect
	} else {
		st.StreakIncorrect++
		st.StreakCorrect = 0
		st.LastResult = store.ResultIncorrect
	}
}

// Service applies answer outcomes to performance state.
type Service struct {
	perf store.PerformanceRepo
}

// NewService creates a performance updater.
func NewService(perf store.PerformanceRepo) *Service {
	return &Service{perf: perf}
}

// RecordAnswer updates the pair's counters for one answered challenge.
// The whole update runs in a single store transaction.
func (s *Service) RecordAnswer(ctx context.Context, userID, skillID string, isCorrect bool) (*store.PerformanceState, error) {
	st, err := s.perf.Mutate(ctx, userID, skillID, func(st *store.PerformanceState) {
		Apply(st, isCorrect)
	})
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}
	return st, nil
}

// RecordIgnored marks the most recent challenge as never opened.
// Streaks and totals are untouched; an ignored push is not an attempt.
func (s *Service) RecordIgnored(ctx context.Context, userID, skillID string) (*store.PerformanceState, error) {
	st, err := s.perf.Mutate(ctx, userID, skillID, func(st *store.PerformanceState) {
		st.LastResult = store.ResultIgnored
	})
	if err != nil {
		return nil, fmt.Errorf("record ignored: %w", err)
	}
	return st, nil
}
