// Package calibration estimates a user's starting difficulty for a
// skill through a fixed battery of probe questions, one per
// difficulty level 1-10.
package calibration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skillissue/engine/internal/challenge"
	"github.com/skillissue/engine/internal/llm"
	"github.com/skillissue/engine/internal/store"
)

// StartStatus reports what Start handed back to the caller.
type StartStatus string

const (
	// StatusGenerating means the battery is not complete yet; the
	// caller should run EnsureQuestions and call Start again.
	StatusGenerating StartStatus = "generating"

	// StatusInProgress means the battery was handed to the user.
	StatusInProgress StartStatus = "in_progress"

	// StatusCompleted means the user is already calibrated.
	StatusCompleted StartStatus = "completed"
)

// Question is a probe question with the answer fields stripped, safe
// to hand to the client.
type Question struct {
	SkillID    string
	Difficulty int
	Question   string
	Options    []string
}

// EnsureResult reports one battery-generation pass.
type EnsureResult struct {
	// Ready is how many of the 10 levels now have a question.
	Ready int

	// Generated is how many questions this pass produced.
	Generated int

	// Failed lists the difficulty levels that could not be generated.
	Failed []int
}

// Complete returns true when the full battery exists.
func (r *EnsureResult) Complete() bool {
	return r.Ready == BatterySize
}

// StartResult is what Start hands to the caller.
type StartResult struct {
	Status    StartStatus
	Questions []Question
}

// Progress counts recorded answers for a (user, skill) pair.
type Progress struct {
	Answered int
	Total    int
}

// SubmitResult is the graded outcome of one probe answer.
type SubmitResult struct {
	IsCorrect     bool
	CorrectOption int
	Explanation   string
	Progress      Progress
}

// CompleteResult summarizes a finished calibration.
type CompleteResult struct {
	TotalAnswered              int
	TotalCorrect               int
	Accuracy                   float64
	AverageCorrectDifficulty   float64
	CalculatedDifficultyTarget int
}

// Service owns the calibration battery and the per-(user, skill)
// calibration state machine. All collaborators are injected.
type Service struct {
	skills    store.SkillRepo
	calib     store.CalibrationRepo
	perf      store.PerformanceRepo
	generator challenge.Generator
	traces    store.TraceRepo
}

// NewService creates a calibration service.
func NewService(
	skills store.SkillRepo,
	calib store.CalibrationRepo,
	perf store.PerformanceRepo,
	generator challenge.Generator,
	traces store.TraceRepo,
) *Service {
	return &Service{
		skills:    skills,
		calib:     calib,
		perf:      perf,
		generator: generator,
		traces:    traces,
	}
}

// EnsureQuestions makes sure the skill's ten-question battery exists.
// The battery is shared across all users of the skill: if all ten
// questions are already present this is a no-op. Otherwise each
// missing difficulty level is generated and upserted in turn; a
// failure at one level never aborts the rest. Callers treat a result
// with Ready < 10 as "not yet ready", not as an error.
func (s *Service) EnsureQuestions(ctx context.Context, skillID string) (*EnsureResult, error) {
	start := time.Now()

	skill, err := s.skills.Get(ctx, skillID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("ensure calibration questions: %w", ErrSkillNotFound)
		}
		return nil, fmt.Errorf("ensure calibration questions: %w", err)
	}

	existing, err := s.calib.QuestionsBySkill(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("ensure calibration questions: %w", err)
	}

	have := make(map[int]bool, len(existing))
	for _, q := range existing {
		have[q.Difficulty] = true
	}

	result := &EnsureResult{Ready: len(existing)}
	if result.Complete() {
		return result, nil
	}

	genCtx := llm.WithPurpose(ctx, "calibration-gen")
	for difficulty := minDifficulty; difficulty <= maxDifficulty; difficulty++ {
		if have[difficulty] {
			continue
		}

		if err := s.generateQuestion(genCtx, skill, difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "warning: calibration question %s/%d: %v\n",
				skillID, difficulty, err)
			result.Failed = append(result.Failed, difficulty)
			continue
		}
		result.Generated++
		result.Ready++
	}

	s.trace(ctx, store.ExecutionTraceData{
		Operation:  "ensure-questions",
		SkillID:    skillID,
		Success:    result.Complete(),
		DurationMs: time.Since(start).Milliseconds(),
		Detail: fmt.Sprintf("ready=%d generated=%d failed=%d",
			result.Ready, result.Generated, len(result.Failed)),
	})

	return result, nil
}

func (s *Service) generateQuestion(ctx context.Context, skill *store.Skill, difficulty int) error {
	cand, err := s.generator.Generate(ctx, challenge.GenerateInput{
		Skill:      *skill,
		Difficulty: difficulty,
	})
	if err != nil {
		return err
	}

	if res := challenge.Validate(cand); !res.IsValid {
		return fmt.Errorf("structural validation: %s", strings.Join(res.Errors, "; "))
	}

	return s.calib.UpsertQuestion(ctx, &store.CalibrationQuestion{
		SkillID:            skill.ID,
		Difficulty:         difficulty,
		Question:           cand.Question,
		Options:            cand.Options,
		CorrectOptionIndex: cand.CorrectAnswerIndex,
		Explanation:        cand.Explanation,
	})
}

// GetOrCreateState returns the pair's calibration state, creating a
// pending one on first access.
func (s *Service) GetOrCreateState(ctx context.Context, userID, skillID string) (*store.CalibrationState, error) {
	return s.calib.GetOrCreateState(ctx, userID, skillID)
}

// Start hands the probe battery to the user. Already-calibrated users
// get an empty completed result (idempotent). If the battery is
// incomplete the caller gets a generating status and should retry
// after EnsureQuestions. Otherwise the state moves to in_progress and
// all ten questions are returned with the correct answers and
// explanations stripped.
func (s *Service) Start(ctx context.Context, userID, skillID string) (*StartResult, error) {
	st, err := s.calib.GetOrCreateState(ctx, userID, skillID)
	if err != nil {
		return nil, fmt.Errorf("start calibration: %w", err)
	}

	if st.Status == store.CalibrationCompleted {
		return &StartResult{Status: StatusCompleted}, nil
	}

	questions, err := s.calib.QuestionsBySkill(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("start calibration: %w", err)
	}
	if len(questions) < BatterySize {
		return &StartResult{Status: StatusGenerating}, nil
	}

	if st.Status == store.CalibrationPending {
		now := time.Now().UTC()
		st.Status = store.CalibrationInProgress
		st.QuestionsGeneratedAt = &now
		if err := s.calib.UpdateState(ctx, st); err != nil {
			return nil, fmt.Errorf("start calibration: %w", err)
		}
	}

	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = Question{
			SkillID:    q.SkillID,
			Difficulty: q.Difficulty,
			Question:   q.Question,
			Options:    q.Options,
		}
	}

	return &StartResult{Status: StatusInProgress, Questions: out}, nil
}

// SubmitAnswer grades and records one probe answer. Answers are
// write-once per (user, skill, difficulty); the store's unique
// constraint is the authoritative guard, surfaced as ErrAlreadyAnswered.
func (s *Service) SubmitAnswer(ctx context.Context, userID, skillID string, difficulty, selectedOption int, responseTimeMs *int64) (*SubmitResult, error) {
	q, err := s.calib.QuestionByDifficulty(ctx, skillID, difficulty)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("submit answer: %w", ErrQuestionNotFound)
		}
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	isCorrect := selectedOption == q.CorrectOptionIndex

	err = s.calib.InsertAnswer(ctx, &store.CalibrationAnswer{
		UserID:         userID,
		SkillID:        skillID,
		Difficulty:     difficulty,
		SelectedOption: selectedOption,
		CorrectOption:  q.CorrectOptionIndex,
		IsCorrect:      isCorrect,
		ResponseTimeMs: responseTimeMs,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("submit answer: %w", ErrAlreadyAnswered)
		}
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	answers, err := s.calib.Answers(ctx, userID, skillID)
	if err != nil {
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	return &SubmitResult{
		IsCorrect:     isCorrect,
		CorrectOption: q.CorrectOptionIndex,
		Explanation:   q.Explanation,
		Progress:      Progress{Answered: len(answers), Total: BatterySize},
	}, nil
}

// Complete scores the recorded answers, seeds the performance state's
// difficulty target, and marks the calibration completed. Completion
// is terminal: calling Complete again re-reports the stored result
// without touching state.
func (s *Service) Complete(ctx context.Context, userID, skillID string) (*CompleteResult, error) {
	answers, err := s.calib.Answers(ctx, userID, skillID)
	if err != nil {
		return nil, fmt.Errorf("complete calibration: %w", err)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("complete calibration: %w", ErrNoAnswers)
	}

	summary := Summarize(answers)
	result := &CompleteResult{
		TotalAnswered:              summary.TotalAnswered,
		TotalCorrect:               summary.TotalCorrect,
		Accuracy:                   summary.Accuracy,
		AverageCorrectDifficulty:   summary.AverageCorrectDifficulty,
		CalculatedDifficultyTarget: summary.Target,
	}

	st, err := s.calib.GetState(ctx, userID, skillID)
	if err != nil {
		return nil, fmt.Errorf("complete calibration: %w", err)
	}
	if st != nil && st.Status == store.CalibrationCompleted {
		if st.CalculatedDifficultyTarget != nil {
			result.CalculatedDifficultyTarget = *st.CalculatedDifficultyTarget
		}
		return result, nil
	}

	if _, err := s.calib.Complete(ctx, userID, skillID, summary.Target); err != nil {
		return nil, fmt.Errorf("complete calibration: %w", err)
	}

	s.trace(ctx, store.ExecutionTraceData{
		Operation: "complete-calibration",
		UserID:    userID,
		SkillID:   skillID,
		Success:   true,
		Detail: fmt.Sprintf("answered=%d correct=%d accuracy=%.2f target=%d",
			summary.TotalAnswered, summary.TotalCorrect, summary.Accuracy, summary.Target),
	})

	return result, nil
}

// NeedsCalibration is the single gate steady-state callers check
// before designing challenges: true until the pair has a completed
// calibration and a non-zero difficulty target.
func (s *Service) NeedsCalibration(ctx context.Context, userID, skillID string) (bool, error) {
	perf, err := s.perf.Get(ctx, userID, skillID)
	if err != nil {
		return false, fmt.Errorf("needs calibration: %w", err)
	}
	if perf == nil || perf.DifficultyTarget == 0 {
		return true, nil
	}

	st, err := s.calib.GetState(ctx, userID, skillID)
	if err != nil {
		return false, fmt.Errorf("needs calibration: %w", err)
	}
	return st == nil || st.Status != store.CalibrationCompleted, nil
}

// trace appends an execution trace, discarding sink failures.
func (s *Service) trace(ctx context.Context, data store.ExecutionTraceData) {
	if s.traces == nil {
		return
	}
	if err := s.traces.AppendExecution(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to trace %s: %v\n", data.Operation, err)
	}
}
