package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedSkill(t *testing.T, s *Store) {
	t.Helper()
	err := s.SkillRepo().Upsert(context.Background(), &Skill{
		ID:          "go-basics",
		Name:        "Go Basics",
		Description: "Syntax and types.",
	})
	require.NoError(t, err)
}

func TestSkillRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedSkill(t, s)

	got, err := s.SkillRepo().Get(ctx, "go-basics")
	require.NoError(t, err)
	require.Equal(t, "Go Basics", got.Name)

	// Upsert replaces.
	require.NoError(t, s.SkillRepo().Upsert(ctx, &Skill{ID: "go-basics", Name: "Go Fundamentals"}))
	got, err = s.SkillRepo().Get(ctx, "go-basics")
	require.NoError(t, err)
	require.Equal(t, "Go Fundamentals", got.Name)

	_, err = s.SkillRepo().Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	all, err := s.SkillRepo().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestPerformanceRepoMutate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedSkill(t, s)

	// Absent pair reads as nil without error.
	st, err := s.PerformanceRepo().Get(ctx, "u1", "go-basics")
	require.NoError(t, err)
	require.Nil(t, st)

	// Mutate creates the row and applies the change atomically.
	st, err = s.PerformanceRepo().Mutate(ctx, "u1", "go-basics", func(p *PerformanceState) {
		p.DifficultyTarget = 4
		p.AttemptsTotal = 1
		p.LastResult = ResultCorrect
	})
	require.NoError(t, err)
	require.Equal(t, 4, st.DifficultyTarget)
	require.Equal(t, 1, st.AttemptsTotal)

	got, err := s.PerformanceRepo().Get(ctx, "u1", "go-basics")
	require.NoError(t, err)
	require.Equal(t, 4, got.DifficultyTarget)
	require.Equal(t, ResultCorrect, got.LastResult)
}

func TestCalibrationRepoFlow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedSkill(t, s)
	repo := s.CalibrationRepo()

	for d := 1; d <= 3; d++ {
		err := repo.UpsertQuestion(ctx, &CalibrationQuestion{
			SkillID:            "go-basics",
			Difficulty:         d,
			Question:           "A probe question at this difficulty?",
			Options:            []string{"a", "b", "c", "d"},
			CorrectOptionIndex: 1,
			Explanation:        "because",
		})
		require.NoError(t, err)
	}

	// Upsert on the same key replaces, not duplicates.
	err := repo.UpsertQuestion(ctx, &CalibrationQuestion{
		SkillID:            "go-basics",
		Difficulty:         2,
		Question:           "A replacement question at difficulty two?",
		Options:            []string{"w", "x", "y", "z"},
		CorrectOptionIndex: 0,
	})
	require.NoError(t, err)

	qs, err := repo.QuestionsBySkill(ctx, "go-basics")
	require.NoError(t, err)
	require.Len(t, qs, 3)
	require.Equal(t, 0, qs[1].CorrectOptionIndex, "difficulty 2 should be replaced")

	st, err := repo.GetOrCreateState(ctx, "u1", "go-basics")
	require.NoError(t, err)
	require.Equal(t, CalibrationPending, st.Status)

	// Write-once answers.
	answer := &CalibrationAnswer{
		UserID: "u1", SkillID: "go-basics", Difficulty: 1,
		SelectedOption: 1, CorrectOption: 1, IsCorrect: true,
	}
	require.NoError(t, repo.InsertAnswer(ctx, answer))
	require.ErrorIs(t, repo.InsertAnswer(ctx, answer), ErrDuplicate)

	answers, err := repo.Answers(ctx, "u1", "go-basics")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	require.True(t, answers[0].IsCorrect)

	// Complete stamps the state and seeds the performance target in
	// the same transaction.
	done, err := repo.Complete(ctx, "u1", "go-basics", 6)
	require.NoError(t, err)
	require.Equal(t, CalibrationCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	require.NotNil(t, done.CalculatedDifficultyTarget)
	require.Equal(t, 6, *done.CalculatedDifficultyTarget)

	perf, err := s.PerformanceRepo().Get(ctx, "u1", "go-basics")
	require.NoError(t, err)
	require.NotNil(t, perf)
	require.Equal(t, 6, perf.DifficultyTarget)
}

func TestChallengeRepoCreateWithPush(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedSkill(t, s)
	repo := s.ChallengeRepo()

	created, err := repo.CreateWithPush(ctx, &Challenge{
		SkillID:            "go-basics",
		UserID:             "u1",
		Difficulty:         5,
		Question:           "Which keyword starts a goroutine?",
		Options:            []string{"go", "async", "spawn", "thread"},
		CorrectOptionIndex: 0,
		Explanation:        "The go statement starts a new goroutine.",
		GeneratorID:        "test-model",
		PromptVersion:      "mcq-v2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Question, got.Question)
	require.Len(t, got.Options, 4)

	require.NoError(t, repo.UpdatePushStatus(ctx, created.ID, PushOpened))

	_, err = repo.Get(ctx, "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTraceRepoSequencing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.TraceRepo()

	for i := range 3 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "challenge-gen",
			InputTokens:  10 + i,
			OutputTokens: 20,
			Success:      true,
		})
		require.NoError(t, err)
	}
	require.NoError(t, repo.AppendExecution(ctx, ExecutionTraceData{
		Operation: "design-challenge",
		Success:   true,
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first, with monotonically increasing sequence numbers.
	require.Greater(t, events[0].Sequence, events[1].Sequence)

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quality-judge"})
	require.NoError(t, err)
	require.Empty(t, filtered)
}
