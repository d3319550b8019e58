package performance

import (
	"context"
	"testing"

	"github.com/skillissue/engine/internal/store"
)

func TestApplyCorrect(t *testing.T) {
	st := &store.PerformanceState{
		AttemptsTotal:   4,
		CorrectTotal:    2,
		StreakCorrect:   0,
		StreakIncorrect: 2,
	}

	Apply(st, true)

	if st.AttemptsTotal != 5 || st.CorrectTotal != 3 {
		t.Errorf("totals = %d/%d, want 5/3", st.AttemptsTotal, st.CorrectTotal)
	}
	if st.StreakCorrect != 1 {
		t.Errorf("StreakCorrect = %d, want 1", st.StreakCorrect)
	}
	if st.StreakIncorrect != 0 {
		t.Errorf("StreakIncorrect = %d, want reset to 0", st.StreakIncorrect)
	}
	if st.LastResult != store.ResultCorrect {
		t.Errorf("LastResult = %s, want correct", st.LastResult)
	}
}

func TestApplyIncorrect(t *testing.T) {
	st := &store.PerformanceState{
		AttemptsTotal: 4,
		CorrectTotal:  2,
		StreakCorrect: 3,
	}

	Apply(st, false)

	if st.AttemptsTotal != 5 || st.CorrectTotal != 2 {
		t.Errorf("totals = %d/%d, want 5/2", st.AttemptsTotal, st.CorrectTotal)
	}
	if st.StreakIncorrect != 1 {
		t.Errorf("StreakIncorrect = %d, want 1", st.StreakIncorrect)
	}
	if st.StreakCorrect != 0 {
		t.Errorf("StreakCorrect = %d, want reset to 0", st.StreakCorrect)
	}
	if st.LastResult != store.ResultIncorrect {
		t.Errorf("LastResult = %s, want incorrect", st.LastResult)
	}
}

func TestApplyLeavesTargetAlone(t *testing.T) {
	st := &store.PerformanceState{DifficultyTarget: 6}
	Apply(st, true)
	Apply(st, false)
	if st.DifficultyTarget != 6 {
		t.Errorf("DifficultyTarget = %d, want untouched 6", st.DifficultyTarget)
	}
}

func TestApplyStreakRuns(t *testing.T) {
	st := &store.PerformanceState{}
	for range 3 {
		Apply(st, true)
	}
	if st.StreakCorrect != 3 || st.StreakIncorrect != 0 {
		t.Errorf("streaks = +%d/-%d, want +3/-0", st.StreakCorrect, st.StreakIncorrect)
	}

	Apply(st, false)
	Apply(st, false)
	if st.StreakCorrect != 0 || st.StreakIncorrect != 2 {
		t.Errorf("streaks = +%d/-%d, want +0/-2", st.StreakCorrect, st.StreakIncorrect)
	}
	if st.AttemptsTotal != 5 || st.CorrectTotal != 3 {
		t.Errorf("totals = %d/%d, want 5/3", st.AttemptsTotal, st.CorrectTotal)
	}
}

type fakePerfRepo struct {
	state *store.PerformanceState
}

func (f *fakePerfRepo) Get(context.Context, string, string) (*store.PerformanceState, error) {
	return f.state, nil
}

func (f *fakePerfRepo) GetOrCreate(_ context.Context, userID, skillID string) (*store.PerformanceState, error) {
	if f.state == nil {
		f.state = &store.PerformanceState{UserID: userID, SkillID: skillID}
	}
	return f.state, nil
}

func (f *fakePerfRepo) Mutate(ctx context.Context, userID, skillID string, fn func(*store.PerformanceState)) (*store.PerformanceState, error) {
	if _, err := f.GetOrCreate(ctx, userID, skillID); err != nil {
		return nil, err
	}
	fn(f.state)
	cp := *f.state
	return &cp, nil
}

func TestRecordAnswer(t *testing.T) {
	repo := &fakePerfRepo{}
	svc := NewService(repo)

	st, err := svc.RecordAnswer(context.Background(), "u1", "s1", true)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if st.AttemptsTotal != 1 || st.CorrectTotal != 1 || st.StreakCorrect != 1 {
		t.Errorf("unexpected state: %+v", st)
	}
}

func TestRecordIgnoredDoesNotCountAttempt(t *testing.T) {
	repo := &fakePerfRepo{state: &store.PerformanceState{
		UserID: "u1", SkillID: "s1",
		AttemptsTotal: 3, CorrectTotal: 2, StreakCorrect: 2,
	}}
	svc := NewService(repo)

	st, err := svc.RecordIgnored(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("RecordIgnored: %v", err)
	}
	if st.AttemptsTotal != 3 || st.CorrectTotal != 2 || st.StreakCorrect != 2 {
		t.Errorf("counters changed on ignore: %+v", st)
	}
	if st.LastResult != store.ResultIgnored {
		t.Errorf("LastResult = %s, want ignored", st.LastResult)
	}
}
