package calibration

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/skillissue/engine/internal/challenge"
	"github.com/skillissue/engine/internal/store"
)

// In-memory fakes implementing the store interfaces.

type fakeSkillRepo struct {
	skills map[string]store.Skill
}

func (f *fakeSkillRepo) Get(_ context.Context, id string) (*store.Skill, error) {
	s, ok := f.skills[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSkillRepo) List(context.Context) ([]store.Skill, error) { return nil, nil }

func (f *fakeSkillRepo) Upsert(_ context.Context, s *store.Skill) error {
	f.skills[s.ID] = *s
	return nil
}

type pairKey struct{ user, skill string }

type fakePerfRepo struct {
	states map[pairKey]*store.PerformanceState
}

func newFakePerfRepo() *fakePerfRepo {
	return &fakePerfRepo{states: make(map[pairKey]*store.PerformanceState)}
}

func (f *fakePerfRepo) Get(_ context.Context, userID, skillID string) (*store.PerformanceState, error) {
	st, ok := f.states[pairKey{userID, skillID}]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (f *fakePerfRepo) GetOrCreate(_ context.Context, userID, skillID string) (*store.PerformanceState, error) {
	k := pairKey{userID, skillID}
	if _, ok := f.states[k]; !ok {
		f.states[k] = &store.PerformanceState{UserID: userID, SkillID: skillID}
	}
	cp := *f.states[k]
	return &cp, nil
}

func (f *fakePerfRepo) Mutate(ctx context.Context, userID, skillID string, fn func(*store.PerformanceState)) (*store.PerformanceState, error) {
	if _, err := f.GetOrCreate(ctx, userID, skillID); err != nil {
		return nil, err
	}
	st := f.states[pairKey{userID, skillID}]
	fn(st)
	cp := *st
	return &cp, nil
}

type questionKey struct {
	skill      string
	difficulty int
}

type answerKey struct {
	user       string
	skill      string
	difficulty int
}

type fakeCalibRepo struct {
	perf      *fakePerfRepo
	questions map[questionKey]store.CalibrationQuestion
	states    map[pairKey]*store.CalibrationState
	answers   map[answerKey]store.CalibrationAnswer
}

func newFakeCalibRepo(perf *fakePerfRepo) *fakeCalibRepo {
	return &fakeCalibRepo{
		perf:      perf,
		questions: make(map[questionKey]store.CalibrationQuestion),
		states:    make(map[pairKey]*store.CalibrationState),
		answers:   make(map[answerKey]store.CalibrationAnswer),
	}
}

func (f *fakeCalibRepo) QuestionsBySkill(_ context.Context, skillID string) ([]store.CalibrationQuestion, error) {
	var out []store.CalibrationQuestion
	for d := 1; d <= 10; d++ {
		if q, ok := f.questions[questionKey{skillID, d}]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeCalibRepo) QuestionByDifficulty(_ context.Context, skillID string, difficulty int) (*store.CalibrationQuestion, error) {
	q, ok := f.questions[questionKey{skillID, difficulty}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &q, nil
}

func (f *fakeCalibRepo) UpsertQuestion(_ context.Context, q *store.CalibrationQuestion) error {
	f.questions[questionKey{q.SkillID, q.Difficulty}] = *q
	return nil
}

func (f *fakeCalibRepo) GetState(_ context.Context, userID, skillID string) (*store.CalibrationState, error) {
	st, ok := f.states[pairKey{userID, skillID}]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (f *fakeCalibRepo) GetOrCreateState(_ context.Context, userID, skillID string) (*store.CalibrationState, error) {
	k := pairKey{userID, skillID}
	if _, ok := f.states[k]; !ok {
		f.states[k] = &store.CalibrationState{
			ID:      fmt.Sprintf("%s-%s", userID, skillID),
			UserID:  userID,
			SkillID: skillID,
			Status:  store.CalibrationPending,
		}
	}
	cp := *f.states[k]
	return &cp, nil
}

func (f *fakeCalibRepo) UpdateState(_ context.Context, st *store.CalibrationState) error {
	cp := *st
	f.states[pairKey{st.UserID, st.SkillID}] = &cp
	return nil
}

func (f *fakeCalibRepo) InsertAnswer(_ context.Context, a *store.CalibrationAnswer) error {
	k := answerKey{a.UserID, a.SkillID, a.Difficulty}
	if _, ok := f.answers[k]; ok {
		return store.ErrDuplicate
	}
	cp := *a
	cp.AnsweredAt = time.Now()
	f.answers[k] = cp
	return nil
}

func (f *fakeCalibRepo) Answers(_ context.Context, userID, skillID string) ([]store.CalibrationAnswer, error) {
	var out []store.CalibrationAnswer
	for d := 1; d <= 10; d++ {
		if a, ok := f.answers[answerKey{userID, skillID, d}]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeCalibRepo) Complete(ctx context.Context, userID, skillID string, target int) (*store.CalibrationState, error) {
	st, err := f.GetOrCreateState(ctx, userID, skillID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	st.Status = store.CalibrationCompleted
	st.CompletedAt = &now
	st.CalculatedDifficultyTarget = &target
	if err := f.UpdateState(ctx, st); err != nil {
		return nil, err
	}
	if _, err := f.perf.Mutate(ctx, userID, skillID, func(p *store.PerformanceState) {
		p.DifficultyTarget = target
	}); err != nil {
		return nil, err
	}
	return st, nil
}

// fakeGenerator produces deterministic valid candidates, with optional
// per-difficulty failures.
type fakeGenerator struct {
	failAt map[int]bool
	calls  int
}

func (g *fakeGenerator) Generate(_ context.Context, input challenge.GenerateInput) (*challenge.Candidate, error) {
	g.calls++
	if g.failAt[input.Difficulty] {
		return nil, errors.New("generation failed")
	}
	return &challenge.Candidate{
		Question: fmt.Sprintf("Probe question for %s at difficulty %d?", input.Skill.ID, input.Difficulty),
		Options: []string{
			fmt.Sprintf("right-%d", input.Difficulty),
			"wrong-a", "wrong-b", "wrong-c",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "because",
	}, nil
}

func (g *fakeGenerator) GeneratorID() string   { return "fake" }
func (g *fakeGenerator) PromptVersion() string { return "test-v1" }

type fixture struct {
	svc   *Service
	calib *fakeCalibRepo
	perf  *fakePerfRepo
	gen   *fakeGenerator
}

func newFixture() *fixture {
	perf := newFakePerfRepo()
	calib := newFakeCalibRepo(perf)
	gen := &fakeGenerator{}
	skills := &fakeSkillRepo{skills: map[string]store.Skill{
		"go-basics": {ID: "go-basics", Name: "Go Basics", Description: "Syntax and types."},
	}}
	return &fixture{
		svc:   NewService(skills, calib, perf, gen, nil),
		calib: calib,
		perf:  perf,
		gen:   gen,
	}
}

func (f *fixture) seedBattery(t *testing.T) {
	t.Helper()
	res, err := f.svc.EnsureQuestions(context.Background(), "go-basics")
	if err != nil {
		t.Fatalf("EnsureQuestions: %v", err)
	}
	if !res.Complete() {
		t.Fatalf("battery incomplete: %+v", res)
	}
}

func TestEnsureQuestionsGeneratesFullBattery(t *testing.T) {
	f := newFixture()

	res, err := f.svc.EnsureQuestions(context.Background(), "go-basics")
	if err != nil {
		t.Fatalf("EnsureQuestions: %v", err)
	}
	if res.Ready != BatterySize || res.Generated != BatterySize {
		t.Errorf("got ready=%d generated=%d, want 10/10", res.Ready, res.Generated)
	}

	// Idempotent: a second run generates nothing.
	res, err = f.svc.EnsureQuestions(context.Background(), "go-basics")
	if err != nil {
		t.Fatalf("second EnsureQuestions: %v", err)
	}
	if res.Generated != 0 || res.Ready != BatterySize {
		t.Errorf("second run got ready=%d generated=%d, want 10/0", res.Ready, res.Generated)
	}
	if f.gen.calls != BatterySize {
		t.Errorf("generator called %d times, want %d", f.gen.calls, BatterySize)
	}
}

func TestEnsureQuestionsPartialFailure(t *testing.T) {
	f := newFixture()
	f.gen.failAt = map[int]bool{3: true, 7: true}

	res, err := f.svc.EnsureQuestions(context.Background(), "go-basics")
	if err != nil {
		t.Fatalf("EnsureQuestions: %v", err)
	}
	if res.Ready != 8 || res.Generated != 8 {
		t.Errorf("got ready=%d generated=%d, want 8/8", res.Ready, res.Generated)
	}
	if len(res.Failed) != 2 || res.Failed[0] != 3 || res.Failed[1] != 7 {
		t.Errorf("Failed = %v, want [3 7]", res.Failed)
	}

	// A later run fills only the gaps.
	f.gen.failAt = nil
	res, err = f.svc.EnsureQuestions(context.Background(), "go-basics")
	if err != nil {
		t.Fatalf("retry EnsureQuestions: %v", err)
	}
	if res.Generated != 2 || !res.Complete() {
		t.Errorf("retry got ready=%d generated=%d, want 10/2", res.Ready, res.Generated)
	}
}

func TestEnsureQuestionsUnknownSkill(t *testing.T) {
	f := newFixture()
	_, err := f.svc.EnsureQuestions(context.Background(), "nope")
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestStartBeforeQuestionsReady(t *testing.T) {
	f := newFixture()

	res, err := f.svc.Start(context.Background(), "u1", "go-basics")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if res.Status != StatusGenerating {
		t.Errorf("status = %s, want generating", res.Status)
	}
	if len(res.Questions) != 0 {
		t.Errorf("expected no questions, got %d", len(res.Questions))
	}
}

func TestStartStripsAnswers(t *testing.T) {
	f := newFixture()
	f.seedBattery(t)

	res, err := f.svc.Start(context.Background(), "u1", "go-basics")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if res.Status != StatusInProgress {
		t.Fatalf("status = %s, want in_progress", res.Status)
	}
	if len(res.Questions) != BatterySize {
		t.Fatalf("got %d questions, want %d", len(res.Questions), BatterySize)
	}
	for i, q := range res.Questions {
		if q.Difficulty != i+1 {
			t.Errorf("question %d has difficulty %d", i, q.Difficulty)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", i, len(q.Options))
		}
	}

	st, _ := f.calib.GetState(context.Background(), "u1", "go-basics")
	if st.Status != store.CalibrationInProgress {
		t.Errorf("state = %s, want in_progress", st.Status)
	}
	if st.QuestionsGeneratedAt == nil {
		t.Error("QuestionsGeneratedAt not stamped")
	}
}

func TestStartAfterCompleteIsNoOp(t *testing.T) {
	f := newFixture()
	f.seedBattery(t)
	ctx := context.Background()

	if _, err := f.svc.Start(ctx, "u1", "go-basics"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.SubmitAnswer(ctx, "u1", "go-basics", 1, 0, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Complete(ctx, "u1", "go-basics"); err != nil {
		t.Fatal(err)
	}

	res, err := f.svc.Start(ctx, "u1", "go-basics")
	if err != nil {
		t.Fatalf("Start after complete: %v", err)
	}
	if res.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", res.Status)
	}
	if len(res.Questions) != 0 {
		t.Errorf("completed start should return no questions, got %d", len(res.Questions))
	}
}

func TestSubmitAnswerGradesAndCounts(t *testing.T) {
	f := newFixture()
	f.seedBattery(t)
	ctx := context.Background()

	// Correct option is always 0 in the fake generator.
	res, err := f.svc.SubmitAnswer(ctx, "u1", "go-basics", 1, 0, nil)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !res.IsCorrect {
		t.Error("expected correct")
	}
	if res.Progress.Answered != 1 || res.Progress.Total != BatterySize {
		t.Errorf("progress = %+v", res.Progress)
	}

	res, err = f.svc.SubmitAnswer(ctx, "u1", "go-basics", 2, 3, nil)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect")
	}
	if res.CorrectOption != 0 {
		t.Errorf("CorrectOption = %d, want 0", res.CorrectOption)
	}
	if res.Explanation == "" {
		t.Error("expected explanation in result")
	}
	if res.Progress.Answered != 2 {
		t.Errorf("answered = %d, want 2", res.Progress.Answered)
	}
}

func TestSubmitAnswerWriteOnce(t *testing.T) {
	f := newFixture()
	f.seedBattery(t)
	ctx := context.Background()

	if _, err := f.svc.SubmitAnswer(ctx, "u1", "go-basics", 5, 0, nil); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.SubmitAnswer(ctx, "u1", "go-basics", 5, 1, nil)
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	f := newFixture()
	_, err := f.svc.SubmitAnswer(context.Background(), "u1", "go-basics", 4, 0, nil)
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestCompleteSeedsTargetAndFinishesState(t *testing.T) {
	f := newFixture()
	f.seedBattery(t)
	ctx := context.Background()

	// Correct at 1-5, incorrect at 6-10: avg 3, accuracy 0.5, target 3.
	for d := 1; d <= 10; d++ {
		selected := 0
		if d > 5 {
			selected = 1
		}
		if _, err := f.svc.SubmitAnswer(ctx, "u1", "go-basics", d, selected, nil); err != nil {
			t.Fatal(err)
		}
	}

	res, err := f.svc.Complete(ctx, "u1", "go-basics")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.CalculatedDifficultyTarget != 3 {
		t.Errorf("target = %d, want 3", res.CalculatedDifficultyTarget)
	}
	if res.TotalAnswered != 10 || res.TotalCorrect != 5 {
		t.Errorf("answered/correct = %d/%d, want 10/5", res.TotalAnswered, res.TotalCorrect)
	}

	st, _ := f.calib.GetState(ctx, "u1", "go-basics")
	if st.Status != store.CalibrationCompleted {
		t.Errorf("state = %s, want completed", st.Status)
	}
	if st.CompletedAt == nil {
		t.Error("CompletedAt not stamped")
	}

	perf, _ := f.perf.Get(ctx, "u1", "go-basics")
	if perf == nil || perf.DifficultyTarget != 3 {
		t.Errorf("performance target not seeded: %+v", perf)
	}
}

func TestCompleteIsTerminal(t *testing.T) {
	f := newFixture()
	f.seedBattery(t)
	ctx := context.Background()

	if _, err := f.svc.SubmitAnswer(ctx, "u1", "go-basics", 1, 0, nil); err != nil {
		t.Fatal(err)
	}
	first, err := f.svc.Complete(ctx, "u1", "go-basics")
	if err != nil {
		t.Fatal(err)
	}

	// Extra answers after completion must not change the stored target.
	if _, err := f.svc.SubmitAnswer(ctx, "u1", "go-basics", 10, 0, nil); err != nil {
		t.Fatal(err)
	}
	second, err := f.svc.Complete(ctx, "u1", "go-basics")
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if second.CalculatedDifficultyTarget != first.CalculatedDifficultyTarget {
		t.Errorf("target changed after completion: %d -> %d",
			first.CalculatedDifficultyTarget, second.CalculatedDifficultyTarget)
	}
}

func TestCompleteWithoutAnswers(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Complete(context.Background(), "u1", "go-basics")
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

func TestNeedsCalibration(t *testing.T) {
	f := newFixture()
	f.seedBattery(t)
	ctx := context.Background()

	needs, err := f.svc.NeedsCalibration(ctx, "u1", "go-basics")
	if err != nil {
		t.Fatal(err)
	}
	if !needs {
		t.Error("fresh pair should need calibration")
	}

	if _, err := f.svc.SubmitAnswer(ctx, "u1", "go-basics", 5, 0, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Complete(ctx, "u1", "go-basics"); err != nil {
		t.Fatal(err)
	}

	needs, err = f.svc.NeedsCalibration(ctx, "u1", "go-basics")
	if err != nil {
		t.Fatal(err)
	}
	if needs {
		t.Error("completed pair should not need calibration")
	}

	// A different user on the same skill still needs calibration.
	needs, err = f.svc.NeedsCalibration(ctx, "u2", "go-basics")
	if err != nil {
		t.Fatal(err)
	}
	if !needs {
		t.Error("other users are not calibrated by u1's completion")
	}
}
