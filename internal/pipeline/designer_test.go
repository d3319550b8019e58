package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/skillissue/engine/internal/challenge"
	"github.com/skillissue/engine/internal/llm"
	"github.com/skillissue/engine/internal/quality"
	"github.com/skillissue/engine/internal/store"
)

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
func (f *fakeSkillRepo) Upsert(context.Context, *store.Skill) error  { return nil }

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

type fakeChallengeRepo struct {
	created []store.Challenge
	pushes  map[string]store.PushStatus
	failOn  error
}

func (f *fakeChallengeRepo) CreateWithPush(_ context.Context, c *store.Challenge) (*store.Challenge, error) {
	if f.failOn != nil {
		return nil, f.failOn
	}
	cp := *c
	cp.ID = fmt.Sprintf("ch-%d", len(f.created)+1)
	cp.CreatedAt = time.Now()
	f.created = append(f.created, cp)
	if f.pushes == nil {
		f.pushes = make(map[string]store.PushStatus)
	}
	f.pushes[cp.ID] = store.PushSent
	return &cp, nil
}

func (f *fakeChallengeRepo) Get(context.Context, string) (*store.Challenge, error) {
	return nil, store.ErrNotFound
}

func (f *fakeChallengeRepo) UpdatePushStatus(_ context.Context, id string, s store.PushStatus) error {
	f.pushes[id] = s
	return nil
}

type fakeTraceRepo struct {
	executions []store.ExecutionTraceData
}

func (f *fakeTraceRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeTraceRepo) AppendExecution(_ context.Context, d store.ExecutionTraceData) error {
	f.executions = append(f.executions, d)
	return nil
}

func (f *fakeTraceRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (f *fakeTraceRepo) last(t *testing.T) store.ExecutionTraceData {
	t.Helper()
	if len(f.executions) == 0 {
		t.Fatal("no execution traces recorded")
	}
	return f.executions[len(f.executions)-1]
}

type fakeGenerator struct {
	candidate *challenge.Candidate
	err       error
	panics    bool
}

func (g *fakeGenerator) Generate(context.Context, challenge.GenerateInput) (*challenge.Candidate, error) {
	if g.panics {
		panic("generator blew up")
	}
	return g.candidate, g.err
}

func (g *fakeGenerator) GeneratorID() string   { return "fake-model" }
func (g *fakeGenerator) PromptVersion() string { return "test-v1" }

func validCandidate() *challenge.Candidate {
	return &challenge.Candidate{
		Question:           "Which primitive synchronizes access to shared state?",
		Options:            []string{"sync.Mutex", "fmt.Println", "os.Exit", "time.Sleep"},
		CorrectAnswerIndex: 0,
		Explanation:        "A mutex serializes access to shared memory.",
	}
}

// passingJudge returns a judge mock scoring every dimension 10.
func passingJudge() *llm.MockProvider {
	return llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"clarity": 10, "clarityReason": "r",
		"difficultyAlignment": 10, "difficultyReason": "r",
		"distractorQuality": 10, "distractorReason": "r",
		"educationalValue": 10, "educationalReason": "r",
		"skillRelevance": 10, "relevanceReason": "r",
		"overall": "excellent"
	}`)})
}

func failingJudge() *llm.MockProvider {
	return llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"clarity": 2, "clarityReason": "confusing",
		"difficultyAlignment": 2, "difficultyReason": "off",
		"distractorQuality": 2, "distractorReason": "weak",
		"educationalValue": 2, "educationalReason": "shallow",
		"skillRelevance": 2, "relevanceReason": "unrelated",
		"overall": "poor"
	}`)})
}

type harness struct {
	designer   *Designer
	challenges *fakeChallengeRepo
	perf       *fakePerfRepo
	traces     *fakeTraceRepo
}

func newHarness(gen *fakeGenerator, judge llm.Provider) *harness {
	skills := &fakeSkillRepo{skills: map[string]store.Skill{
		"go-basics": {ID: "go-basics", Name: "Go Basics", Description: "Syntax and types."},
	}}
	perf := &fakePerfRepo{}
	challenges := &fakeChallengeRepo{}
	traces := &fakeTraceRepo{}
	gate := quality.NewGate(judge, quality.DefaultConfig())

	return &harness{
		designer:   NewDesigner(skills, perf, challenges, traces, gen, gate, nil),
		challenges: challenges,
		perf:       perf,
		traces:     traces,
	}
}

func TestDesignChallengeSuccess(t *testing.T) {
	h := newHarness(&fakeGenerator{candidate: validCandidate()}, passingJudge())

	ch, err := h.designer.DesignChallenge(context.Background(), "u1", "go-basics", 5)
	if err != nil {
		t.Fatalf("DesignChallenge: %v", err)
	}
	if ch == nil {
		t.Fatal("expected a challenge")
	}

	if ch.ID == "" {
		t.Error("challenge has no assigned ID")
	}
	if ch.Difficulty != 5 || ch.UserID != "u1" || ch.SkillID != "go-basics" {
		t.Errorf("unexpected challenge: %+v", ch)
	}
	if ch.GeneratorID != "fake-model" || ch.PromptVersion != "test-v1" {
		t.Errorf("provenance not carried: %+v", ch)
	}

	if h.challenges.pushes[ch.ID] != store.PushSent {
		t.Error("push event not created as sent")
	}
	if h.perf.state == nil || h.perf.state.LastChallengedAt == nil {
		t.Error("LastChallengedAt not stamped")
	}

	trace := h.traces.last(t)
	if !trace.Success || trace.ChallengeID != ch.ID {
		t.Errorf("success trace missing or wrong: %+v", trace)
	}
}

func TestDesignChallengeUnknownSkillPropagates(t *testing.T) {
	h := newHarness(&fakeGenerator{candidate: validCandidate()}, passingJudge())

	_, err := h.designer.DesignChallenge(context.Background(), "u1", "nope", 5)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected skill lookup error, got %v", err)
	}
}

func TestDesignChallengeGeneratorErrorAbsorbed(t *testing.T) {
	h := newHarness(&fakeGenerator{err: errors.New("provider down")}, passingJudge())

	ch, err := h.designer.DesignChallenge(context.Background(), "u1", "go-basics", 5)
	if err != nil {
		t.Fatalf("generator failure must not propagate, got %v", err)
	}
	if ch != nil {
		t.Fatal("expected nil challenge")
	}

	trace := h.traces.last(t)
	if trace.Success || !strings.Contains(trace.ErrorMessage, "provider down") {
		t.Errorf("failure trace missing the cause: %+v", trace)
	}
	if len(h.challenges.created) != 0 {
		t.Error("nothing should be persisted on generation failure")
	}
}

func TestDesignChallengeInvalidCandidateAbsorbed(t *testing.T) {
	bad := validCandidate()
	bad.Options = bad.Options[:2]
	h := newHarness(&fakeGenerator{candidate: bad}, passingJudge())

	ch, err := h.designer.DesignChallenge(context.Background(), "u1", "go-basics", 5)
	if err != nil || ch != nil {
		t.Fatalf("expected nil, nil; got %v, %v", ch, err)
	}

	trace := h.traces.last(t)
	if !strings.Contains(trace.ErrorMessage, "structural validation") {
		t.Errorf("trace does not name the validation failure: %+v", trace)
	}
}

func TestDesignChallengeQualityFailureAbsorbed(t *testing.T) {
	h := newHarness(&fakeGenerator{candidate: validCandidate()}, failingJudge())

	ch, err := h.designer.DesignChallenge(context.Background(), "u1", "go-basics", 5)
	if err != nil || ch != nil {
		t.Fatalf("expected nil, nil; got %v, %v", ch, err)
	}

	trace := h.traces.last(t)
	if !strings.Contains(trace.ErrorMessage, "quality gate") {
		t.Errorf("trace does not name the gate failure: %+v", trace)
	}
	if len(h.challenges.created) != 0 {
		t.Error("gated-out candidate must not be persisted")
	}
}

func TestDesignChallengePersistFailureAbsorbed(t *testing.T) {
	h := newHarness(&fakeGenerator{candidate: validCandidate()}, passingJudge())
	h.challenges.failOn = errors.New("disk full")

	ch, err := h.designer.DesignChallenge(context.Background(), "u1", "go-basics", 5)
	if err != nil || ch != nil {
		t.Fatalf("expected nil, nil; got %v, %v", ch, err)
	}

	trace := h.traces.last(t)
	if !strings.Contains(trace.ErrorMessage, "disk full") {
		t.Errorf("trace does not name the persistence failure: %+v", trace)
	}
}

func TestDesignChallengePanicAbsorbed(t *testing.T) {
	h := newHarness(&fakeGenerator{panics: true}, passingJudge())

	ch, err := h.designer.DesignChallenge(context.Background(), "u1", "go-basics", 5)
	if err != nil || ch != nil {
		t.Fatalf("expected nil, nil after panic; got %v, %v", ch, err)
	}

	trace := h.traces.last(t)
	if !strings.Contains(trace.ErrorMessage, "panic") {
		t.Errorf("trace does not record the panic: %+v", trace)
	}
}

func TestDesignChallengeDisabledGate(t *testing.T) {
	judge := llm.NewMockProvider() // would error if called
	skills := &fakeSkillRepo{skills: map[string]store.Skill{
		"go-basics": {ID: "go-basics", Name: "Go Basics"},
	}}
	cfg := quality.DefaultConfig()
	cfg.Enabled = false
	challenges := &fakeChallengeRepo{}
	d := NewDesigner(skills, &fakePerfRepo{}, challenges, &fakeTraceRepo{},
		&fakeGenerator{candidate: validCandidate()}, quality.NewGate(judge, cfg), nil)

	ch, err := d.DesignChallenge(context.Background(), "u1", "go-basics", 5)
	if err != nil {
		t.Fatalf("DesignChallenge: %v", err)
	}
	if ch == nil {
		t.Fatal("expected a challenge with the gate disabled")
	}
	if judge.CallCount() != 0 {
		t.Errorf("judge called %d times with the gate disabled", judge.CallCount())
	}
}
