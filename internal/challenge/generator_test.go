package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/skillissue/engine/internal/llm"
	"github.com/skillissue/engine/internal/store"
)

var testSkill = store.Skill{
	ID:          "go-concurrency",
	Name:        "Go Concurrency",
	Description: "Goroutines, channels, and the sync package.",
}

func TestGenerateParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"question": "Which primitive synchronizes access to shared state?",
			"options": ["sync.Mutex", "fmt.Println", "os.Exit", "time.Sleep"],
			"correctAnswerIndex": 0,
			"explanation": "A mutex serializes access to shared memory."
		}`),
	})

	g := NewGenerator(mock, DefaultGeneratorConfig())
	cand, err := g.Generate(context.Background(), GenerateInput{
		Skill:      testSkill,
		Difficulty: 4,
		UserID:     "u1",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if cand.Question != "Which primitive synchronizes access to shared state?" {
		t.Errorf("unexpected question: %q", cand.Question)
	}
	if len(cand.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(cand.Options))
	}
	if cand.CorrectAnswerIndex != 0 {
		t.Errorf("expected index 0, got %d", cand.CorrectAnswerIndex)
	}
	if cand.Explanation == "" {
		t.Error("expected explanation")
	}
}

func TestGenerateRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"x","options":[],"correctAnswerIndex":0,"explanation":""}`),
	})

	g := NewGenerator(mock, GeneratorConfig{MaxTokens: 512, Temperature: 0.5})
	_, err := g.Generate(context.Background(), GenerateInput{Skill: testSkill, Difficulty: 7})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := mock.CallCount(); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema != CandidateSchema {
		t.Error("expected the candidate schema on the request")
	}
	if req.MaxTokens != 512 {
		t.Errorf("MaxTokens = %d, want 512", req.MaxTokens)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected a single user message, got %+v", req.Messages)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, testSkill.Name) {
		t.Errorf("user message does not mention the skill name: %q", msg)
	}
	if !strings.Contains(msg, "7") {
		t.Errorf("user message does not mention the difficulty: %q", msg)
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	wantErr := errors.New("boom")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})

	g := NewGenerator(mock, DefaultGeneratorConfig())
	_, err := g.Generate(context.Background(), GenerateInput{Skill: testSkill, Difficulty: 1})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})

	g := NewGenerator(mock, DefaultGeneratorConfig())
	if _, err := g.Generate(context.Background(), GenerateInput{Skill: testSkill, Difficulty: 1}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGeneratorProvenance(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider(), DefaultGeneratorConfig())
	if g.GeneratorID() != "mock" {
		t.Errorf("GeneratorID = %q, want mock", g.GeneratorID())
	}
	if g.PromptVersion() == "" {
		t.Error("expected a prompt version")
	}
}
