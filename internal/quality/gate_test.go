package quality

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/skillissue/engine/internal/challenge"
	"github.com/skillissue/engine/internal/llm"
)

var testEvalContext = EvalContext{
	SkillName:        "Go Concurrency",
	SkillDescription: "Goroutines, channels, and the sync package.",
	TargetDifficulty: 5,
}

func testCandidate() *challenge.Candidate {
	return &challenge.Candidate{
		Question:           "Which primitive synchronizes access to shared state?",
		Options:            []string{"sync.Mutex", "fmt.Println", "os.Exit", "time.Sleep"},
		CorrectAnswerIndex: 0,
		Explanation:        "A mutex serializes access to shared memory.",
	}
}

// judgeJSON renders a complete judge response with every dimension set
// to the same score.
func judgeJSON(score int) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"clarity": %[1]d, "clarityReason": "r",
		"difficultyAlignment": %[1]d, "difficultyReason": "r",
		"distractorQuality": %[1]d, "distractorReason": "r",
		"educationalValue": %[1]d, "educationalReason": "r",
		"skillRelevance": %[1]d, "relevanceReason": "r",
		"overall": "summary"
	}`, score))
}

func TestEvaluatePerfectScoresPass(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: judgeJSON(10)})
	gate := NewGate(mock, DefaultConfig())

	res := gate.Evaluate(context.Background(), testCandidate(), testEvalContext)
	if !res.Passed {
		t.Fatalf("expected pass, got %+v", res)
	}
	if math.Abs(res.CompositeScore-1.0) > 1e-9 {
		t.Errorf("composite = %v, want 1.0", res.CompositeScore)
	}
	if res.Scores.Clarity != 10 || res.Scores.SkillRelevance != 10 {
		t.Errorf("unexpected dimension scores: %+v", res.Scores)
	}
	if res.Reasons["overall"] != "summary" {
		t.Errorf("unexpected overall reason: %q", res.Reasons["overall"])
	}
}

func TestEvaluateMediocreScoresFail(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: judgeJSON(5)})
	gate := NewGate(mock, DefaultConfig())

	res := gate.Evaluate(context.Background(), testCandidate(), testEvalContext)
	if res.Passed {
		t.Fatalf("expected fail at composite %v against threshold %v",
			res.CompositeScore, DefaultConfig().Threshold)
	}
	if math.Abs(res.CompositeScore-0.5) > 1e-9 {
		t.Errorf("composite = %v, want 0.5", res.CompositeScore)
	}
}

// Weighted composite with mixed scores: clarity 10, difficulty 8,
// distractors 6, educational 4, relevance 10.
// 1.0*.20 + 0.8*.25 + 0.6*.20 + 0.4*.15 + 1.0*.20 = 0.78
func TestEvaluateWeightedComposite(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"clarity": 10, "clarityReason": "r",
		"difficultyAlignment": 8, "difficultyReason": "r",
		"distractorQuality": 6, "distractorReason": "r",
		"educationalValue": 4, "educationalReason": "r",
		"skillRelevance": 10, "relevanceReason": "r",
		"overall": "mixed"
	}`)})
	gate := NewGate(mock, DefaultConfig())

	res := gate.Evaluate(context.Background(), testCandidate(), testEvalContext)
	if math.Abs(res.CompositeScore-0.78) > 1e-9 {
		t.Errorf("composite = %v, want 0.78", res.CompositeScore)
	}
	if !res.Passed {
		t.Error("0.78 should pass the 0.70 threshold")
	}
}

func TestEvaluateDisabledSkipsJudge(t *testing.T) {
	mock := llm.NewMockProvider()
	cfg := DefaultConfig()
	cfg.Enabled = false
	gate := NewGate(mock, cfg)

	res := gate.Evaluate(context.Background(), testCandidate(), testEvalContext)
	if !res.Passed {
		t.Fatal("disabled gate must pass")
	}
	if res.CompositeScore != 1.0 {
		t.Errorf("composite = %v, want 1.0", res.CompositeScore)
	}
	if mock.CallCount() != 0 {
		t.Errorf("disabled gate called the judge %d times", mock.CallCount())
	}
}

func TestEvaluateUnparseableAfterRetriesFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`garbage`)},
		llm.MockResponse{Content: json.RawMessage(`still garbage`)},
	)
	gate := NewGate(mock, DefaultConfig()) // MaxRetries: 1

	res := gate.Evaluate(context.Background(), testCandidate(), testEvalContext)
	if res.Passed {
		t.Fatal("unparseable judge output must fail the gate")
	}
	if res.CompositeScore != 0 {
		t.Errorf("composite = %v, want 0", res.CompositeScore)
	}
	if !strings.Contains(res.Reasons["overall"], "unparseable judge response") {
		t.Errorf("reason %q does not name the unparseable failure", res.Reasons["overall"])
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected initial attempt + 1 retry, got %d calls", mock.CallCount())
	}
}

func TestEvaluateRetryThenSuccess(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`garbage`)},
		llm.MockResponse{Content: judgeJSON(9)},
	)
	gate := NewGate(mock, DefaultConfig())

	res := gate.Evaluate(context.Background(), testCandidate(), testEvalContext)
	if !res.Passed {
		t.Fatalf("expected pass after retry, got %+v", res)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestEvaluateClampsOutOfRangeScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"clarity": 15, "clarityReason": "r",
		"difficultyAlignment": -3, "difficultyReason": "r",
		"distractorQuality": 10, "distractorReason": "r",
		"educationalValue": 10, "educationalReason": "r",
		"skillRelevance": 10, "relevanceReason": "r",
		"overall": "out of range"
	}`)})
	gate := NewGate(mock, DefaultConfig())

	res := gate.Evaluate(context.Background(), testCandidate(), testEvalContext)
	if res.Scores.Clarity != 10 {
		t.Errorf("clarity = %d, want clamped to 10", res.Scores.Clarity)
	}
	if res.Scores.DifficultyAlignment != 0 {
		t.Errorf("difficultyAlignment = %d, want clamped to 0", res.Scores.DifficultyAlignment)
	}
}

func TestEvaluateSendsJudgeContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: judgeJSON(10)})
	gate := NewGate(mock, DefaultConfig())

	gate.Evaluate(context.Background(), testCandidate(), testEvalContext)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != JudgeSchema {
		t.Error("expected the judge schema on the request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{testEvalContext.SkillName, "5", testCandidate().Question} {
		if !strings.Contains(msg, want) {
			t.Errorf("judge message missing %q", want)
		}
	}
}
