package calibration

import (
	"math"
	"testing"

	"github.com/skillissue/engine/internal/store"
)

// battery builds a full 10-answer battery where correct[d] marks
// difficulty d as answered correctly.
func battery(correct map[int]bool) []store.CalibrationAnswer {
	answers := make([]store.CalibrationAnswer, 0, BatterySize)
	for d := 1; d <= BatterySize; d++ {
		answers = append(answers, store.CalibrationAnswer{
			Difficulty: d,
			IsCorrect:  correct[d],
		})
	}
	return answers
}

func allCorrect() map[int]bool {
	m := make(map[int]bool)
	for d := 1; d <= BatterySize; d++ {
		m[d] = true
	}
	return m
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		answers     []store.CalibrationAnswer
		wantCorrect int
		wantAcc     float64
		wantAvg     float64
		wantTarget  int
	}{
		{
			// avg 5.5 rounds to 6, accuracy 1.0 raises to 7.
			name:        "all correct",
			answers:     battery(allCorrect()),
			wantCorrect: 10,
			wantAcc:     1.0,
			wantAvg:     5.5,
			wantTarget:  7,
		},
		{
			// avg 1, accuracy 0.1 lowers to 0 then clamps to 1.
			name:        "only easiest correct",
			answers:     battery(map[int]bool{1: true}),
			wantCorrect: 1,
			wantAcc:     0.1,
			wantAvg:     1,
			wantTarget:  1,
		},
		{
			// no correct answers: avg defaults to the floor.
			name:        "none correct",
			answers:     battery(nil),
			wantCorrect: 0,
			wantAcc:     0,
			wantAvg:     1,
			wantTarget:  1,
		},
		{
			// correct at 1-5: avg 3, accuracy 0.5 sits between the
			// thresholds, no adjustment.
			name:        "lower half correct",
			answers:     battery(map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}),
			wantCorrect: 5,
			wantAcc:     0.5,
			wantAvg:     3,
			wantTarget:  3,
		},
		{
			// 9 of 10 correct (missing 10): avg 5, accuracy 0.9 raises to 6.
			name: "nine correct raises",
			answers: battery(map[int]bool{
				1: true, 2: true, 3: true, 4: true, 5: true,
				6: true, 7: true, 8: true, 9: true,
			}),
			wantCorrect: 9,
			wantAcc:     0.9,
			wantAvg:     5,
			wantTarget:  6,
		},
		{
			// correct at 9 and 10 only: avg 9.5 rounds to 10, accuracy
			// 0.2 lowers to 9.
			name:        "hard answers low accuracy",
			answers:     battery(map[int]bool{9: true, 10: true}),
			wantCorrect: 2,
			wantAcc:     0.2,
			wantAvg:     9.5,
			wantTarget:  9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.answers)
			if s.TotalAnswered != len(tt.answers) {
				t.Errorf("TotalAnswered = %d, want %d", s.TotalAnswered, len(tt.answers))
			}
			if s.TotalCorrect != tt.wantCorrect {
				t.Errorf("TotalCorrect = %d, want %d", s.TotalCorrect, tt.wantCorrect)
			}
			if math.Abs(s.Accuracy-tt.wantAcc) > 1e-9 {
				t.Errorf("Accuracy = %v, want %v", s.Accuracy, tt.wantAcc)
			}
			if math.Abs(s.AverageCorrectDifficulty-tt.wantAvg) > 1e-9 {
				t.Errorf("AverageCorrectDifficulty = %v, want %v",
					s.AverageCorrectDifficulty, tt.wantAvg)
			}
			if s.Target != tt.wantTarget {
				t.Errorf("Target = %d, want %d", s.Target, tt.wantTarget)
			}
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalAnswered != 0 || s.Target != 0 {
		t.Errorf("empty summary should be zero-valued, got %+v", s)
	}
}

// Target stays inside [1, 10] for every accuracy/average combination.
func TestSummarizeTargetBounds(t *testing.T) {
	high := battery(allCorrect())
	if s := Summarize(high); s.Target < 1 || s.Target > 10 {
		t.Errorf("target %d out of bounds", s.Target)
	}

	// All correct at difficulty 10 only would be impossible in a full
	// battery, but a partial battery can produce it.
	partial := []store.CalibrationAnswer{{Difficulty: 10, IsCorrect: true}}
	if s := Summarize(partial); s.Target != 10 {
		// avg 10, accuracy 1.0 raises to 11, clamps to 10.
		t.Errorf("target = %d, want clamped 10", s.Target)
	}
}
