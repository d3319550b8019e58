package challenge

import (
	"strings"
	"testing"
)

func validCandidate() *Candidate {
	return &Candidate{
		Question:           "What is the time complexity of binary search?",
		Options:            []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"},
		CorrectAnswerIndex: 1,
		Explanation:        "Binary search halves the search space each step.",
	}
}

func TestValidateAccepts(t *testing.T) {
	res := Validate(validCandidate())
	if !res.IsValid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected no errors, got %v", res.Errors)
	}
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Candidate)
		wantErr string
	}{
		{
			name:    "question too short",
			mutate:  func(c *Candidate) { c.Question = "Too short" },
			wantErr: "question must be between 10 and 500 characters",
		},
		{
			name:    "question too long",
			mutate:  func(c *Candidate) { c.Question = strings.Repeat("x", 501) },
			wantErr: "question must be between 10 and 500 characters",
		},
		{
			name:    "three options",
			mutate:  func(c *Candidate) { c.Options = c.Options[:3] },
			wantErr: "must have exactly 4 options, got 3",
		},
		{
			name:    "five options",
			mutate:  func(c *Candidate) { c.Options = append(c.Options, "O(n^2)") },
			wantErr: "must have exactly 4 options, got 5",
		},
		{
			name:    "empty option",
			mutate:  func(c *Candidate) { c.Options[2] = "" },
			wantErr: "option 2 is empty",
		},
		{
			name:    "option too long",
			mutate:  func(c *Candidate) { c.Options[0] = strings.Repeat("y", 201) },
			wantErr: "option 0 exceeds 200 characters",
		},
		{
			name:    "index negative",
			mutate:  func(c *Candidate) { c.CorrectAnswerIndex = -1 },
			wantErr: "correctAnswerIndex must be between 0 and 3, got -1",
		},
		{
			name:    "index out of range",
			mutate:  func(c *Candidate) { c.CorrectAnswerIndex = 4 },
			wantErr: "correctAnswerIndex must be between 0 and 3, got 4",
		},
		{
			name:    "duplicate options",
			mutate:  func(c *Candidate) { c.Options[3] = c.Options[0] },
			wantErr: `duplicate option "O(n)"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(c)

			res := Validate(c)
			if res.IsValid {
				t.Fatal("expected invalid")
			}

			found := false
			for _, e := range res.Errors {
				if strings.Contains(e, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not contain %q", res.Errors, tt.wantErr)
			}
		})
	}
}

// Multiple defects must all be reported in one pass.
func TestValidateReportsAllViolations(t *testing.T) {
	c := &Candidate{
		Question:           "short",
		Options:            []string{"a", "a", ""},
		CorrectAnswerIndex: 7,
	}

	res := Validate(c)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) < 4 {
		t.Errorf("expected at least 4 violations (length, count, empty, index, duplicate), got %d: %v",
			len(res.Errors), res.Errors)
	}
}

func TestValidateEmptyOptionsNotDuplicates(t *testing.T) {
	c := validCandidate()
	c.Options = []string{"", "", "a", "b"}

	res := Validate(c)
	for _, e := range res.Errors {
		if strings.Contains(e, "duplicate") {
			t.Errorf("empty options should not count as duplicates: %v", res.Errors)
		}
	}
}
