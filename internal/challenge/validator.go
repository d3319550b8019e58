package challenge

import "fmt"

// Structural limits for a candidate challenge.
const (
	minQuestionLen = 10
	maxQuestionLen = 500
	maxOptionLen   = 200
	optionCount    = 4
)

// ValidationResult reports every structural rule a candidate violates.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Validate checks a candidate against the structural rules. All rules
// are evaluated, not short-circuited, so a candidate with multiple
// defects reports every violation in one pass. Pure function, never
// panics.
func Validate(c *Candidate) ValidationResult {
	var errs []string

	if n := len(c.Question); n < minQuestionLen || n > maxQuestionLen {
		errs = append(errs, fmt.Sprintf(
			"question must be between %d and %d characters, got %d",
			minQuestionLen, maxQuestionLen, n))
	}

	if len(c.Options) != optionCount {
		errs = append(errs, fmt.Sprintf(
			"must have exactly %d options, got %d", optionCount, len(c.Options)))
	}

	for i, opt := range c.Options {
		if opt == "" {
			errs = append(errs, fmt.Sprintf("option %d is empty", i))
			continue
		}
		if len(opt) > maxOptionLen {
			errs = append(errs, fmt.Sprintf(
				"option %d exceeds %d characters", i, maxOptionLen))
		}
	}

	if c.CorrectAnswerIndex < 0 || c.CorrectAnswerIndex >= optionCount {
		errs = append(errs, fmt.Sprintf(
			"correctAnswerIndex must be between 0 and %d, got %d",
			optionCount-1, c.CorrectAnswerIndex))
	}

	seen := make(map[string]bool, len(c.Options))
	for _, opt := range c.Options {
		if opt != "" && seen[opt] {
			errs = append(errs, fmt.Sprintf("duplicate option %q", opt))
		}
		seen[opt] = true
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
