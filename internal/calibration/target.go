package calibration

import (
	"math"

	"github.com/skillissue/engine/internal/store"
)

const (
	// BatterySize is the number of probe questions per skill, one per
	// difficulty level.
	BatterySize = 10

	minDifficulty = 1
	maxDifficulty = 10

	// Accuracy bounds for the one-shot target adjustment.
	raiseThreshold = 0.9
	lowerThreshold = 0.5
)

// Summary is the result of scoring a completed calibration battery.
type Summary struct {
	TotalAnswered            int
	TotalCorrect             int
	Accuracy                 float64
	AverageCorrectDifficulty float64
	Target                   int
}

// Summarize computes the starting difficulty target from recorded
// probe answers. The base target is the rounded mean difficulty of
// the correctly answered questions; very high or very low overall
// accuracy nudges it one step up or down, clamped to [1, 10].
//
// With zero correct answers the mean defaults to the floor of the
// difficulty scale, so such users start at 1.
func Summarize(answers []store.CalibrationAnswer) Summary {
	s := Summary{TotalAnswered: len(answers)}
	if s.TotalAnswered == 0 {
		return s
	}

	difficultySum := 0
	for _, a := range answers {
		if a.IsCorrect {
			s.TotalCorrect++
			difficultySum += a.Difficulty
		}
	}
	s.Accuracy = float64(s.TotalCorrect) / float64(s.TotalAnswered)

	s.AverageCorrectDifficulty = float64(minDifficulty)
	if s.TotalCorrect > 0 {
		s.AverageCorrectDifficulty = float64(difficultySum) / float64(s.TotalCorrect)
	}

	target := int(math.Round(s.AverageCorrectDifficulty))
	switch {
	case s.Accuracy >= raiseThreshold:
		target = min(target+1, maxDifficulty)
	case s.Accuracy < lowerThreshold:
		target = max(target-1, minDifficulty)
	}
	s.Target = target

	return s
}
