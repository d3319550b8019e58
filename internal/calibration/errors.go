package calibration

import "errors"

// State-invariant violations. These are the only calibration failures
// reported to the caller as errors; everything content-related
// degrades to a "not ready" result instead.
var (
	// ErrSkillNotFound means the skill does not exist in the catalog.
	ErrSkillNotFound = errors.New("skill not found")

	// ErrQuestionNotFound means no probe question exists at the
	// requested difficulty for the skill.
	ErrQuestionNotFound = errors.New("calibration question not found")

	// ErrAlreadyAnswered means an answer is already recorded for the
	// (user, skill, difficulty) triple. Answers are write-once.
	ErrAlreadyAnswered = errors.New("calibration answer already recorded")

	// ErrNoAnswers means completion was requested before any answer
	// was recorded.
	ErrNoAnswers = errors.New("no calibration answers recorded")
)
