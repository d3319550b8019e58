// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CalibrationAnswer is the predicate function for calibrationanswer builders.
type CalibrationAnswer func(*sql.Selector)

// CalibrationQuestion is the predicate function for calibrationquestion builders.
type CalibrationQuestion func(*sql.Selector)

// CalibrationState is the predicate function for calibrationstate builders.
type CalibrationState func(*sql.Selector)

// Challenge is the predicate function for challenge builders.
type Challenge func(*sql.Selector)

// ExecutionTraceEvent is the predicate function for executiontraceevent builders.
type ExecutionTraceEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PerformanceState is the predicate function for performancestate builders.
type PerformanceState func(*sql.Selector)

// PushEvent is the predicate function for pushevent builders.
type PushEvent func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)
