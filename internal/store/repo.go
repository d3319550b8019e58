package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by point lookups when the row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique constraint.
// The constraint is the authoritative write-once guard for rows like
// calibration answers; callers map it to their own domain error.
var ErrDuplicate = errors.New("duplicate row")

// Skill is immutable reference data for a learnable skill.
type Skill struct {
	ID          string
	Name        string
	Description string
}

// LastResult is the outcome of the most recent steady-state challenge.
type LastResult string

const (
	ResultCorrect   LastResult = "correct"
	ResultIncorrect LastResult = "incorrect"
	ResultIgnored   LastResult = "ignored"
)

// PerformanceState is one user's running performance on one skill.
// DifficultyTarget 0 means uncalibrated. LastResult "" means the user
// has not answered a steady-state challenge yet.
type PerformanceState struct {
	UserID           string
	SkillID          string
	DifficultyTarget int
	StreakCorrect    int
	StreakIncorrect  int
	AttemptsTotal    int
	CorrectTotal     int
	LastChallengedAt *time.Time
	LastResult       LastResult
}

// CalibrationQuestion is one probe question in a skill's battery,
// keyed by (SkillID, Difficulty) and shared across users.
type CalibrationQuestion struct {
	SkillID            string
	Difficulty         int
	Question           string
	Options            []string
	CorrectOptionIndex int
	Explanation        string
}

// CalibrationStatus is a calibration state machine position.
type CalibrationStatus string

const (
	CalibrationPending    CalibrationStatus = "pending"
	CalibrationInProgress CalibrationStatus = "in_progress"
	CalibrationCompleted  CalibrationStatus = "completed"
)

// CalibrationState is the per-(user, skill) calibration lifecycle record.
type CalibrationState struct {
	ID                         string
	UserID                     string
	SkillID                    string
	Status                     CalibrationStatus
	QuestionsGeneratedAt       *time.Time
	CompletedAt                *time.Time
	CalculatedDifficultyTarget *int
}

// CalibrationAnswer is one write-once probe answer.
type CalibrationAnswer struct {
	UserID         string
	SkillID        string
	Difficulty     int
	SelectedOption int
	CorrectOption  int
	IsCorrect      bool
	ResponseTimeMs *int64
	AnsweredAt     time.Time
}

// Challenge is a quality-gated, persisted steady-state challenge.
type Challenge struct {
	ID                 string
	SkillID            string
	UserID             string
	Difficulty         int
	Question           string
	Options            []string
	CorrectOptionIndex int
	Explanation        string
	GeneratorID        string
	PromptVersion      string
	CreatedAt          time.Time
}

// PushStatus is a push event delivery status.
type PushStatus string

const (
	PushSent      PushStatus = "sent"
	PushDelivered PushStatus = "delivered"
	PushFailed    PushStatus = "failed"
	PushOpened    PushStatus = "opened"
)

// PushEvent tracks delivery of one challenge, 1:1.
type PushEvent struct {
	ChallengeID string
	Status      PushStatus
	SentAt      time.Time
}

// SkillRepo provides access to the skill catalog.
type SkillRepo interface {
	// Get returns the skill or ErrNotFound.
	Get(ctx context.Context, id string) (*Skill, error)

	// List returns all skills ordered by ID.
	List(ctx context.Context) ([]Skill, error)

	// Upsert creates or replaces a skill (administrative seeding).
	Upsert(ctx context.Context, s *Skill) error
}

// PerformanceRepo manages per-(user, skill) performance state.
type PerformanceRepo interface {
	// Get returns the state, or nil if the pair has never been enrolled.
	Get(ctx context.Context, userID, skillID string) (*PerformanceState, error)

	// GetOrCreate returns the state, inserting a zero-valued row if absent.
	GetOrCreate(ctx context.Context, userID, skillID string) (*PerformanceState, error)

	// Mutate applies fn to the state inside a single transaction,
	// creating the row first if it does not exist. The returned state
	// reflects fn's changes.
	Mutate(ctx context.Context, userID, skillID string, fn func(*PerformanceState)) (*PerformanceState, error)
}

// CalibrationRepo manages calibration questions, state, and answers.
type CalibrationRepo interface {
	// QuestionsBySkill returns a skill's probe questions ordered by difficulty.
	QuestionsBySkill(ctx context.Context, skillID string) ([]CalibrationQuestion, error)

	// QuestionByDifficulty returns one probe question or ErrNotFound.
	QuestionByDifficulty(ctx context.Context, skillID string, difficulty int) (*CalibrationQuestion, error)

	// UpsertQuestion creates or replaces the question keyed on
	// (SkillID, Difficulty). Last writer wins.
	UpsertQuestion(ctx context.Context, q *CalibrationQuestion) error

	// GetState returns the calibration state, or nil if none exists.
	GetState(ctx context.Context, userID, skillID string) (*CalibrationState, error)

	// GetOrCreateState returns the state, inserting a pending row if absent.
	GetOrCreateState(ctx context.Context, userID, skillID string) (*CalibrationState, error)

	// UpdateState persists mutable fields of an existing state.
	UpdateState(ctx context.Context, st *CalibrationState) error

	// InsertAnswer appends a write-once answer. Returns ErrDuplicate if
	// an answer already exists for (UserID, SkillID, Difficulty).
	InsertAnswer(ctx context.Context, a *CalibrationAnswer) error

	// Answers returns all recorded answers for the pair, ordered by difficulty.
	Answers(ctx context.Context, userID, skillID string) ([]CalibrationAnswer, error)

	// Complete marks the state completed with the computed target and
	// seeds PerformanceState.DifficultyTarget in the same transaction.
	Complete(ctx context.Context, userID, skillID string, target int) (*CalibrationState, error)
}

// ChallengeRepo manages challenges and their push events.
type ChallengeRepo interface {
	// CreateWithPush persists the challenge and its initial "sent" push
	// event in one transaction, and returns the stored challenge with
	// its assigned ID.
	CreateWithPush(ctx context.Context, c *Challenge) (*Challenge, error)

	// Get returns a challenge by ID or ErrNotFound.
	Get(ctx context.Context, id string) (*Challenge, error)

	// UpdatePushStatus transitions the push event for a challenge.
	UpdatePushStatus(ctx context.Context, challengeID string, status PushStatus) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// ExecutionTraceData captures one engine operation for the trace sink.
type ExecutionTraceData struct {
	Operation    string
	UserID       string
	SkillID      string
	ChallengeID  string
	Success      bool
	ErrorMessage string
	DurationMs   int64
	Detail       string
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter LLM events by purpose ("" = all)
}

// TraceRepo is the durable observability sink. Callers treat appends
// as fire-and-forget: a failed write is reported to stderr at most
// and never affects the calling operation.
type TraceRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendExecution records an engine operation trace.
	AppendExecution(ctx context.Context, data ExecutionTraceData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}
