// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CalibrationAnswersColumns holds the columns for the "calibration_answers" table.
	CalibrationAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "selected_option", Type: field.TypeInt},
		{Name: "correct_option", Type: field.TypeInt},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "answered_at", Type: field.TypeTime},
	}
	// CalibrationAnswersTable holds the schema information for the "calibration_answers" table.
	CalibrationAnswersTable = &schema.Table{
		Name:       "calibration_answers",
		Columns:    CalibrationAnswersColumns,
		PrimaryKey: []*schema.Column{CalibrationAnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calibrationanswer_user_id_skill_id_difficulty",
				Unique:  true,
				Columns: []*schema.Column{CalibrationAnswersColumns[1], CalibrationAnswersColumns[2], CalibrationAnswersColumns[3]},
			},
			{
				Name:    "calibrationanswer_user_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{CalibrationAnswersColumns[1], CalibrationAnswersColumns[2]},
			},
		},
	}
	// CalibrationQuestionsColumns holds the columns for the "calibration_questions" table.
	CalibrationQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_option_index", Type: field.TypeInt},
		{Name: "explanation", Type: field.TypeString, Default: ""},
	}
	// CalibrationQuestionsTable holds the schema information for the "calibration_questions" table.
	CalibrationQuestionsTable = &schema.Table{
		Name:       "calibration_questions",
		Columns:    CalibrationQuestionsColumns,
		PrimaryKey: []*schema.Column{CalibrationQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calibrationquestion_skill_id_difficulty",
				Unique:  true,
				Columns: []*schema.Column{CalibrationQuestionsColumns[1], CalibrationQuestionsColumns[2]},
			},
			{
				Name:    "calibrationquestion_skill_id",
				Unique:  false,
				Columns: []*schema.Column{CalibrationQuestionsColumns[1]},
			},
		},
	}
	// CalibrationStatesColumns holds the columns for the "calibration_states" table.
	CalibrationStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed"}, Default: "pending"},
		{Name: "questions_generated_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "calculated_difficulty_target", Type: field.TypeInt, Nullable: true},
	}
	// CalibrationStatesTable holds the schema information for the "calibration_states" table.
	CalibrationStatesTable = &schema.Table{
		Name:       "calibration_states",
		Columns:    CalibrationStatesColumns,
		PrimaryKey: []*schema.Column{CalibrationStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calibrationstate_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{CalibrationStatesColumns[1], CalibrationStatesColumns[2]},
			},
		},
	}
	// ChallengesColumns holds the columns for the "challenges" table.
	ChallengesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_option_index", Type: field.TypeInt},
		{Name: "explanation", Type: field.TypeString, Default: ""},
		{Name: "generator_id", Type: field.TypeString, Default: ""},
		{Name: "prompt_version", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChallengesTable holds the schema information for the "challenges" table.
	ChallengesTable = &schema.Table{
		Name:       "challenges",
		Columns:    ChallengesColumns,
		PrimaryKey: []*schema.Column{ChallengesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challenge_user_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengesColumns[2], ChallengesColumns[1]},
			},
			{
				Name:    "challenge_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChallengesColumns[10]},
			},
		},
	}
	// ExecutionTraceEventsColumns holds the columns for the "execution_trace_events" table.
	ExecutionTraceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "operation", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "skill_id", Type: field.TypeString, Default: ""},
		{Name: "challenge_id", Type: field.TypeString, Default: ""},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "detail", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// ExecutionTraceEventsTable holds the schema information for the "execution_trace_events" table.
	ExecutionTraceEventsTable = &schema.Table{
		Name:       "execution_trace_events",
		Columns:    ExecutionTraceEventsColumns,
		PrimaryKey: []*schema.Column{ExecutionTraceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executiontraceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExecutionTraceEventsColumns[1]},
			},
			{
				Name:    "executiontraceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExecutionTraceEventsColumns[2]},
			},
			{
				Name:    "executiontraceevent_operation",
				Unique:  false,
				Columns: []*schema.Column{ExecutionTraceEventsColumns[3]},
			},
			{
				Name:    "executiontraceevent_success",
				Unique:  false,
				Columns: []*schema.Column{ExecutionTraceEventsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PerformanceStatesColumns holds the columns for the "performance_states" table.
	PerformanceStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "difficulty_target", Type: field.TypeInt, Default: 0},
		{Name: "streak_correct", Type: field.TypeInt, Default: 0},
		{Name: "streak_incorrect", Type: field.TypeInt, Default: 0},
		{Name: "attempts_total", Type: field.TypeInt, Default: 0},
		{Name: "correct_total", Type: field.TypeInt, Default: 0},
		{Name: "last_challenged_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_result", Type: field.TypeEnum, Nullable: true, Enums: []string{"correct", "incorrect", "ignored"}},
	}
	// PerformanceStatesTable holds the schema information for the "performance_states" table.
	PerformanceStatesTable = &schema.Table{
		Name:       "performance_states",
		Columns:    PerformanceStatesColumns,
		PrimaryKey: []*schema.Column{PerformanceStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performancestate_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{PerformanceStatesColumns[1], PerformanceStatesColumns[2]},
			},
		},
	}
	// PushEventsColumns holds the columns for the "push_events" table.
	PushEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "challenge_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sent", "delivered", "failed", "opened"}, Default: "sent"},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// PushEventsTable holds the schema information for the "push_events" table.
	PushEventsTable = &schema.Table{
		Name:       "push_events",
		Columns:    PushEventsColumns,
		PrimaryKey: []*schema.Column{PushEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pushevent_status",
				Unique:  false,
				Columns: []*schema.Column{PushEventsColumns[2]},
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CalibrationAnswersTable,
		CalibrationQuestionsTable,
		CalibrationStatesTable,
		ChallengesTable,
		ExecutionTraceEventsTable,
		LlmRequestEventsTable,
		PerformanceStatesTable,
		PushEventsTable,
		SkillsTable,
	}
)

func init() {
}
