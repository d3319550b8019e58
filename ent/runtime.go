// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/skillissue/engine/ent/calibrationanswer"
	"github.com/skillissue/engine/ent/calibrationquestion"
	"github.com/skillissue/engine/ent/calibrationstate"
	"github.com/skillissue/engine/ent/challenge"
	"github.com/skillissue/engine/ent/executiontraceevent"
	"github.com/skillissue/engine/ent/llmrequestevent"
	"github.com/skillissue/engine/ent/performancestate"
	"github.com/skillissue/engine/ent/pushevent"
	"github.com/skillissue/engine/ent/schema"
	"github.com/skillissue/engine/ent/skill"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	calibrationanswerFields := schema.CalibrationAnswer{}.Fields()
	_ = calibrationanswerFields
	// calibrationanswerDescUserID is the schema descriptor for user_id field.
	calibrationanswerDescUserID := calibrationanswerFields[0].Descriptor()
	// calibrationanswer.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	calibrationanswer.UserIDValidator = calibrationanswerDescUserID.Validators[0].(func(string) error)
	// calibrationanswerDescSkillID is the schema descriptor for skill_id field.
	calibrationanswerDescSkillID := calibrationanswerFields[1].Descriptor()
	// calibrationanswer.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	calibrationanswer.SkillIDValidator = calibrationanswerDescSkillID.Validators[0].(func(string) error)
	// calibrationanswerDescDifficulty is the schema descriptor for difficulty field.
	calibrationanswerDescDifficulty := calibrationanswerFields[2].Descriptor()
	// calibrationanswer.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	calibrationanswer.DifficultyValidator = func() func(int) error {
		validators := calibrationanswerDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calibrationanswerDescSelectedOption is the schema descriptor for selected_option field.
	calibrationanswerDescSelectedOption := calibrationanswerFields[3].Descriptor()
	// calibrationanswer.SelectedOptionValidator is a validator for the "selected_option" field. It is called by the builders before save.
	calibrationanswer.SelectedOptionValidator = func() func(int) error {
		validators := calibrationanswerDescSelectedOption.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(selected_option int) error {
			for _, fn := range fns {
				if err := fn(selected_option); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calibrationanswerDescCorrectOption is the schema descriptor for correct_option field.
	calibrationanswerDescCorrectOption := calibrationanswerFields[4].Descriptor()
	// calibrationanswer.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	calibrationanswer.CorrectOptionValidator = func() func(int) error {
		validators := calibrationanswerDescCorrectOption.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(correct_option int) error {
			for _, fn := range fns {
				if err := fn(correct_option); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calibrationanswerDescAnsweredAt is the schema descriptor for answered_at field.
	calibrationanswerDescAnsweredAt := calibrationanswerFields[7].Descriptor()
	// calibrationanswer.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	calibrationanswer.DefaultAnsweredAt = calibrationanswerDescAnsweredAt.Default.(func() time.Time)
	calibrationquestionFields := schema.CalibrationQuestion{}.Fields()
	_ = calibrationquestionFields
	// calibrationquestionDescSkillID is the schema descriptor for skill_id field.
	calibrationquestionDescSkillID := calibrationquestionFields[0].Descriptor()
	// calibrationquestion.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	calibrationquestion.SkillIDValidator = calibrationquestionDescSkillID.Validators[0].(func(string) error)
	// calibrationquestionDescDifficulty is the schema descriptor for difficulty field.
	calibrationquestionDescDifficulty := calibrationquestionFields[1].Descriptor()
	// calibrationquestion.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	calibrationquestion.DifficultyValidator = func() func(int) error {
		validators := calibrationquestionDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calibrationquestionDescQuestion is the schema descriptor for question field.
	calibrationquestionDescQuestion := calibrationquestionFields[2].Descriptor()
	// calibrationquestion.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	calibrationquestion.QuestionValidator = calibrationquestionDescQuestion.Validators[0].(func(string) error)
	// calibrationquestionDescCorrectOptionIndex is the schema descriptor for correct_option_index field.
	calibrationquestionDescCorrectOptionIndex := calibrationquestionFields[4].Descriptor()
	// calibrationquestion.CorrectOptionIndexValidator is a validator for the "correct_option_index" field. It is called by the builders before save.
	calibrationquestion.CorrectOptionIndexValidator = func() func(int) error {
		validators := calibrationquestionDescCorrectOptionIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(correct_option_index int) error {
			for _, fn := range fns {
				if err := fn(correct_option_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calibrationquestionDescExplanation is the schema descriptor for explanation field.
	calibrationquestionDescExplanation := calibrationquestionFields[5].Descriptor()
	// calibrationquestion.DefaultExplanation holds the default value on creation for the explanation field.
	calibrationquestion.DefaultExplanation = calibrationquestionDescExplanation.Default.(string)
	calibrationstateFields := schema.CalibrationState{}.Fields()
	_ = calibrationstateFields
	// calibrationstateDescUserID is the schema descriptor for user_id field.
	calibrationstateDescUserID := calibrationstateFields[1].Descriptor()
	// calibrationstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	calibrationstate.UserIDValidator = calibrationstateDescUserID.Validators[0].(func(string) error)
	// calibrationstateDescSkillID is the schema descriptor for skill_id field.
	calibrationstateDescSkillID := calibrationstateFields[2].Descriptor()
	// calibrationstate.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	calibrationstate.SkillIDValidator = calibrationstateDescSkillID.Validators[0].(func(string) error)
	// calibrationstateDescCalculatedDifficultyTarget is the schema descriptor for calculated_difficulty_target field.
	calibrationstateDescCalculatedDifficultyTarget := calibrationstateFields[6].Descriptor()
	// calibrationstate.CalculatedDifficultyTargetValidator is a validator for the "calculated_difficulty_target" field. It is called by the builders before save.
	calibrationstate.CalculatedDifficultyTargetValidator = func() func(int) error {
		validators := calibrationstateDescCalculatedDifficultyTarget.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(calculated_difficulty_target int) error {
			for _, fn := range fns {
				if err := fn(calculated_difficulty_target); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// calibrationstateDescID is the schema descriptor for id field.
	calibrationstateDescID := calibrationstateFields[0].Descriptor()
	// calibrationstate.DefaultID holds the default value on creation for the id field.
	calibrationstate.DefaultID = calibrationstateDescID.Default.(func() string)
	// calibrationstate.IDValidator is a validator for the "id" field. It is called by the builders before save.
	calibrationstate.IDValidator = calibrationstateDescID.Validators[0].(func(string) error)
	challengeFields := schema.Challenge{}.Fields()
	_ = challengeFields
	// challengeDescSkillID is the schema descriptor for skill_id field.
	challengeDescSkillID := challengeFields[1].Descriptor()
	// challenge.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	challenge.SkillIDValidator = challengeDescSkillID.Validators[0].(func(string) error)
	// challengeDescUserID is the schema descriptor for user_id field.
	challengeDescUserID := challengeFields[2].Descriptor()
	// challenge.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	challenge.UserIDValidator = challengeDescUserID.Validators[0].(func(string) error)
	// challengeDescDifficulty is the schema descriptor for difficulty field.
	challengeDescDifficulty := challengeFields[3].Descriptor()
	// challenge.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	challenge.DifficultyValidator = func() func(int) error {
		validators := challengeDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// challengeDescQuestion is the schema descriptor for question field.
	challengeDescQuestion := challengeFields[4].Descriptor()
	// challenge.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	challenge.QuestionValidator = challengeDescQuestion.Validators[0].(func(string) error)
	// challengeDescCorrectOptionIndex is the schema descriptor for correct_option_index field.
	challengeDescCorrectOptionIndex := challengeFields[6].Descriptor()
	// challenge.CorrectOptionIndexValidator is a validator for the "correct_option_index" field. It is called by the builders before save.
	challenge.CorrectOptionIndexValidator = func() func(int) error {
		validators := challengeDescCorrectOptionIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(correct_option_index int) error {
			for _, fn := range fns {
				if err := fn(correct_option_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// challengeDescExplanation is the schema descriptor for explanation field.
	challengeDescExplanation := challengeFields[7].Descriptor()
	// challenge.DefaultExplanation holds the default value on creation for the explanation field.
	challenge.DefaultExplanation = challengeDescExplanation.Default.(string)
	// challengeDescGeneratorID is the schema descriptor for generator_id field.
	challengeDescGeneratorID := challengeFields[8].Descriptor()
	// challenge.DefaultGeneratorID holds the default value on creation for the generator_id field.
	challenge.DefaultGeneratorID = challengeDescGeneratorID.Default.(string)
	// challengeDescPromptVersion is the schema descriptor for prompt_version field.
	challengeDescPromptVersion := challengeFields[9].Descriptor()
	// challenge.DefaultPromptVersion holds the default value on creation for the prompt_version field.
	challenge.DefaultPromptVersion = challengeDescPromptVersion.Default.(string)
	// challengeDescCreatedAt is the schema descriptor for created_at field.
	challengeDescCreatedAt := challengeFields[10].Descriptor()
	// challenge.DefaultCreatedAt holds the default value on creation for the created_at field.
	challenge.DefaultCreatedAt = challengeDescCreatedAt.Default.(func() time.Time)
	// challengeDescID is the schema descriptor for id field.
	challengeDescID := challengeFields[0].Descriptor()
	// challenge.DefaultID holds the default value on creation for the id field.
	challenge.DefaultID = challengeDescID.Default.(func() string)
	// challenge.IDValidator is a validator for the "id" field. It is called by the builders before save.
	challenge.IDValidator = challengeDescID.Validators[0].(func(string) error)
	executiontraceeventMixin := schema.ExecutionTraceEvent{}.Mixin()
	executiontraceeventMixinFields0 := executiontraceeventMixin[0].Fields()
	_ = executiontraceeventMixinFields0
	executiontraceeventFields := schema.ExecutionTraceEvent{}.Fields()
	_ = executiontraceeventFields
	// executiontraceeventDescTimestamp is the schema descriptor for timestamp field.
	executiontraceeventDescTimestamp := executiontraceeventMixinFields0[1].Descriptor()
	// executiontraceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	executiontraceevent.DefaultTimestamp = executiontraceeventDescTimestamp.Default.(func() time.Time)
	// executiontraceeventDescUserID is the schema descriptor for user_id field.
	executiontraceeventDescUserID := executiontraceeventFields[1].Descriptor()
	// executiontraceevent.DefaultUserID holds the default value on creation for the user_id field.
	executiontraceevent.DefaultUserID = executiontraceeventDescUserID.Default.(string)
	// executiontraceeventDescSkillID is the schema descriptor for skill_id field.
	executiontraceeventDescSkillID := executiontraceeventFields[2].Descriptor()
	// executiontraceevent.DefaultSkillID holds the default value on creation for the skill_id field.
	executiontraceevent.DefaultSkillID = executiontraceeventDescSkillID.Default.(string)
	// executiontraceeventDescChallengeID is the schema descriptor for challenge_id field.
	executiontraceeventDescChallengeID := executiontraceeventFields[3].Descriptor()
	// executiontraceevent.DefaultChallengeID holds the default value on creation for the challenge_id field.
	executiontraceevent.DefaultChallengeID = executiontraceeventDescChallengeID.Default.(string)
	// executiontraceeventDescErrorMessage is the schema descriptor for error_message field.
	executiontraceeventDescErrorMessage := executiontraceeventFields[5].Descriptor()
	// executiontraceevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	executiontraceevent.DefaultErrorMessage = executiontraceeventDescErrorMessage.Default.(string)
	// executiontraceeventDescDurationMs is the schema descriptor for duration_ms field.
	executiontraceeventDescDurationMs := executiontraceeventFields[6].Descriptor()
	// executiontraceevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	executiontraceevent.DefaultDurationMs = executiontraceeventDescDurationMs.Default.(int64)
	// executiontraceeventDescDetail is the schema descriptor for detail field.
	executiontraceeventDescDetail := executiontraceeventFields[7].Descriptor()
	// executiontraceevent.DefaultDetail holds the default value on creation for the detail field.
	executiontraceevent.DefaultDetail = executiontraceeventDescDetail.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	performancestateFields := schema.PerformanceState{}.Fields()
	_ = performancestateFields
	// performancestateDescUserID is the schema descriptor for user_id field.
	performancestateDescUserID := performancestateFields[0].Descriptor()
	// performancestate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	performancestate.UserIDValidator = performancestateDescUserID.Validators[0].(func(string) error)
	// performancestateDescSkillID is the schema descriptor for skill_id field.
	performancestateDescSkillID := performancestateFields[1].Descriptor()
	// performancestate.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	performancestate.SkillIDValidator = performancestateDescSkillID.Validators[0].(func(string) error)
	// performancestateDescDifficultyTarget is the schema descriptor for difficulty_target field.
	performancestateDescDifficultyTarget := performancestateFields[2].Descriptor()
	// performancestate.DefaultDifficultyTarget holds the default value on creation for the difficulty_target field.
	performancestate.DefaultDifficultyTarget = performancestateDescDifficultyTarget.Default.(int)
	// performancestate.DifficultyTargetValidator is a validator for the "difficulty_target" field. It is called by the builders before save.
	performancestate.DifficultyTargetValidator = func() func(int) error {
		validators := performancestateDescDifficultyTarget.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty_target int) error {
			for _, fn := range fns {
				if err := fn(difficulty_target); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// performancestateDescStreakCorrect is the schema descriptor for streak_correct field.
	performancestateDescStreakCorrect := performancestateFields[3].Descriptor()
	// performancestate.DefaultStreakCorrect holds the default value on creation for the streak_correct field.
	performancestate.DefaultStreakCorrect = performancestateDescStreakCorrect.Default.(int)
	// performancestate.StreakCorrectValidator is a validator for the "streak_correct" field. It is called by the builders before save.
	performancestate.StreakCorrectValidator = performancestateDescStreakCorrect.Validators[0].(func(int) error)
	// performancestateDescStreakIncorrect is the schema descriptor for streak_incorrect field.
	performancestateDescStreakIncorrect := performancestateFields[4].Descriptor()
	// performancestate.DefaultStreakIncorrect holds the default value on creation for the streak_incorrect field.
	performancestate.DefaultStreakIncorrect = performancestateDescStreakIncorrect.Default.(int)
	// performancestate.StreakIncorrectValidator is a validator for the "streak_incorrect" field. It is called by the builders before save.
	performancestate.StreakIncorrectValidator = performancestateDescStreakIncorrect.Validators[0].(func(int) error)
	// performancestateDescAttemptsTotal is the schema descriptor for attempts_total field.
	performancestateDescAttemptsTotal := performancestateFields[5].Descriptor()
	// performancestate.DefaultAttemptsTotal holds the default value on creation for the attempts_total field.
	performancestate.DefaultAttemptsTotal = performancestateDescAttemptsTotal.Default.(int)
	// performancestate.AttemptsTotalValidator is a validator for the "attempts_total" field. It is called by the builders before save.
	performancestate.AttemptsTotalValidator = performancestateDescAttemptsTotal.Validators[0].(func(int) error)
	// performancestateDescCorrectTotal is the schema descriptor for correct_total field.
	performancestateDescCorrectTotal := performancestateFields[6].Descriptor()
	// performancestate.DefaultCorrectTotal holds the default value on creation for the correct_total field.
	performancestate.DefaultCorrectTotal = performancestateDescCorrectTotal.Default.(int)
	// performancestate.CorrectTotalValidator is a validator for the "correct_total" field. It is called by the builders before save.
	performancestate.CorrectTotalValidator = performancestateDescCorrectTotal.Validators[0].(func(int) error)
	pusheventFields := schema.PushEvent{}.Fields()
	_ = pusheventFields
	// pusheventDescChallengeID is the schema descriptor for challenge_id field.
	pusheventDescChallengeID := pusheventFields[0].Descriptor()
	// pushevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	pushevent.ChallengeIDValidator = pusheventDescChallengeID.Validators[0].(func(string) error)
	// pusheventDescSentAt is the schema descriptor for sent_at field.
	pusheventDescSentAt := pusheventFields[2].Descriptor()
	// pushevent.DefaultSentAt holds the default value on creation for the sent_at field.
	pushevent.DefaultSentAt = pusheventDescSentAt.Default.(func() time.Time)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillFields[1].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = skillDescName.Validators[0].(func(string) error)
	// skillDescDescription is the schema descriptor for description field.
	skillDescDescription := skillFields[2].Descriptor()
	// skill.DefaultDescription holds the default value on creation for the description field.
	skill.DefaultDescription = skillDescDescription.Default.(string)
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillFields[0].Descriptor()
	// skill.IDValidator is a validator for the "id" field. It is called by the builders before save.
	skill.IDValidator = skillDescID.Validators[0].(func(string) error)
}
