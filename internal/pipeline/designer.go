// Package pipeline orchestrates steady-state challenge design: content
// generation, structural validation, the quality gate, persistence,
// and push delivery.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skillissue/engine/internal/challenge"
	"github.com/skillissue/engine/internal/llm"
	"github.com/skillissue/engine/internal/notify"
	"github.com/skillissue/engine/internal/quality"
	"github.com/skillissue/engine/internal/store"
)

// Designer runs the challenge design pipeline for one (user, skill)
// pair at a time. Safe for concurrent use across pairs.
type Designer struct {
	skills     store.SkillRepo
	perf       store.PerformanceRepo
	challenges store.ChallengeRepo
	traces     store.TraceRepo
	generator  challenge.Generator
	gate       *quality.Gate
	notifier   notify.Notifier
}

// NewDesigner creates a Designer. The notifier may be nil, in which
// case persisted challenges are not delivered anywhere.
func NewDesigner(
	skills store.SkillRepo,
	perf store.PerformanceRepo,
	challenges store.ChallengeRepo,
	traces store.TraceRepo,
	generator challenge.Generator,
	gate *quality.Gate,
	notifier notify.Notifier,
) *Designer {
	return &Designer{
		skills:     skills,
		perf:       perf,
		challenges: challenges,
		traces:     traces,
		generator:  generator,
		gate:       gate,
		notifier:   notifier,
	}
}

// DesignChallenge produces one quality-gated challenge at the given
// difficulty, persists it together with its push event, and touches
// the pair's performance state.
//
// The contract is "a challenge, or cleanly nothing": an unknown skill
// propagates as an error, but every other failure (generation,
// validation, quality gate, persistence, even a panic in a
// collaborator) is traced and converted to a nil challenge so that a
// scheduler iterating many users never crashes on one of them.
func (d *Designer) DesignChallenge(ctx context.Context, userID, skillID string, difficultyTarget int) (ch *store.Challenge, err error) {
	start := time.Now()

	skill, skillErr := d.skills.Get(ctx, skillID)
	if skillErr != nil {
		return nil, fmt.Errorf("design challenge: load skill %s: %w", skillID, skillErr)
	}

	defer func() {
		if r := recover(); r != nil {
			d.traceFailure(ctx, userID, skillID, start, fmt.Sprintf("panic: %v", r))
			ch, err = nil, nil
		}
	}()

	cand, genErr := d.generator.Generate(
		llm.WithPurpose(ctx, "challenge-gen"),
		challenge.GenerateInput{Skill: *skill, Difficulty: difficultyTarget, UserID: userID},
	)
	if genErr != nil {
		d.traceFailure(ctx, userID, skillID, start, "generation: "+genErr.Error())
		return nil, nil
	}

	if res := challenge.Validate(cand); !res.IsValid {
		d.traceFailure(ctx, userID, skillID, start,
			"structural validation: "+strings.Join(res.Errors, "; "))
		return nil, nil
	}

	verdict := d.gate.Evaluate(ctx, cand, quality.EvalContext{
		SkillName:        skill.Name,
		SkillDescription: skill.Description,
		TargetDifficulty: difficultyTarget,
	})
	if !verdict.Passed {
		d.traceFailure(ctx, userID, skillID, start,
			fmt.Sprintf("quality gate: composite=%.2f reason=%s",
				verdict.CompositeScore, verdict.Reasons["overall"]))
		return nil, nil
	}

	stored, storeErr := d.challenges.CreateWithPush(ctx, &store.Challenge{
		SkillID:            skillID,
		UserID:             userID,
		Difficulty:         difficultyTarget,
		Question:           cand.Question,
		Options:            cand.Options,
		CorrectOptionIndex: cand.CorrectAnswerIndex,
		Explanation:        cand.Explanation,
		GeneratorID:        d.generator.GeneratorID(),
		PromptVersion:      d.generator.PromptVersion(),
	})
	if storeErr != nil {
		d.traceFailure(ctx, userID, skillID, start, "persist: "+storeErr.Error())
		return nil, nil
	}

	if _, touchErr := d.perf.Mutate(ctx, userID, skillID, func(st *store.PerformanceState) {
		now := time.Now().UTC()
		st.LastChallengedAt = &now
	}); touchErr != nil {
		d.traceFailure(ctx, userID, skillID, start, "touch performance state: "+touchErr.Error())
		return nil, nil
	}

	if d.notifier != nil {
		if notifyErr := d.notifier.Notify(ctx, stored); notifyErr != nil {
			fmt.Fprintf(os.Stderr, "warning: notify challenge %s: %v\n", stored.ID, notifyErr)
		}
	}

	d.trace(ctx, store.ExecutionTraceData{
		Operation:   "design-challenge",
		UserID:      userID,
		SkillID:     skillID,
		ChallengeID: stored.ID,
		Success:     true,
		DurationMs:  time.Since(start).Milliseconds(),
		Detail: fmt.Sprintf("difficulty=%d composite=%.2f",
			difficultyTarget, verdict.CompositeScore),
	})

	return stored, nil
}

func (d *Designer) traceFailure(ctx context.Context, userID, skillID string, start time.Time, msg string) {
	d.trace(ctx, store.ExecutionTraceData{
		Operation:    "design-challenge",
		UserID:       userID,
		SkillID:      skillID,
		Success:      false,
		ErrorMessage: msg,
		DurationMs:   time.Since(start).Milliseconds(),
	})
}

func (d *Designer) trace(ctx context.Context, data store.ExecutionTraceData) {
	if d.traces == nil {
		return
	}
	if err := d.traces.AppendExecution(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to trace %s: %v\n", data.Operation, err)
	}
}
