package quality

import (
	"fmt"
	"strings"

	"github.com/skillissue/engine/internal/challenge"
)

const judgeSystemPrompt = `You are an expert educator evaluating the quality of a multiple-choice question. Rate each dimension from 0 to 10, where 0 is completely failing and 10 is excellent, and give a brief reason for each score.`

var optionLetters = [4]string{"A", "B", "C", "D"}

// EvalContext describes what the candidate was generated for.
type EvalContext struct {
	SkillName        string
	SkillDescription string
	TargetDifficulty int
}

// buildJudgeMessage renders the evaluation request for one candidate.
func buildJudgeMessage(c *challenge.Candidate, ec EvalContext) string {
	var b strings.Builder

	b.WriteString("## Challenge to Evaluate\n")
	fmt.Fprintf(&b, "Skill Being Tested: %s\n", ec.SkillName)
	fmt.Fprintf(&b, "Skill Description: %s\n", ec.SkillDescription)
	fmt.Fprintf(&b, "Target Difficulty: %d/10\n\n", ec.TargetDifficulty)

	fmt.Fprintf(&b, "Question: %s\n", c.Question)
	b.WriteString("Options:\n")
	for i, opt := range c.Options {
		letter := "?"
		if i < len(optionLetters) {
			letter = optionLetters[i]
		}
		fmt.Fprintf(&b, "%s) %s\n", letter, opt)
	}
	if c.CorrectAnswerIndex >= 0 && c.CorrectAnswerIndex < len(c.Options) {
		fmt.Fprintf(&b, "Correct Answer: %s) %s\n",
			optionLetters[c.CorrectAnswerIndex], c.Options[c.CorrectAnswerIndex])
	}
	fmt.Fprintf(&b, "Explanation: %s\n\n", c.Explanation)

	b.WriteString("## Evaluation Criteria\n")
	b.WriteString("1. CLARITY: Is the question clear and unambiguous? Could a competent person misinterpret what's being asked?\n")
	fmt.Fprintf(&b, "2. DIFFICULTY_ALIGNMENT: Does the question's complexity match the target difficulty of %d/10? Consider vocabulary level, required knowledge depth, and cognitive load.\n", ec.TargetDifficulty)
	b.WriteString("3. DISTRACTOR_QUALITY: Are the wrong options plausible enough to require real knowledge to eliminate, but clearly incorrect to someone who understands the material?\n")
	b.WriteString("4. EDUCATIONAL_VALUE: Does the explanation effectively teach WHY the correct answer is right?\n")
	fmt.Fprintf(&b, "5. SKILL_RELEVANCE: Does this question genuinely test competence in %q as described?\n\n", ec.SkillName)

	b.WriteString("Return ALL 5 scores and ALL 5 reasons.")

	return b.String()
}
