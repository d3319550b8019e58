package challenge

import (
	"fmt"
	"strings"
)

// promptVersion is persisted with every challenge so stored content
// can be traced back to the prompt revision that produced it.
const promptVersion = "mcq-v2"

const systemPrompt = `You are an expert educator creating multiple-choice challenges for an adaptive learning platform.

Rules:
- Generate a single multiple-choice question that tests the given skill at the given difficulty.
- Difficulty runs from 1 (a newcomer should get it right) to 10 (an expert has to think).
- The question must be clear, self-contained, and answerable without external context.
- Provide exactly 4 options. Exactly one is correct. No "all of the above" or "none of the above".
- Distractors must be plausible enough to require real knowledge to eliminate, but clearly
  incorrect to someone who understands the material. Base them on common misconceptions,
  not random values.
- Options must be distinct from each other.
- The explanation must teach WHY the correct answer is right, not just restate it.
- Plain text only. No markdown, no LaTeX.`

// buildUserMessage constructs the generation request for one candidate.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skill: %s\n", input.Skill.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Skill.Description)
	fmt.Fprintf(&b, "Target difficulty: %d/10\n", input.Difficulty)
	b.WriteString("\nGenerate one multiple-choice challenge.")

	return b.String()
}
