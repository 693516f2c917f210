package papergen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert in creating JEE Main-style multiple-choice questions.

Rules:
- Generate exactly the requested number of questions for the given subject, topics, and difficulty.
- Each question must have exactly 4 options with exactly one correct answer.
- Use LaTeX formatting for math equations where necessary, delimited with $...$. Make sure the equations render well in a display format.
- Distractors should reflect plausible mistakes, not arbitrary values.
- Spread the questions across the listed topics rather than clustering on one.
- Include a brief worked explanation for each question where it helps understanding.`

// buildUserMessage renders the Request as the user turn of the prompt.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Topics: %s\n", req.TopicsString())
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", req.NumQuestions)

	return b.String()
}
