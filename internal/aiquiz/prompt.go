package aiquiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz generator. Create exactly 5 multiple-choice questions on the given topic.
- Each question must have exactly 4 options labeled A, B, C, D (in order).
- Exactly one option per question must be correct (isCorrect: true).
- Questions should be clear, factual, and appropriately difficult.
- Option text should be concise. Always include a brief explanation for the correct answer (use empty string if the question is self-evident).
- Respond only with a JSON object of the form {"questions": [{"questionText": "...", "options": [{"text": "...", "isCorrect": false}], "explanation": "..."}]}.`

func BuildUserPrompt(topic, extra string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate a quiz on this topic: %s", strings.TrimSpace(topic)))

	if extra = strings.TrimSpace(extra); extra != "" {
		sb.WriteString("\n\nAdditional context: ")
		sb.WriteString(extra)
	}
	return sb.String()
}
