package ai

import (
	"fmt"
	"strings"
)

// systemPrompt фиксированная инструкция переписывания. Тон подставляется в пользовательское сообщение.
const systemPrompt = `You rephrase text to be clearer, simpler, and more polite while preserving meaning.
Rules:
- Keep original intent; do not add commitments or change facts.
- Prefer concise, plain language.
- Default tone: polite, professional. If asked, adapt tone: formal/friendly/concise.
- Return ONLY the rewritten text with no preamble, quotes, or bullet points.
`

// userPrompt собирает пользовательское сообщение: тон плюс текст как есть.
func userPrompt(tone string, text string) string {
	return fmt.Sprintf("Tone: %s\n\nText:\n%s", tone, strings.TrimSpace(text))
}
