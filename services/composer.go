package services

import "strings"

// PromptComposer assembles generation requests. It is stateless beyond the
// fixed system context and has no failure conditions: a missing history
// renders as an empty block, never as an error.
type PromptComposer struct {
	systemContext string
}

func NewPromptComposer(systemContext string) PromptComposer {
	return PromptComposer{systemContext: systemContext}
}

// Compose merges the system context, the rendered history and the new user
// utterance, in that fixed order, closing with the assistant cue. The output
// is a deterministic function of its inputs.
func (c PromptComposer) Compose(renderedHistory, newUtterance string) string {
	var b strings.Builder
	b.WriteString(c.systemContext)
	b.WriteString("\n\nHistorial de conversación:\n")
	if renderedHistory != "" {
		b.WriteString(renderedHistory)
		b.WriteString("\n")
	}
	b.WriteString("Usuario: ")
	b.WriteString(newUtterance)
	b.WriteString("\n\nFraiBot:")
	return b.String()
}

// Canned builds a one-shot prompt for the idea-generation actions, which
// involve no conversation history.
func (c PromptComposer) Canned(prompt string) string {
	return c.systemContext + "\n\n" + prompt
}
