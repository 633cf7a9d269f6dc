package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPromptComposer_Compose(t *testing.T) {
	req := require.New(t)
	composer := NewPromptComposer("Eres FraiBot.")

	prompt := composer.Compose("Usuario: hola\nFraiBot: ¡Hola!", "¿qué hay de nuevo?")

	req.Equal("Eres FraiBot.\n\nHistorial de conversación:\nUsuario: hola\nFraiBot: ¡Hola!\nUsuario: ¿qué hay de nuevo?\n\nFraiBot:", prompt)
}

func TestPromptComposer_ComposeEmptyHistory(t *testing.T) {
	req := require.New(t)
	composer := NewPromptComposer("Eres FraiBot.")

	// A user's first message has no history block content, never an error.
	prompt := composer.Compose("", "hola")

	req.Equal("Eres FraiBot.\n\nHistorial de conversación:\nUsuario: hola\n\nFraiBot:", prompt)
}

func TestPromptComposer_Deterministic(t *testing.T) {
	req := require.New(t)
	composer := NewPromptComposer(SystemContext)

	first := composer.Compose("Usuario: hola", "adiós")
	second := composer.Compose("Usuario: hola", "adiós")

	req.Equal(first, second)
	req.True(strings.HasPrefix(first, SystemContext))
	req.True(strings.HasSuffix(first, "FraiBot:"))
}

func TestPromptComposer_Canned(t *testing.T) {
	req := require.New(t)
	composer := NewPromptComposer("Eres FraiBot.")

	prompt := composer.Canned(EventIdeaPrompt)

	req.Equal("Eres FraiBot.\n\n"+EventIdeaPrompt, prompt)
	req.NotContains(prompt, "Historial de conversación")
}
