// Package domain contains core concepts of the assistant.
// This file defines conversation turns and the bounded per-user history.
// Turns are immutable once recorded and ordered chronologically.
package domain

import (
	"strings"
	"time"
)

// UserID identifies one chat participant. It is the Telegram chat identifier
// and the sole key into the conversation store.
type UserID int64

type Role int

const (
	RoleUser Role = iota
	RoleAssistant
)

// Label returns the transcript prefix used when rendering a turn.
func (r Role) Label() string {
	if r == RoleAssistant {
		return "FraiBot"
	}
	return "Usuario"
}

// Turn represents one recorded utterance or reply.
type Turn struct {
	Role Role
	Text string
	At   time.Time
}

func UserUtterance(text string) Turn {
	return Turn{Role: RoleUser, Text: text, At: time.Now().UTC()}
}

func AssistantReply(text string) Turn {
	return Turn{Role: RoleAssistant, Text: text, At: time.Now().UTC()}
}

// History is a capacity-bounded sequence of turns for one user.
// Appending past capacity evicts from the front, so the history always
// holds the most recent turns in chronological order.
// History is not safe for concurrent use; the store serializes access per user.
type History struct {
	capacity int
	turns    []Turn
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{capacity: capacity}
}

func (h *History) Append(turn Turn) {
	h.turns = append(h.turns, turn)
	if excess := len(h.turns) - h.capacity; excess > 0 {
		h.turns = h.turns[excess:]
	}
}

func (h *History) Len() int {
	return len(h.turns)
}

// Turns returns a copy so callers can never mutate the stored sequence.
func (h *History) Turns() []Turn {
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Render concatenates every turn as "Label: text", newline separated.
// It is a pure function of the current state.
func (h *History) Render() string {
	lines := make([]string, 0, len(h.turns))
	for _, t := range h.turns {
		lines = append(lines, t.Role.Label()+": "+t.Text)
	}
	return strings.Join(lines, "\n")
}
