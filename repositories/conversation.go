//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_store.go -package=mocks
package repositories

import (
	"log/slog"
	"sync"

	"fraibot/domain"
)

type IConversationStore interface {
	Append(user domain.UserID, turn domain.Turn)
	History(user domain.UserID) []domain.Turn
	Render(user domain.UserID) string
}

// ConversationStore holds the bounded recent-message history of every user.
// State is in-memory only and lives for the process lifetime; a restart
// resets all conversations.
//
// Locking is per user: appends and reads for the same user serialize, while
// different users never contend. The outer mutex only guards the map itself.
type ConversationStore struct {
	mu       sync.Mutex
	capacity int
	log      *slog.Logger
	users    map[domain.UserID]*conversationEntry
}

type conversationEntry struct {
	mu      sync.Mutex
	history *domain.History
}

func NewConversationStore(capacity int, log *slog.Logger) *ConversationStore {
	return &ConversationStore{
		capacity: capacity,
		log:      log,
		users:    make(map[domain.UserID]*conversationEntry),
	}
}

// entry returns the per-user entry, creating it lazily on first use.
func (s *ConversationStore) entry(user domain.UserID) *conversationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.users[user]
	if !ok {
		e = &conversationEntry{history: domain.NewHistory(s.capacity)}
		s.users[user] = e
		s.log.Debug("New conversation started", "user", user)
	}
	return e
}

// Append records a turn at the end of the user's history. It always
// succeeds; the history evicts its oldest turn once capacity is exceeded.
func (s *ConversationStore) Append(user domain.UserID, turn domain.Turn) {
	e := s.entry(user)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.Append(turn)
}

// History returns the ordered turns for the user, or an empty slice when the
// user never spoke. The returned slice is a copy.
func (s *ConversationStore) History(user domain.UserID) []domain.Turn {
	s.mu.Lock()
	e, ok := s.users[user]
	s.mu.Unlock()
	if !ok {
		return []domain.Turn{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Turns()
}

// Render returns the user's transcript as a single labelled text blob.
func (s *ConversationStore) Render(user domain.UserID) string {
	s.mu.Lock()
	e, ok := s.users[user]
	s.mu.Unlock()
	if !ok {
		return ""
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Render()
}
