//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"github.com/abadojack/whatlanggo"

	"fraibot/contract"
	"fraibot/domain"
	"fraibot/moderation"
	"fraibot/repositories"
)

type IChatService interface {
	Respond(ctx context.Context, user domain.UserID, text string) (string, error)
	EventIdea(ctx context.Context) (string, error)
	ContentIdea(ctx context.Context) (string, error)
}

// ChatService drives one conversational exchange: censor the utterance,
// record it, compose the prompt from the bounded history, generate, record
// the reply.
type ChatService struct {
	store     repositories.IConversationStore
	composer  PromptComposer
	generator contract.Generator
	moderator moderation.Moderator
	log       *slog.Logger
}

func NewChatService(
	store repositories.IConversationStore,
	composer PromptComposer,
	generator contract.Generator,
	moderator moderation.Moderator,
	log *slog.Logger,
) *ChatService {
	return &ChatService{
		store:     store,
		composer:  composer,
		generator: generator,
		moderator: moderator,
		log:       log,
	}
}

// Respond answers a user message with generated text.
//
// The user's utterance is recorded before the generation call on purpose:
// when the backend fails, the context of what the user said survives the
// outage, only the assistant turn is missing. The caller receives the
// wrapped ErrGeneration and translates it for the platform.
func (s *ChatService) Respond(ctx context.Context, user domain.UserID, text string) (string, error) {
	sanitized, found := s.moderator.Censor(text)
	if len(found) > 0 {
		info := whatlanggo.Detect(text)
		s.log.Warn("Censored words in user message",
			"user", user,
			"words", len(found),
			"lang", info.Lang.Iso6391())
	}

	rendered := s.store.Render(user)
	prompt := s.composer.Compose(rendered, sanitized)
	s.store.Append(user, domain.UserUtterance(sanitized))

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	s.store.Append(user, domain.AssistantReply(reply))
	return reply, nil
}

// EventIdea generates a streaming event concept. No history is involved.
func (s *ChatService) EventIdea(ctx context.Context) (string, error) {
	return s.generator.Generate(ctx, s.composer.Canned(EventIdeaPrompt))
}

// ContentIdea generates an audiovisual content concept. No history is involved.
func (s *ChatService) ContentIdea(ctx context.Context) (string, error) {
	return s.generator.Generate(ctx, s.composer.Canned(ContentIdeaPrompt))
}
