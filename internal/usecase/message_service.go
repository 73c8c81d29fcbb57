package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/message"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
)

type SendMessageInput struct {
	ActorID     string
	RecipientID string
	Body        string
}

type MessageService struct {
	msgRepo message.Repository
	idGen   idgen.Generator
	now     func() time.Time
}

func NewMessageService(msgRepo message.Repository, idGen idgen.Generator) *MessageService {
	return &MessageService{
		msgRepo: msgRepo,
		idGen:   idGen,
		now:     time.Now,
	}
}

func (s *MessageService) Send(ctx context.Context, input SendMessageInput) (message.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "MessageService.Send")
	defer span.End()

	input.ActorID = strings.TrimSpace(input.ActorID)
	input.RecipientID = strings.TrimSpace(input.RecipientID)
	input.Body = strings.TrimSpace(input.Body)

	id, err := s.idGen.NewID()
	if err != nil {
		return message.Message{}, fmt.Errorf("generate message id: %w", err)
	}

	m := message.Message{
		ID:          id,
		SenderID:    input.ActorID,
		RecipientID: input.RecipientID,
		Body:        input.Body,
		SentAt:      s.now().UTC(),
	}
	if err := m.Validate(); err != nil {
		return message.Message{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.msgRepo.Create(ctx, m); err != nil {
		return message.Message{}, fmt.Errorf("create message: %w", err)
	}
	return m, nil
}

// Conversation returns the actor's message history with another player,
// oldest first, and marks the other player's messages as read.
func (s *MessageService) Conversation(ctx context.Context, actorID, otherID string) ([]message.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "MessageService.Conversation")
	defer span.End()

	actorID = strings.TrimSpace(actorID)
	otherID = strings.TrimSpace(otherID)
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if otherID == "" {
		return nil, fmt.Errorf("%w: other player id is required", ErrInvalidInput)
	}

	// Mark before listing so the returned history already carries the
	// read stamps this request caused.
	if err := s.msgRepo.MarkConversationRead(ctx, actorID, otherID); err != nil {
		return nil, fmt.Errorf("mark conversation read: %w", err)
	}

	messages, err := s.msgRepo.ListConversation(ctx, actorID, otherID)
	if err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}
	return messages, nil
}

func (s *MessageService) UnreadCount(ctx context.Context, actorID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "MessageService.UnreadCount")
	defer span.End()

	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return 0, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	count, err := s.msgRepo.CountUnread(ctx, actorID)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}
