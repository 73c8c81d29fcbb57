package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/message"
)

type MessageRepository struct {
	mu    sync.RWMutex
	items map[string]message.Message
	now   func() time.Time
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		items: make(map[string]message.Message),
		now:   time.Now,
	}
}

func (r *MessageRepository) Create(_ context.Context, m message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[m.ID]; exists {
		return fmt.Errorf("message %s already exists", m.ID)
	}
	r.items[m.ID] = m

	return nil
}

func (r *MessageRepository) ListConversation(_ context.Context, playerA, playerB string) ([]message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]message.Message, 0)
	for _, m := range r.items {
		if betweenPlayers(m, playerA, playerB) {
			out = append(out, m)
		}
	}
	sortMessages(out)

	return out, nil
}

func (r *MessageRepository) MarkConversationRead(_ context.Context, readerID, otherID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	readAt := r.now().UTC()
	for id, m := range r.items {
		if m.RecipientID == readerID && m.SenderID == otherID && !m.IsRead() {
			stamped := readAt
			m.ReadAt = &stamped
			r.items[id] = m
		}
	}

	return nil
}

func (r *MessageRepository) CountUnread(_ context.Context, recipientID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, m := range r.items {
		if m.RecipientID == recipientID && !m.IsRead() {
			count++
		}
	}

	return count, nil
}

func betweenPlayers(m message.Message, playerA, playerB string) bool {
	return (m.SenderID == playerA && m.RecipientID == playerB) ||
		(m.SenderID == playerB && m.RecipientID == playerA)
}
