package message

import "context"

// Repository describes message persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, m Message) error
	// ListConversation returns every message between the two players,
	// oldest first, regardless of direction.
	ListConversation(ctx context.Context, playerA, playerB string) ([]Message, error)
	// MarkConversationRead stamps every unread message sent to the
	// reader by the other player.
	MarkConversationRead(ctx context.Context, readerID, otherID string) error
	CountUnread(ctx context.Context, recipientID string) (int, error)
}
