package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchpointhq/matchpoint/internal/domain/message"
	qb "github.com/matchpointhq/matchpoint/internal/platform/querybuilder"
)

type MessageRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db, now: time.Now}
}

type messageRow struct {
	ID          string     `db:"id"`
	SenderID    string     `db:"sender_id"`
	RecipientID string     `db:"recipient_id"`
	Body        string     `db:"body"`
	SentAt      time.Time  `db:"sent_at"`
	ReadAt      *time.Time `db:"read_at"`
}

func messageFromRow(row messageRow) message.Message {
	return message.Message{
		ID:          row.ID,
		SenderID:    row.SenderID,
		RecipientID: row.RecipientID,
		Body:        row.Body,
		SentAt:      row.SentAt,
		ReadAt:      row.ReadAt,
	}
}

func (r *MessageRepository) Create(ctx context.Context, m message.Message) error {
	query, args, err := qb.InsertModel("messages", messageRow{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		SentAt:      m.SentAt,
		ReadAt:      m.ReadAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert message query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *MessageRepository) ListConversation(ctx context.Context, playerA, playerB string) ([]message.Message, error) {
	query, args, err := qb.Select("id", "sender_id", "recipient_id", "body", "sent_at", "read_at").
		From("messages").
		Where(qb.Expr(
			"((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?))",
			playerA, playerB, playerB, playerA,
		)).
		OrderBy("sent_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build conversation query: %w", err)
	}

	var rows []messageRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select conversation: %w", err)
	}

	out := make([]message.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, messageFromRow(row))
	}
	return out, nil
}

func (r *MessageRepository) MarkConversationRead(ctx context.Context, readerID, otherID string) error {
	const query = `
UPDATE messages
SET read_at = $3
WHERE recipient_id = $1
  AND sender_id = $2
  AND read_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, readerID, otherID, r.now().UTC()); err != nil {
		return fmt.Errorf("mark conversation read: %w", err)
	}
	return nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	const query = `SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND read_at IS NULL`
	if err := r.db.GetContext(ctx, &count, query, recipientID); err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}
