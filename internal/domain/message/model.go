package message

import (
	"fmt"
	"strings"
	"time"
)

// Message is one direct message between two players. Delivery transport
// is external; this core only owns the conversation record.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Body        string
	SentAt      time.Time
	ReadAt      *time.Time
}

const MaxBodyLength = 2000

func (m Message) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("message id is required")
	}
	if strings.TrimSpace(m.SenderID) == "" || strings.TrimSpace(m.RecipientID) == "" {
		return fmt.Errorf("message requires sender and recipient")
	}
	if m.SenderID == m.RecipientID {
		return fmt.Errorf("players cannot message themselves")
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("message body is required")
	}
	if len(m.Body) > MaxBodyLength {
		return fmt.Errorf("message body exceeds %d characters", MaxBodyLength)
	}

	return nil
}

func (m Message) IsRead() bool {
	return m.ReadAt != nil && !m.ReadAt.IsZero()
}
