package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/message"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/memory"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
)

func newMessageService() *MessageService {
	svc := NewMessageService(memory.NewMessageRepository(), idgen.NewRandomGenerator())
	svc.now = fixedNow
	return svc
}

func TestMessageServiceSendAndConversation(t *testing.T) {
	svc := newMessageService()
	ctx := context.Background()

	if _, err := svc.Send(ctx, SendMessageInput{ActorID: "p1", RecipientID: "p2", Body: "game on saturday?"}); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	svc.now = func() time.Time { return testClock.Add(time.Minute) }
	if _, err := svc.Send(ctx, SendMessageInput{ActorID: "p2", RecipientID: "p1", Body: "works for me"}); err != nil {
		t.Fatalf("Send error: %v", err)
	}

	unread, err := svc.UnreadCount(ctx, "p1")
	if err != nil || unread != 1 {
		t.Fatalf("unread = %d (%v), want 1", unread, err)
	}

	msgs, err := svc.Conversation(ctx, "p1", "p2")
	if err != nil {
		t.Fatalf("Conversation error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if msgs[0].Body != "game on saturday?" {
		t.Fatalf("messages not oldest first: %q", msgs[0].Body)
	}
	// The returned history already reflects the read stamps this fetch
	// caused: the other player's message is read, our own is not.
	if !msgs[1].IsRead() {
		t.Fatalf("received message not stamped read in the returned payload: %+v", msgs[1])
	}
	if msgs[0].IsRead() {
		t.Fatalf("own outgoing message unexpectedly stamped read: %+v", msgs[0])
	}

	// Reading the thread clears the reader's unread counter only.
	unread, err = svc.UnreadCount(ctx, "p1")
	if err != nil || unread != 0 {
		t.Fatalf("unread after read = %d (%v), want 0", unread, err)
	}
	unread, err = svc.UnreadCount(ctx, "p2")
	if err != nil || unread != 1 {
		t.Fatalf("other side unread = %d (%v), want 1", unread, err)
	}
}

func TestMessageServiceSendValidation(t *testing.T) {
	svc := newMessageService()
	ctx := context.Background()

	cases := []SendMessageInput{
		{ActorID: "p1", RecipientID: "p1", Body: "hi"},
		{ActorID: "p1", RecipientID: "p2", Body: "   "},
		{ActorID: "p1", RecipientID: "p2", Body: strings.Repeat("x", message.MaxBodyLength+1)},
	}
	for i, input := range cases {
		if _, err := svc.Send(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: error = %v, want ErrInvalidInput", i, err)
		}
	}
}
