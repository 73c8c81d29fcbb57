package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/memory"
	"github.com/matchpointhq/matchpoint/internal/platform/logging"
)

type recordingLeagueNotifier struct {
	mu     sync.Mutex
	events []LeagueStatusEvent
}

func (n *recordingLeagueNotifier) NotifyLeagueStatus(_ context.Context, event LeagueStatusEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func TestSweepServiceAnnouncesTransitions(t *testing.T) {
	start := testClock.Add(time.Hour)
	end := testClock.Add(48 * time.Hour)
	l := testLeague("soon", league.KindIndividual, start, end)

	notifier := &recordingLeagueNotifier{}
	svc := NewSweepService(memory.NewLeagueRepository([]league.League{l}), notifier, logging.NewNop())

	now := testClock
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	// First sweep baselines without announcing.
	announced, err := svc.Sweep(ctx, 2)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if announced != 0 {
		t.Fatalf("announced = %d on baseline sweep, want 0", announced)
	}

	// Nothing changed yet.
	if announced, err = svc.Sweep(ctx, 2); err != nil || announced != 0 {
		t.Fatalf("announced = %d (%v), want 0", announced, err)
	}

	now = start.Add(time.Minute)
	announced, err = svc.Sweep(ctx, 2)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if announced != 1 {
		t.Fatalf("announced = %d, want 1", announced)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("events = %d, want 1", len(notifier.events))
	}
	event := notifier.events[0]
	if event.From != league.StatusUpcoming || event.To != league.StatusActive {
		t.Fatalf("event = %+v, want upcoming to active", event)
	}

	now = end.Add(time.Minute)
	if announced, err = svc.Sweep(ctx, 2); err != nil || announced != 1 {
		t.Fatalf("announced = %d (%v), want completion announcement", announced, err)
	}
	if got := notifier.events[1]; got.From != league.StatusActive || got.To != league.StatusCompleted {
		t.Fatalf("event = %+v, want active to completed", got)
	}
}
