package challenge

import (
	"errors"
	"testing"
	"time"
)

func pendingChallenge() Challenge {
	return Challenge{
		ID:           "chal-1",
		LeagueID:     "league-1",
		ChallengerID: "player-a",
		ChallengedID: "player-b",
		ProposedTime: time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC),
		Status:       StatusPending,
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusDisputed, false},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusDisputed, true},
		{StatusAccepted, StatusRejected, false},
		{StatusAccepted, StatusPending, false},
		{StatusRejected, StatusAccepted, false},
		{StatusCompleted, StatusDisputed, false},
		{StatusDisputed, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed {
				if err != nil {
					t.Fatalf("unexpected rejection: %v", err)
				}
				return
			}

			var invalid *InvalidTransitionError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want InvalidTransitionError", err)
			}
			if invalid.From != tt.from || invalid.To != tt.to {
				t.Fatalf("error carries %q->%q, want %q->%q", invalid.From, invalid.To, tt.from, tt.to)
			}
		})
	}
}

func TestTransitionActorRules(t *testing.T) {
	accepted := pendingChallenge()
	accepted.Status = StatusAccepted

	tests := []struct {
		name       string
		start      Challenge
		actorID    string
		to         Status
		wantStatus Status
		wantDenied bool
	}{
		{name: "challenged accepts", start: pendingChallenge(), actorID: "player-b", to: StatusAccepted, wantStatus: StatusAccepted},
		{name: "challenged rejects", start: pendingChallenge(), actorID: "player-b", to: StatusRejected, wantStatus: StatusRejected},
		{name: "challenger cannot accept own challenge", start: pendingChallenge(), actorID: "player-a", to: StatusAccepted, wantDenied: true},
		{name: "stranger cannot reject", start: pendingChallenge(), actorID: "player-z", to: StatusRejected, wantDenied: true},
		{name: "challenger completes", start: accepted, actorID: "player-a", to: StatusCompleted, wantStatus: StatusCompleted},
		{name: "challenged disputes", start: accepted, actorID: "player-b", to: StatusDisputed, wantStatus: StatusDisputed},
		{name: "stranger cannot complete", start: accepted, actorID: "player-z", to: StatusCompleted, wantDenied: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.Transition(tt.actorID, tt.to)
			if tt.wantDenied {
				var denied *ErrActorNotAllowed
				if !errors.As(err, &denied) {
					t.Fatalf("error = %v, want ErrActorNotAllowed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if tt.start.Status == got.Status {
				t.Fatal("transition must return a new status")
			}
		})
	}
}

func TestTransitionSkipsStateMachine(t *testing.T) {
	_, err := pendingChallenge().Transition("player-b", StatusCompleted)

	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidTransitionError", err)
	}
	if invalid.From != StatusPending || invalid.To != StatusCompleted {
		t.Fatalf("error carries %q->%q, want pending->completed", invalid.From, invalid.To)
	}
}

func TestTransitionDoesNotMutateReceiver(t *testing.T) {
	c := pendingChallenge()
	if _, err := c.Transition("player-b", StatusAccepted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != StatusPending {
		t.Fatalf("receiver mutated to %q", c.Status)
	}
}
