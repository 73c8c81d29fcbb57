package registration

import (
	"testing"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
)

var clock = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func individualLeague(maxParticipants int) league.League {
	return league.League{
		ID:              "league-ind",
		Kind:            league.KindIndividual,
		MaxParticipants: maxParticipants,
		StartDate:       clock.Add(-24 * time.Hour),
		EndDate:         clock.Add(24 * time.Hour),
	}
}

func duoLeague(maxPairs int) league.League {
	return league.League{
		ID:          "league-duo",
		Kind:        league.KindDuo,
		MaxDuoPairs: maxPairs,
		StartDate:   clock.Add(-24 * time.Hour),
		EndDate:     clock.Add(24 * time.Hour),
	}
}

func activePair(a, b string) *partnership.Partnership {
	return &partnership.Partnership{ID: "pair-1", Player1ID: a, Player2ID: b, Active: true}
}

func TestDecideIndividual(t *testing.T) {
	tests := []struct {
		name       string
		snap       Snapshot
		wantOK     bool
		wantReason Reason
	}{
		{
			name:   "open spot",
			snap:   Snapshot{League: individualLeague(8), RegisteredUnits: 5, Now: clock},
			wantOK: true,
		},
		{
			name:       "at capacity",
			snap:       Snapshot{League: individualLeague(8), RegisteredUnits: 8, Now: clock},
			wantOK:     false,
			wantReason: ReasonCapacityReached,
		},
		{
			name:       "over capacity",
			snap:       Snapshot{League: individualLeague(8), RegisteredUnits: 9, Now: clock},
			wantOK:     false,
			wantReason: ReasonCapacityReached,
		},
		{
			name:       "already registered",
			snap:       Snapshot{League: individualLeague(8), RegisteredUnits: 3, ActorRegistered: true, Now: clock},
			wantOK:     false,
			wantReason: ReasonAlreadyRegistered,
		},
		{
			name: "league completed",
			snap: Snapshot{
				League: league.League{
					Kind:            league.KindIndividual,
					MaxParticipants: 8,
					StartDate:       clock.Add(-48 * time.Hour),
					EndDate:         clock.Add(-time.Hour),
				},
				Now: clock,
			},
			wantOK:     false,
			wantReason: ReasonLeagueCompleted,
		},
		{
			name: "deadline passed for an upcoming league",
			snap: Snapshot{
				League: league.League{
					Kind:                 league.KindIndividual,
					MaxParticipants:      8,
					StartDate:            clock.Add(24 * time.Hour),
					EndDate:              clock.Add(72 * time.Hour),
					RegistrationDeadline: clock.Add(-48 * time.Hour),
				},
				Now: clock,
			},
			wantOK:     false,
			wantReason: ReasonRegistrationClosed,
		},
		{
			name: "deadline still open",
			snap: Snapshot{
				League: league.League{
					Kind:                 league.KindIndividual,
					MaxParticipants:      8,
					StartDate:            clock.Add(24 * time.Hour),
					EndDate:              clock.Add(72 * time.Hour),
					RegistrationDeadline: clock.Add(time.Hour),
				},
				Now: clock,
			},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide("player-1", tt.snap)
			if got.Eligible != tt.wantOK {
				t.Fatalf("Eligible = %v, want %v", got.Eligible, tt.wantOK)
			}
			if got.Reason != tt.wantReason {
				t.Fatalf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestDecideDuo(t *testing.T) {
	tests := []struct {
		name       string
		snap       Snapshot
		wantOK     bool
		wantReason Reason
	}{
		{
			name: "paired with an open spot",
			snap: Snapshot{
				League:            duoLeague(4),
				RegisteredUnits:   2,
				ActivePartnership: activePair("player-1", "player-2"),
				Now:               clock,
			},
			wantOK: true,
		},
		{
			name:       "no partnership at all",
			snap:       Snapshot{League: duoLeague(4), RegisteredUnits: 0, Now: clock},
			wantOK:     false,
			wantReason: ReasonNoActivePartnership,
		},
		{
			name: "dissolved partnership",
			snap: Snapshot{
				League:            duoLeague(4),
				ActivePartnership: &partnership.Partnership{ID: "pair-1", Player1ID: "player-1", Player2ID: "player-2"},
				Now:               clock,
			},
			wantOK:     false,
			wantReason: ReasonNoActivePartnership,
		},
		{
			name: "partnership of other players",
			snap: Snapshot{
				League:            duoLeague(4),
				ActivePartnership: activePair("player-8", "player-9"),
				Now:               clock,
			},
			wantOK:     false,
			wantReason: ReasonNoActivePartnership,
		},
		{
			name: "no partner is reported before a full league",
			snap: Snapshot{
				League:          duoLeague(4),
				RegisteredUnits: 4,
				Now:             clock,
			},
			wantOK:     false,
			wantReason: ReasonNoActivePartnership,
		},
		{
			name: "partnership already registered",
			snap: Snapshot{
				League:            duoLeague(4),
				RegisteredUnits:   2,
				ActorRegistered:   true,
				ActivePartnership: activePair("player-1", "player-2"),
				Now:               clock,
			},
			wantOK:     false,
			wantReason: ReasonPartnershipAlreadyRegistered,
		},
		{
			name: "pairs full",
			snap: Snapshot{
				League:            duoLeague(4),
				RegisteredUnits:   4,
				ActivePartnership: activePair("player-1", "player-2"),
				Now:               clock,
			},
			wantOK:     false,
			wantReason: ReasonCapacityReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide("player-1", tt.snap)
			if got.Eligible != tt.wantOK {
				t.Fatalf("Eligible = %v, want %v", got.Eligible, tt.wantOK)
			}
			if got.Reason != tt.wantReason {
				t.Fatalf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestDecideIsIdempotent(t *testing.T) {
	snap := Snapshot{League: individualLeague(8), RegisteredUnits: 8, Now: clock}

	first := Decide("player-1", snap)
	for i := 0; i < 50; i++ {
		if got := Decide("player-1", snap); got != first {
			t.Fatalf("decision changed on repeat call: %+v vs %+v", got, first)
		}
	}
}

func TestDecideCapacityScenario(t *testing.T) {
	l := individualLeague(2)

	snap := Snapshot{League: l, RegisteredUnits: 0, Now: clock}
	if got := Decide("player-1", snap); !got.Eligible {
		t.Fatalf("first player denied: %+v", got)
	}

	snap.RegisteredUnits = 1
	if got := Decide("player-2", snap); !got.Eligible {
		t.Fatalf("second player denied: %+v", got)
	}

	snap.RegisteredUnits = 2
	got := Decide("player-3", snap)
	if got.Eligible || got.Reason != ReasonCapacityReached {
		t.Fatalf("third player not denied for capacity: %+v", got)
	}
}
