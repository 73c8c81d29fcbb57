package usecase

import (
	"context"
	"testing"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	"github.com/matchpointhq/matchpoint/internal/domain/registration"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/memory"
)

func participant(leagueID, playerID string) registration.Participant {
	return registration.Participant{
		LeagueID:     leagueID,
		PlayerID:     playerID,
		RegisteredAt: testClock,
	}
}

func seedDuoPair(
	t *testing.T,
	ctx context.Context,
	regRepo *memory.RegistrationRepository,
	partnerRepo *memory.PartnershipRepository,
	l league.League,
	pairID, player1ID, player2ID string,
) {
	t.Helper()

	err := partnerRepo.Create(ctx, partnership.Partnership{
		ID:        pairID,
		Player1ID: player1ID,
		Player2ID: player2ID,
		Active:    true,
		CreatedAt: testClock,
	})
	if err != nil {
		t.Fatalf("seed partnership: %v", err)
	}

	err = regRepo.CreateDuoRegistration(ctx, registration.DuoRegistration{
		LeagueID:      l.ID,
		PartnershipID: pairID,
		RegisteredAt:  testClock,
	}, l.MaxDuoPairs)
	if err != nil {
		t.Fatalf("seed duo registration: %v", err)
	}
}
