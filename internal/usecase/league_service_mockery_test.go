package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/memory"
	leaguemock "github.com/matchpointhq/matchpoint/internal/mocks/domain/league"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_Get_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	regRepo := memory.NewRegistrationRepository()
	partnerRepo := memory.NewPartnershipRepository()

	service := NewLeagueService(leagueRepo, regRepo, partnerRepo, idgen.Static{ID: "unused"})
	stored := league.League{
		ID:        "lg-1",
		Name:      "City Open",
		Kind:      league.KindIndividual,
		StartDate: time.Now().Add(48 * time.Hour),
		EndDate:   time.Now().Add(96 * time.Hour),
	}

	leagueRepo.
		On("GetByID", mock.Anything, "lg-1").
		Return(stored, true, nil).
		Once()

	got, err := service.Get(ctx, "lg-1")
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	if got.League.ID != stored.ID {
		t.Fatalf("unexpected league id: got=%s want=%s", got.League.ID, stored.ID)
	}
	if got.Status != league.StatusUpcoming {
		t.Fatalf("unexpected status: got=%s want=%s", got.Status, league.StatusUpcoming)
	}
}

func TestLeagueService_Get_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	regRepo := memory.NewRegistrationRepository()
	partnerRepo := memory.NewPartnershipRepository()

	service := NewLeagueService(leagueRepo, regRepo, partnerRepo, idgen.Static{ID: "unused"})

	leagueRepo.
		On("GetByID", mock.Anything, "missing-league").
		Return(league.League{}, false, nil).
		Once()

	_, err := service.Get(ctx, "missing-league")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
