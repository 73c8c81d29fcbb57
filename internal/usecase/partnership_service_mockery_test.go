package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	partnershipmock "github.com/matchpointhq/matchpoint/internal/mocks/domain/partnership"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

func TestPartnershipService_Create_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	partnerRepo := partnershipmock.NewRepository(t)

	service := NewPartnershipService(partnerRepo, idgen.Static{ID: "pair-1"})

	partnerRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(p partnership.Partnership) bool {
			return p.ID == "pair-1" && p.Player1ID == "player-1" && p.Player2ID == "player-2" && p.Active
		})).
		Return(nil).
		Once()

	got, err := service.Create(ctx, "player-1", "player-2")
	if err != nil {
		t.Fatalf("create partnership: %v", err)
	}
	if got.ID != "pair-1" {
		t.Fatalf("unexpected partnership id: got=%s want=pair-1", got.ID)
	}
}

func TestPartnershipService_Create_MemberAlreadyPairedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	partnerRepo := partnershipmock.NewRepository(t)

	service := NewPartnershipService(partnerRepo, idgen.Static{ID: "pair-2"})

	partnerRepo.
		On("Create", mock.Anything, mock.AnythingOfType("partnership.Partnership")).
		Return(partnership.ErrMemberAlreadyPaired).
		Once()

	_, err := service.Create(ctx, "player-1", "player-3")
	if !errors.Is(err, ErrWriteConflict) {
		t.Fatalf("expected ErrWriteConflict, got %v", err)
	}
}

func TestPartnershipService_Dissolve_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	partnerRepo := partnershipmock.NewRepository(t)

	service := NewPartnershipService(partnerRepo, idgen.Static{ID: "unused"})

	partnerRepo.
		On("GetByID", mock.Anything, "missing-pair").
		Return(partnership.Partnership{}, false, nil).
		Once()

	err := service.Dissolve(ctx, "player-1", "missing-pair")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
