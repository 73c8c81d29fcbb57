package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
)

type PartnershipService struct {
	partnerRepo partnership.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewPartnershipService(partnerRepo partnership.Repository, idGen idgen.Generator) *PartnershipService {
	return &PartnershipService{
		partnerRepo: partnerRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

// Create forms an active partnership between the actor and a partner.
// Uniqueness is enforced for both members at the write boundary; a
// member already paired elsewhere maps to ErrWriteConflict.
func (s *PartnershipService) Create(ctx context.Context, actorID, partnerID string) (partnership.Partnership, error) {
	ctx, span := startUsecaseSpan(ctx, "PartnershipService.Create")
	defer span.End()

	actorID = strings.TrimSpace(actorID)
	partnerID = strings.TrimSpace(partnerID)
	if actorID == "" {
		return partnership.Partnership{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if partnerID == "" {
		return partnership.Partnership{}, fmt.Errorf("%w: partner id is required", ErrInvalidInput)
	}
	if actorID == partnerID {
		return partnership.Partnership{}, fmt.Errorf("%w: players cannot partner with themselves", ErrInvalidInput)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return partnership.Partnership{}, fmt.Errorf("generate partnership id: %w", err)
	}

	p := partnership.Partnership{
		ID:        id,
		Player1ID: actorID,
		Player2ID: partnerID,
		Active:    true,
		CreatedAt: s.now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return partnership.Partnership{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.partnerRepo.Create(ctx, p); err != nil {
		if errors.Is(err, partnership.ErrMemberAlreadyPaired) {
			return partnership.Partnership{}, fmt.Errorf("%w: %w", ErrWriteConflict, err)
		}
		return partnership.Partnership{}, fmt.Errorf("create partnership: %w", err)
	}

	return p, nil
}

// Active returns the actor's current partnership, if any.
func (s *PartnershipService) Active(ctx context.Context, actorID string) (partnership.Partnership, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "PartnershipService.Active")
	defer span.End()

	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return partnership.Partnership{}, false, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	p, found, err := s.partnerRepo.GetActiveByPlayer(ctx, actorID)
	if err != nil {
		return partnership.Partnership{}, false, fmt.Errorf("get active partnership: %w", err)
	}
	return p, found, nil
}

// Dissolve ends the actor's partnership. Only a member may dissolve it.
func (s *PartnershipService) Dissolve(ctx context.Context, actorID, partnershipID string) error {
	ctx, span := startUsecaseSpan(ctx, "PartnershipService.Dissolve")
	defer span.End()

	actorID = strings.TrimSpace(actorID)
	partnershipID = strings.TrimSpace(partnershipID)
	if actorID == "" {
		return fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if partnershipID == "" {
		return fmt.Errorf("%w: partnership id is required", ErrInvalidInput)
	}

	p, exists, err := s.partnerRepo.GetByID(ctx, partnershipID)
	if err != nil {
		return fmt.Errorf("get partnership: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: partnership %s", ErrNotFound, partnershipID)
	}
	if !p.HasMember(actorID) {
		return fmt.Errorf("%w: only a member may dissolve a partnership", ErrUnauthorized)
	}
	if !p.Active {
		return fmt.Errorf("%w: partnership %s is already dissolved", ErrInvalidInput, partnershipID)
	}

	if err := s.partnerRepo.Dissolve(ctx, partnershipID); err != nil {
		return fmt.Errorf("dissolve partnership: %w", err)
	}
	return nil
}
