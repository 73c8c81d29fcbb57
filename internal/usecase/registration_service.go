package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	"github.com/matchpointhq/matchpoint/internal/domain/registration"
)

// RegistrationService checks eligibility and claims league spots. The
// eligibility read is advisory; the repository write re-checks under
// its own concurrency control and its verdict wins.
type RegistrationService struct {
	leagueRepo  league.Repository
	regRepo     registration.Repository
	partnerRepo partnership.Repository
	now         func() time.Time
}

func NewRegistrationService(
	leagueRepo league.Repository,
	regRepo registration.Repository,
	partnerRepo partnership.Repository,
) *RegistrationService {
	return &RegistrationService{
		leagueRepo:  leagueRepo,
		regRepo:     regRepo,
		partnerRepo: partnerRepo,
		now:         time.Now,
	}
}

// CheckEligibility assembles the actor's registration snapshot and
// runs the eligibility decision against it.
func (s *RegistrationService) CheckEligibility(ctx context.Context, actorID, leagueID string) (registration.Decision, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationService.CheckEligibility")
	defer span.End()

	_, snap, err := s.snapshot(ctx, actorID, leagueID)
	if err != nil {
		return registration.Decision{}, err
	}

	return registration.Decide(actorID, snap), nil
}

// Register claims a spot for the actor, or for the actor's partnership
// in a duo league. A denial from the pre-check maps to
// ErrEligibilityDenied; losing a race at the write boundary maps to
// ErrWriteConflict so callers can distinguish "never eligible" from
// "someone else took that spot".
func (s *RegistrationService) Register(ctx context.Context, actorID, leagueID string) (registration.Decision, error) {
	ctx, span := startUsecaseSpan(ctx, "RegistrationService.Register")
	defer span.End()

	l, snap, err := s.snapshot(ctx, actorID, leagueID)
	if err != nil {
		return registration.Decision{}, err
	}

	decision := registration.Decide(actorID, snap)
	if !decision.Eligible {
		return decision, fmt.Errorf("%w: %s", ErrEligibilityDenied, decision.Reason)
	}

	now := s.now().UTC()
	if l.IsDuo() {
		err = s.regRepo.CreateDuoRegistration(ctx, registration.DuoRegistration{
			LeagueID:      l.ID,
			PartnershipID: snap.ActivePartnership.ID,
			RegisteredAt:  now,
		}, l.MaxDuoPairs)
	} else {
		err = s.regRepo.CreateParticipant(ctx, registration.Participant{
			LeagueID:     l.ID,
			PlayerID:     actorID,
			RegisteredAt: now,
		}, l.MaxParticipants)
	}
	if err != nil {
		if errors.Is(err, registration.ErrCapacityExceeded) || errors.Is(err, registration.ErrDuplicateRegistration) {
			return registration.Decision{}, fmt.Errorf("%w: someone else took that spot: %w", ErrWriteConflict, err)
		}
		return registration.Decision{}, fmt.Errorf("create registration: %w", err)
	}

	return decision, nil
}

func (s *RegistrationService) snapshot(ctx context.Context, actorID, leagueID string) (league.League, registration.Snapshot, error) {
	actorID = strings.TrimSpace(actorID)
	leagueID = strings.TrimSpace(leagueID)
	if actorID == "" {
		return league.League{}, registration.Snapshot{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return league.League{}, registration.Snapshot{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, registration.Snapshot{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, registration.Snapshot{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	snap := registration.Snapshot{
		League: l,
		Now:    s.now().UTC(),
	}

	if l.IsDuo() {
		p, found, err := s.partnerRepo.GetActiveByPlayer(ctx, actorID)
		if err != nil {
			return league.League{}, registration.Snapshot{}, fmt.Errorf("get active partnership: %w", err)
		}
		if found {
			snap.ActivePartnership = &p
			registered, err := s.regRepo.IsPartnershipRegistered(ctx, l.ID, p.ID)
			if err != nil {
				return league.League{}, registration.Snapshot{}, fmt.Errorf("check duo registration: %w", err)
			}
			snap.ActorRegistered = registered
		}
		units, err := s.regRepo.CountDuoRegistrations(ctx, l.ID)
		if err != nil {
			return league.League{}, registration.Snapshot{}, fmt.Errorf("count duo registrations: %w", err)
		}
		snap.RegisteredUnits = units
		return l, snap, nil
	}

	registered, err := s.regRepo.IsPlayerRegistered(ctx, l.ID, actorID)
	if err != nil {
		return league.League{}, registration.Snapshot{}, fmt.Errorf("check registration: %w", err)
	}
	snap.ActorRegistered = registered

	units, err := s.regRepo.CountParticipants(ctx, l.ID)
	if err != nil {
		return league.League{}, registration.Snapshot{}, fmt.Errorf("count participants: %w", err)
	}
	snap.RegisteredUnits = units

	return l, snap, nil
}
