package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	"github.com/matchpointhq/matchpoint/internal/domain/registration"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/memory"
)

func newRegistrationService(leagues ...league.League) (*RegistrationService, *memory.RegistrationRepository, *memory.PartnershipRepository) {
	leagueRepo := memory.NewLeagueRepository(leagues)
	regRepo := memory.NewRegistrationRepository()
	partnerRepo := memory.NewPartnershipRepository()
	svc := NewRegistrationService(leagueRepo, regRepo, partnerRepo)
	svc.now = fixedNow
	return svc, regRepo, partnerRepo
}

func TestRegistrationServiceIndividualFlow(t *testing.T) {
	l := testLeague("ind", league.KindIndividual, testClock.Add(-time.Hour), testClock.Add(time.Hour))
	l.MaxParticipants = 2
	svc, regRepo, _ := newRegistrationService(l)
	ctx := context.Background()

	decision, err := svc.CheckEligibility(ctx, "p1", l.ID)
	if err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if !decision.Eligible {
		t.Fatalf("expected eligible, got %+v", decision)
	}

	if _, err := svc.Register(ctx, "p1", l.ID); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	if _, err := svc.Register(ctx, "p2", l.ID); err != nil {
		t.Fatalf("second Register error: %v", err)
	}

	count, err := regRepo.CountParticipants(ctx, l.ID)
	if err != nil || count != 2 {
		t.Fatalf("count = %d (%v), want 2", count, err)
	}

	_, err = svc.Register(ctx, "p3", l.ID)
	if !errors.Is(err, ErrEligibilityDenied) {
		t.Fatalf("error = %v, want ErrEligibilityDenied", err)
	}

	decision, err = svc.CheckEligibility(ctx, "p3", l.ID)
	if err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if decision.Eligible || decision.Reason != registration.ReasonCapacityReached {
		t.Fatalf("decision = %+v, want capacity denial", decision)
	}
}

func TestRegistrationServiceAlreadyRegistered(t *testing.T) {
	l := testLeague("ind", league.KindIndividual, testClock.Add(-time.Hour), testClock.Add(time.Hour))
	svc, _, _ := newRegistrationService(l)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "p1", l.ID); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Register(ctx, "p1", l.ID)
	if !errors.Is(err, ErrEligibilityDenied) {
		t.Fatalf("error = %v, want ErrEligibilityDenied", err)
	}

	decision, err := svc.CheckEligibility(ctx, "p1", l.ID)
	if err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if decision.Reason != registration.ReasonAlreadyRegistered {
		t.Fatalf("reason = %q, want already registered", decision.Reason)
	}
}

func TestRegistrationServiceDuoFlow(t *testing.T) {
	l := testLeague("duo", league.KindDuo, testClock.Add(-time.Hour), testClock.Add(time.Hour))
	l.MaxDuoPairs = 2
	svc, _, partnerRepo := newRegistrationService(l)
	ctx := context.Background()

	decision, err := svc.CheckEligibility(ctx, "p1", l.ID)
	if err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if decision.Eligible || decision.Reason != registration.ReasonNoActivePartnership {
		t.Fatalf("decision = %+v, want no-partnership denial", decision)
	}

	err = partnerRepo.Create(ctx, partnership.Partnership{
		ID: "pair-1", Player1ID: "p1", Player2ID: "p2", Active: true, CreatedAt: testClock,
	})
	if err != nil {
		t.Fatalf("seed partnership: %v", err)
	}

	if _, err := svc.Register(ctx, "p1", l.ID); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// The partner shares the registration, so their own attempt is a
	// duplicate of the pair's spot.
	decision, err = svc.CheckEligibility(ctx, "p2", l.ID)
	if err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if decision.Eligible || decision.Reason != registration.ReasonPartnershipAlreadyRegistered {
		t.Fatalf("decision = %+v, want partnership-registered denial", decision)
	}
}

func TestRegistrationServiceDuoCapacityDistinctFromNoPartner(t *testing.T) {
	l := testLeague("duo", league.KindDuo, testClock.Add(-time.Hour), testClock.Add(time.Hour))
	l.MaxDuoPairs = 1
	svc, regRepo, partnerRepo := newRegistrationService(l)
	ctx := context.Background()

	seedDuoPair(t, ctx, regRepo, partnerRepo, l, "pair-1", "p1", "p2")

	err := partnerRepo.Create(ctx, partnership.Partnership{
		ID: "pair-2", Player1ID: "p3", Player2ID: "p4", Active: true, CreatedAt: testClock,
	})
	if err != nil {
		t.Fatalf("seed second partnership: %v", err)
	}

	decision, err := svc.CheckEligibility(ctx, "p3", l.ID)
	if err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if decision.Reason != registration.ReasonCapacityReached {
		t.Fatalf("reason = %q, want capacity reached", decision.Reason)
	}

	decision, err = svc.CheckEligibility(ctx, "p5", l.ID)
	if err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if decision.Reason != registration.ReasonNoActivePartnership {
		t.Fatalf("reason = %q, want no active partnership", decision.Reason)
	}
}

// staleCountRepo reproduces a lost race: the advisory count reads zero
// while the write boundary is already full.
type staleCountRepo struct {
	*memory.RegistrationRepository
}

func (r staleCountRepo) CountParticipants(context.Context, string) (int, error) {
	return 0, nil
}

func TestRegistrationServiceWriteConflictWins(t *testing.T) {
	l := testLeague("ind", league.KindIndividual, testClock.Add(-time.Hour), testClock.Add(time.Hour))
	l.MaxParticipants = 1

	leagueRepo := memory.NewLeagueRepository([]league.League{l})
	inner := memory.NewRegistrationRepository()
	svc := NewRegistrationService(leagueRepo, staleCountRepo{inner}, memory.NewPartnershipRepository())
	svc.now = fixedNow

	ctx := context.Background()
	if err := inner.CreateParticipant(ctx, participant(l.ID, "winner"), l.MaxParticipants); err != nil {
		t.Fatalf("seed winner: %v", err)
	}

	_, err := svc.Register(ctx, "loser", l.ID)
	if !errors.Is(err, ErrWriteConflict) {
		t.Fatalf("error = %v, want ErrWriteConflict", err)
	}
	if !errors.Is(err, registration.ErrCapacityExceeded) {
		t.Fatalf("error = %v, want wrapped ErrCapacityExceeded", err)
	}
}

func TestRegistrationServiceCompletedLeague(t *testing.T) {
	l := testLeague("done", league.KindIndividual, testClock.Add(-72*time.Hour), testClock.Add(-24*time.Hour))
	svc, _, _ := newRegistrationService(l)

	decision, err := svc.CheckEligibility(context.Background(), "p1", l.ID)
	if err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if decision.Eligible || decision.Reason != registration.ReasonLeagueCompleted {
		t.Fatalf("decision = %+v, want league-completed denial", decision)
	}
}

func TestRegistrationServiceUnknownLeague(t *testing.T) {
	svc, _, _ := newRegistrationService()

	if _, err := svc.CheckEligibility(context.Background(), "p1", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
