package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/challenge"
	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	"github.com/matchpointhq/matchpoint/internal/domain/registration"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
	"github.com/matchpointhq/matchpoint/internal/platform/logging"
)

// ChallengeEvent is an outbound notification about a challenge change.
type ChallengeEvent struct {
	Type      string
	Challenge challenge.Challenge
}

const (
	ChallengeEventCreated = "challenge.created"
	ChallengeEventUpdated = "challenge.updated"
)

// ChallengeNotifier delivers challenge events to interested players.
// Delivery is best effort; failures never fail the triggering request.
type ChallengeNotifier interface {
	NotifyChallenge(ctx context.Context, event ChallengeEvent) error
}

type CreateChallengeInput struct {
	ActorID      string
	LeagueID     string
	ChallengedID string
	ProposedTime time.Time
	Location     string
}

// ChallengeView pairs a challenge with its perspective for the
// requesting player.
type ChallengeView struct {
	Challenge   challenge.Challenge
	Perspective challenge.Perspective
}

type ChallengeService struct {
	chalRepo    challenge.Repository
	leagueRepo  league.Repository
	regRepo     registration.Repository
	partnerRepo partnership.Repository
	notifier    ChallengeNotifier
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewChallengeService(
	chalRepo challenge.Repository,
	leagueRepo league.Repository,
	regRepo registration.Repository,
	partnerRepo partnership.Repository,
	notifier ChallengeNotifier,
	idGen idgen.Generator,
	logger *logging.Logger,
) *ChallengeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChallengeService{
		chalRepo:    chalRepo,
		leagueRepo:  leagueRepo,
		regRepo:     regRepo,
		partnerRepo: partnerRepo,
		notifier:    notifier,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// Create issues a pending challenge from the actor to another player
// in the same league. Both players must be registered there.
func (s *ChallengeService) Create(ctx context.Context, input CreateChallengeInput) (challenge.Challenge, error) {
	ctx, span := startUsecaseSpan(ctx, "ChallengeService.Create")
	defer span.End()

	input.ActorID = strings.TrimSpace(input.ActorID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.ChallengedID = strings.TrimSpace(input.ChallengedID)
	input.Location = strings.TrimSpace(input.Location)
	if input.ActorID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if input.ChallengedID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: challenged player id is required", ErrInvalidInput)
	}
	if input.ActorID == input.ChallengedID {
		return challenge.Challenge{}, fmt.Errorf("%w: players cannot challenge themselves", ErrInvalidInput)
	}
	if input.LeagueID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.ProposedTime.IsZero() {
		return challenge.Challenge{}, fmt.Errorf("%w: proposed time is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return challenge.Challenge{}, fmt.Errorf("%w: league %s", ErrNotFound, input.LeagueID)
	}

	now := s.now().UTC()
	if l.StatusAt(now) == league.StatusCompleted {
		return challenge.Challenge{}, fmt.Errorf("%w: league %s has completed", ErrInvalidInput, l.ID)
	}

	for _, playerID := range []string{input.ActorID, input.ChallengedID} {
		registered, err := s.isRegistered(ctx, l, playerID)
		if err != nil {
			return challenge.Challenge{}, err
		}
		if !registered {
			return challenge.Challenge{}, fmt.Errorf("%w: player %s is not registered in league %s", ErrInvalidInput, playerID, l.ID)
		}
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("generate challenge id: %w", err)
	}

	c := challenge.Challenge{
		ID:           id,
		LeagueID:     l.ID,
		ChallengerID: input.ActorID,
		ChallengedID: input.ChallengedID,
		ProposedTime: input.ProposedTime,
		Location:     input.Location,
		Status:       challenge.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.Validate(); err != nil {
		return challenge.Challenge{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.chalRepo.Create(ctx, c); err != nil {
		return challenge.Challenge{}, fmt.Errorf("create challenge: %w", err)
	}

	s.notify(ctx, ChallengeEvent{Type: ChallengeEventCreated, Challenge: c})
	return c, nil
}

func (s *ChallengeService) isRegistered(ctx context.Context, l league.League, playerID string) (bool, error) {
	if !l.IsDuo() {
		registered, err := s.regRepo.IsPlayerRegistered(ctx, l.ID, playerID)
		if err != nil {
			return false, fmt.Errorf("check registration: %w", err)
		}
		return registered, nil
	}

	duos, err := s.regRepo.ListDuoRegistrations(ctx, l.ID)
	if err != nil {
		return false, fmt.Errorf("list duo registrations: %w", err)
	}
	for _, d := range duos {
		p, exists, err := s.partnerRepo.GetByID(ctx, d.PartnershipID)
		if err != nil {
			return false, fmt.Errorf("get partnership %s: %w", d.PartnershipID, err)
		}
		if exists && p.HasMember(playerID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *ChallengeService) Accept(ctx context.Context, actorID, challengeID string) (challenge.Challenge, error) {
	return s.transition(ctx, "ChallengeService.Accept", actorID, challengeID, challenge.StatusAccepted)
}

func (s *ChallengeService) Reject(ctx context.Context, actorID, challengeID string) (challenge.Challenge, error) {
	return s.transition(ctx, "ChallengeService.Reject", actorID, challengeID, challenge.StatusRejected)
}

func (s *ChallengeService) Complete(ctx context.Context, actorID, challengeID string) (challenge.Challenge, error) {
	return s.transition(ctx, "ChallengeService.Complete", actorID, challengeID, challenge.StatusCompleted)
}

func (s *ChallengeService) Dispute(ctx context.Context, actorID, challengeID string) (challenge.Challenge, error) {
	return s.transition(ctx, "ChallengeService.Dispute", actorID, challengeID, challenge.StatusDisputed)
}

func (s *ChallengeService) transition(ctx context.Context, spanName, actorID, challengeID string, to challenge.Status) (challenge.Challenge, error) {
	ctx, span := startUsecaseSpan(ctx, spanName)
	defer span.End()

	actorID = strings.TrimSpace(actorID)
	challengeID = strings.TrimSpace(challengeID)
	if actorID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if challengeID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge id is required", ErrInvalidInput)
	}

	c, exists, err := s.chalRepo.GetByID(ctx, challengeID)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("get challenge: %w", err)
	}
	if !exists {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge %s", ErrNotFound, challengeID)
	}

	updated, err := c.Transition(actorID, to)
	if err != nil {
		var denied *challenge.ErrActorNotAllowed
		if errors.As(err, &denied) {
			return challenge.Challenge{}, fmt.Errorf("%w: %s", ErrUnauthorized, err)
		}
		return challenge.Challenge{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	updated.UpdatedAt = s.now().UTC()
	if err := s.chalRepo.UpdateStatus(ctx, updated, c.Status); err != nil {
		if errors.Is(err, challenge.ErrConcurrentTransition) {
			return challenge.Challenge{}, fmt.Errorf("%w: %w", ErrWriteConflict, err)
		}
		return challenge.Challenge{}, fmt.Errorf("update challenge status: %w", err)
	}

	s.notify(ctx, ChallengeEvent{Type: ChallengeEventUpdated, Challenge: updated})
	return updated, nil
}

// ListForPlayer returns the player's challenges classified into sent
// and received from their side.
func (s *ChallengeService) ListForPlayer(ctx context.Context, actorID string) ([]ChallengeView, error) {
	ctx, span := startUsecaseSpan(ctx, "ChallengeService.ListForPlayer")
	defer span.End()

	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	challenges, err := s.chalRepo.ListByPlayer(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}

	out := make([]ChallengeView, 0, len(challenges))
	for _, c := range challenges {
		out = append(out, ChallengeView{
			Challenge:   c,
			Perspective: c.PerspectiveFor(actorID),
		})
	}
	return out, nil
}

func (s *ChallengeService) notify(ctx context.Context, event ChallengeEvent) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyChallenge(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "challenge notification failed",
			"event", event.Type,
			"challenge_id", event.Challenge.ID,
			"error", err,
		)
	}
}
