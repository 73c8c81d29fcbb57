package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	"github.com/matchpointhq/matchpoint/internal/domain/registration"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
)

// LeagueSummary is a league enriched with clock-derived status and the
// current registration fill, ready for listing.
type LeagueSummary struct {
	League          league.League
	Status          league.Status
	RegisteredUnits int
}

// SpotsLeft reports the remaining registration units, floored at zero.
func (s LeagueSummary) SpotsLeft() int {
	left := s.League.Capacity() - s.RegisteredUnits
	if left < 0 {
		return 0
	}
	return left
}

type ListLeaguesInput struct {
	Sport  string
	Kind   string
	Status string
}

type LeagueService struct {
	leagueRepo  league.Repository
	regRepo     registration.Repository
	partnerRepo partnership.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	regRepo registration.Repository,
	partnerRepo partnership.Repository,
	idGen idgen.Generator,
) *LeagueService {
	return &LeagueService{
		leagueRepo:  leagueRepo,
		regRepo:     regRepo,
		partnerRepo: partnerRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

// List returns league summaries matching the filter. Status filtering
// happens here rather than in the repository because status is derived
// from the clock, never stored.
func (s *LeagueService) List(ctx context.Context, input ListLeaguesInput) ([]LeagueSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.List")
	defer span.End()

	filter := league.Filter{}
	if sport := strings.TrimSpace(input.Sport); sport != "" {
		st := league.SportType(strings.ToLower(sport))
		if _, ok := league.AllSports[st]; !ok {
			return nil, fmt.Errorf("%w: unknown sport type %q", ErrInvalidInput, input.Sport)
		}
		filter.Sport = st
	}
	if kind := strings.TrimSpace(input.Kind); kind != "" {
		k := league.Kind(strings.ToLower(kind))
		if k != league.KindIndividual && k != league.KindDuo {
			return nil, fmt.Errorf("%w: unknown league kind %q", ErrInvalidInput, input.Kind)
		}
		filter.Kind = k
	}

	var statusFilter league.Status
	if status := strings.TrimSpace(input.Status); status != "" {
		st := league.Status(strings.ToLower(status))
		switch st {
		case league.StatusUpcoming, league.StatusActive, league.StatusCompleted:
			statusFilter = st
		default:
			return nil, fmt.Errorf("%w: unknown league status %q", ErrInvalidInput, input.Status)
		}
	}

	leagues, err := s.leagueRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	now := s.now().UTC()
	if statusFilter != "" {
		kept := leagues[:0]
		for _, l := range leagues {
			if l.StatusAt(now) == statusFilter {
				kept = append(kept, l)
			}
		}
		leagues = kept
	}

	counts, err := s.registeredUnits(ctx, leagues)
	if err != nil {
		return nil, err
	}

	out := make([]LeagueSummary, 0, len(leagues))
	for i, l := range leagues {
		out = append(out, LeagueSummary{
			League:          l,
			Status:          l.StatusAt(now),
			RegisteredUnits: counts[i],
		})
	}
	return out, nil
}

// registeredUnits fans the per-league count queries out over a bounded
// pool; results come back in submission order.
func (s *LeagueService) registeredUnits(ctx context.Context, leagues []league.League) ([]int, error) {
	if len(leagues) == 0 {
		return nil, nil
	}

	p := pool.NewWithResults[int]().WithContext(ctx).WithMaxGoroutines(8)
	for _, l := range leagues {
		l := l
		p.Go(func(ctx context.Context) (int, error) {
			return s.countUnits(ctx, l)
		})
	}

	counts, err := p.Wait()
	if err != nil {
		return nil, fmt.Errorf("count league registrations: %w", err)
	}
	return counts, nil
}

func (s *LeagueService) countUnits(ctx context.Context, l league.League) (int, error) {
	if l.IsDuo() {
		return s.regRepo.CountDuoRegistrations(ctx, l.ID)
	}
	return s.regRepo.CountParticipants(ctx, l.ID)
}

func (s *LeagueService) Get(ctx context.Context, leagueID string) (LeagueSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.Get")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return LeagueSummary{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueSummary{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeagueSummary{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	units, err := s.countUnits(ctx, l)
	if err != nil {
		return LeagueSummary{}, fmt.Errorf("count league registrations: %w", err)
	}

	return LeagueSummary{
		League:          l,
		Status:          l.StatusAt(s.now().UTC()),
		RegisteredUnits: units,
	}, nil
}

// Create normalizes the draft into a league and persists it. Rule
// violations surface as an aggregated ValidationError wrapped in
// ErrInvalidInput so the transport can render every field at once.
func (s *LeagueService) Create(ctx context.Context, createdBy string, draft league.Draft) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.Create")
	defer span.End()

	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return league.League{}, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	l, verr := draft.Normalize(createdBy, now)
	if verr != nil {
		return league.League{}, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	l.ID = id

	if err := s.leagueRepo.Create(ctx, l); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}
	return l, nil
}

// Participants lists the individual players registered to a league.
// For duo leagues each registered pair contributes both members.
func (s *LeagueService) Participants(ctx context.Context, leagueID string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.Participants")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	if !l.IsDuo() {
		participants, err := s.regRepo.ListParticipants(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("list participants: %w", err)
		}
		out := make([]string, 0, len(participants))
		for _, p := range participants {
			out = append(out, p.PlayerID)
		}
		return out, nil
	}

	duos, err := s.regRepo.ListDuoRegistrations(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list duo registrations: %w", err)
	}
	out := make([]string, 0, len(duos)*2)
	for _, d := range duos {
		p, exists, err := s.partnerRepo.GetByID(ctx, d.PartnershipID)
		if err != nil {
			return nil, fmt.Errorf("get partnership %s: %w", d.PartnershipID, err)
		}
		if !exists {
			continue
		}
		out = append(out, p.Player1ID, p.Player2ID)
	}
	return out, nil
}
