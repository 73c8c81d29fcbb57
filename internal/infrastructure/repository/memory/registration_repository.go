package memory

import (
	"context"
	"sync"

	"github.com/matchpointhq/matchpoint/internal/domain/registration"
)

// RegistrationRepository enforces capacity and uniqueness atomically
// under a single lock, so concurrent claims for the last spot resolve
// to exactly one winner.
type RegistrationRepository struct {
	mu           sync.RWMutex
	participants map[string]map[string]registration.Participant
	duos         map[string]map[string]registration.DuoRegistration
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{
		participants: make(map[string]map[string]registration.Participant),
		duos:         make(map[string]map[string]registration.DuoRegistration),
	}
}

func (r *RegistrationRepository) CreateParticipant(_ context.Context, p registration.Participant, maxParticipants int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byPlayer := r.participants[p.LeagueID]
	if byPlayer == nil {
		byPlayer = make(map[string]registration.Participant)
		r.participants[p.LeagueID] = byPlayer
	}

	if _, exists := byPlayer[p.PlayerID]; exists {
		return registration.ErrDuplicateRegistration
	}
	if maxParticipants > 0 && len(byPlayer) >= maxParticipants {
		return registration.ErrCapacityExceeded
	}

	byPlayer[p.PlayerID] = p
	return nil
}

func (r *RegistrationRepository) ListParticipants(_ context.Context, leagueID string) ([]registration.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byPlayer := r.participants[leagueID]
	out := make([]registration.Participant, 0, len(byPlayer))
	for _, p := range byPlayer {
		out = append(out, p)
	}
	sortParticipants(out)

	return out, nil
}

func (r *RegistrationRepository) CountParticipants(_ context.Context, leagueID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.participants[leagueID]), nil
}

func (r *RegistrationRepository) IsPlayerRegistered(_ context.Context, leagueID, playerID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.participants[leagueID][playerID]
	return ok, nil
}

func (r *RegistrationRepository) CreateDuoRegistration(_ context.Context, d registration.DuoRegistration, maxPairs int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byPair := r.duos[d.LeagueID]
	if byPair == nil {
		byPair = make(map[string]registration.DuoRegistration)
		r.duos[d.LeagueID] = byPair
	}

	if _, exists := byPair[d.PartnershipID]; exists {
		return registration.ErrDuplicateRegistration
	}
	if maxPairs > 0 && len(byPair) >= maxPairs {
		return registration.ErrCapacityExceeded
	}

	byPair[d.PartnershipID] = d
	return nil
}

func (r *RegistrationRepository) ListDuoRegistrations(_ context.Context, leagueID string) ([]registration.DuoRegistration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byPair := r.duos[leagueID]
	out := make([]registration.DuoRegistration, 0, len(byPair))
	for _, d := range byPair {
		out = append(out, d)
	}
	sortDuoRegistrations(out)

	return out, nil
}

func (r *RegistrationRepository) CountDuoRegistrations(_ context.Context, leagueID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.duos[leagueID]), nil
}

func (r *RegistrationRepository) IsPartnershipRegistered(_ context.Context, leagueID, partnershipID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.duos[leagueID][partnershipID]
	return ok, nil
}
