package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/matchpointhq/matchpoint/internal/domain/challenge"
)

type ChallengeRepository struct {
	mu    sync.RWMutex
	items map[string]challenge.Challenge
}

func NewChallengeRepository() *ChallengeRepository {
	return &ChallengeRepository{
		items: make(map[string]challenge.Challenge),
	}
}

func (r *ChallengeRepository) Create(_ context.Context, c challenge.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[c.ID]; exists {
		return fmt.Errorf("challenge %s already exists", c.ID)
	}
	r.items[c.ID] = c

	return nil
}

func (r *ChallengeRepository) GetByID(_ context.Context, challengeID string) (challenge.Challenge, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[challengeID]
	if !ok {
		return challenge.Challenge{}, false, nil
	}

	return c, true, nil
}

func (r *ChallengeRepository) ListByPlayer(_ context.Context, playerID string) ([]challenge.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]challenge.Challenge, 0)
	for _, c := range r.items {
		if c.HasParticipant(playerID) {
			out = append(out, c)
		}
	}
	sortChallenges(out)

	return out, nil
}

func (r *ChallengeRepository) UpdateStatus(_ context.Context, c challenge.Challenge, from challenge.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[c.ID]
	if !exists {
		return fmt.Errorf("challenge %s not found", c.ID)
	}
	if current.Status != from {
		return fmt.Errorf("challenge %s: %w", c.ID, challenge.ErrConcurrentTransition)
	}
	r.items[c.ID] = c

	return nil
}
