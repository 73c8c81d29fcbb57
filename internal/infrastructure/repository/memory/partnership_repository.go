package memory

import (
	"context"
	"sync"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
)

// PartnershipRepository keeps an active-pairing index per player, so
// the one-active-partnership rule holds for both members atomically.
type PartnershipRepository struct {
	mu             sync.RWMutex
	items          map[string]partnership.Partnership
	activeByPlayer map[string]string
	now            func() time.Time
}

func NewPartnershipRepository() *PartnershipRepository {
	return &PartnershipRepository{
		items:          make(map[string]partnership.Partnership),
		activeByPlayer: make(map[string]string),
		now:            time.Now,
	}
}

func (r *PartnershipRepository) Create(_ context.Context, p partnership.Partnership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, paired := r.activeByPlayer[p.Player1ID]; paired {
		return partnership.ErrMemberAlreadyPaired
	}
	if _, paired := r.activeByPlayer[p.Player2ID]; paired {
		return partnership.ErrMemberAlreadyPaired
	}

	r.items[p.ID] = p
	if p.Active {
		r.activeByPlayer[p.Player1ID] = p.ID
		r.activeByPlayer[p.Player2ID] = p.ID
	}

	return nil
}

func (r *PartnershipRepository) GetByID(_ context.Context, partnershipID string) (partnership.Partnership, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[partnershipID]
	if !ok {
		return partnership.Partnership{}, false, nil
	}

	return p, true, nil
}

func (r *PartnershipRepository) GetActiveByPlayer(_ context.Context, playerID string) (partnership.Partnership, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.activeByPlayer[playerID]
	if !ok {
		return partnership.Partnership{}, false, nil
	}

	return r.items[id], true, nil
}

func (r *PartnershipRepository) Dissolve(_ context.Context, partnershipID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[partnershipID]
	if !ok || !p.Active {
		return nil
	}

	dissolvedAt := r.now().UTC()
	p.Active = false
	p.DissolvedAt = &dissolvedAt
	r.items[partnershipID] = p

	delete(r.activeByPlayer, p.Player1ID)
	delete(r.activeByPlayer, p.Player2ID)

	return nil
}
