package partnership

import (
	"context"
	"errors"
)

// ErrMemberAlreadyPaired is the authoritative write-boundary rejection
// when either member of a new partnership already holds an active one.
var ErrMemberAlreadyPaired = errors.New("player already holds an active partnership")

// Repository describes partnership persistence needs from use cases.
type Repository interface {
	// Create persists a new active partnership. It fails with
	// ErrMemberAlreadyPaired when either member is already actively
	// paired, regardless of what a pre-check observed.
	Create(ctx context.Context, p Partnership) error
	GetByID(ctx context.Context, partnershipID string) (Partnership, bool, error)
	GetActiveByPlayer(ctx context.Context, playerID string) (Partnership, bool, error)
	Dissolve(ctx context.Context, partnershipID string) error
}
