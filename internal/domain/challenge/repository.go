package challenge

import (
	"context"
	"errors"
)

// ErrConcurrentTransition is the authoritative write-boundary rejection
// when a status update races another transition: the stored status no
// longer matches the one the caller read.
var ErrConcurrentTransition = errors.New("challenge status changed concurrently")

// Repository describes challenge persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, c Challenge) error
	GetByID(ctx context.Context, challengeID string) (Challenge, bool, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Challenge, error)
	// UpdateStatus persists a transition only while the stored status
	// still equals from; otherwise it fails with
	// ErrConcurrentTransition, regardless of what the caller read.
	UpdateStatus(ctx context.Context, c Challenge, from Status) error
}
