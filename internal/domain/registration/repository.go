package registration

import (
	"context"
	"errors"
)

// Write-boundary rejections. The eligibility pre-check is advisory;
// these errors from the store are authoritative and the caller must
// surface them as a conflict, not as a pre-check denial.
var (
	ErrCapacityExceeded      = errors.New("league capacity exceeded")
	ErrDuplicateRegistration = errors.New("registration already exists")
)

// Repository describes registration persistence needs from use cases.
type Repository interface {
	// CreateParticipant atomically claims a spot in an individual
	// league, failing with ErrCapacityExceeded or
	// ErrDuplicateRegistration when the claim loses a race.
	CreateParticipant(ctx context.Context, p Participant, maxParticipants int) error
	ListParticipants(ctx context.Context, leagueID string) ([]Participant, error)
	CountParticipants(ctx context.Context, leagueID string) (int, error)
	IsPlayerRegistered(ctx context.Context, leagueID, playerID string) (bool, error)

	// CreateDuoRegistration is the pair-entry counterpart of
	// CreateParticipant with the same conflict semantics.
	CreateDuoRegistration(ctx context.Context, r DuoRegistration, maxPairs int) error
	ListDuoRegistrations(ctx context.Context, leagueID string) ([]DuoRegistration, error)
	CountDuoRegistrations(ctx context.Context, leagueID string) (int, error)
	IsPartnershipRegistered(ctx context.Context, leagueID, partnershipID string) (bool, error)
}
