package user

import "context"

// Repository describes profile persistence needs from use cases.
type Repository interface {
	GetProfile(ctx context.Context, userID string) (Profile, bool, error)
	UpsertProfile(ctx context.Context, profile Profile) error
}
