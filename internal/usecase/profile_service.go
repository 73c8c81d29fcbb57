package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/user"
)

type UpdateProfileInput struct {
	ActorID        string
	DisplayName    string
	SkillLevel     int
	PreferredSport string
	Bio            string
	AvatarURL      string
}

type ProfileService struct {
	userRepo user.Repository
	now      func() time.Time
}

func NewProfileService(userRepo user.Repository) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *ProfileService) Get(ctx context.Context, actorID string) (user.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "ProfileService.Get")
	defer span.End()

	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return user.Profile{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	p, exists, err := s.userRepo.GetProfile(ctx, actorID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	if !exists {
		return user.Profile{}, fmt.Errorf("%w: profile %s", ErrNotFound, actorID)
	}
	return p, nil
}

// Update upserts the actor's profile, preserving the original creation
// timestamp when one exists.
func (s *ProfileService) Update(ctx context.Context, input UpdateProfileInput) (user.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "ProfileService.Update")
	defer span.End()

	input.ActorID = strings.TrimSpace(input.ActorID)
	if input.ActorID == "" {
		return user.Profile{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	p := user.Profile{
		UserID:         input.ActorID,
		DisplayName:    strings.TrimSpace(input.DisplayName),
		SkillLevel:     input.SkillLevel,
		PreferredSport: strings.ToLower(strings.TrimSpace(input.PreferredSport)),
		Bio:            strings.TrimSpace(input.Bio),
		AvatarURL:      strings.TrimSpace(input.AvatarURL),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	existing, exists, err := s.userRepo.GetProfile(ctx, input.ActorID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	if exists {
		p.CreatedAt = existing.CreatedAt
	}

	if err := p.Validate(); err != nil {
		return user.Profile{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.userRepo.UpsertProfile(ctx, p); err != nil {
		return user.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return p, nil
}
