package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchpointhq/matchpoint/internal/domain/user"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type profileRow struct {
	UserID         string    `db:"user_id"`
	DisplayName    string    `db:"display_name"`
	SkillLevel     int       `db:"skill_level"`
	PreferredSport string    `db:"preferred_sport"`
	Bio            string    `db:"bio"`
	AvatarURL      string    `db:"avatar_url"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (user.Profile, bool, error) {
	const query = `
SELECT user_id, display_name, skill_level, preferred_sport, bio, avatar_url, created_at, updated_at
FROM profiles
WHERE user_id = $1`

	var row profileRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if isNotFound(err) {
			return user.Profile{}, false, nil
		}
		return user.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}

	return user.Profile{
		UserID:         row.UserID,
		DisplayName:    row.DisplayName,
		SkillLevel:     row.SkillLevel,
		PreferredSport: row.PreferredSport,
		Bio:            row.Bio,
		AvatarURL:      row.AvatarURL,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, true, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile user.Profile) error {
	const query = `
INSERT INTO profiles (user_id, display_name, skill_level, preferred_sport, bio, avatar_url, created_at, updated_at)
VALUES (:user_id, :display_name, :skill_level, :preferred_sport, :bio, :avatar_url, :created_at, :updated_at)
ON CONFLICT (user_id)
DO UPDATE SET
    display_name = EXCLUDED.display_name,
    skill_level = EXCLUDED.skill_level,
    preferred_sport = EXCLUDED.preferred_sport,
    bio = EXCLUDED.bio,
    avatar_url = EXCLUDED.avatar_url,
    updated_at = EXCLUDED.updated_at`

	args := map[string]any{
		"user_id":         profile.UserID,
		"display_name":    profile.DisplayName,
		"skill_level":     profile.SkillLevel,
		"preferred_sport": profile.PreferredSport,
		"bio":             profile.Bio,
		"avatar_url":      profile.AvatarURL,
		"created_at":      profile.CreatedAt,
		"updated_at":      profile.UpdatedAt,
	}

	boundQuery, boundArgs, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind upsert profile query: %w", err)
	}
	boundQuery = r.db.Rebind(boundQuery)

	if _, err := r.db.ExecContext(ctx, boundQuery, boundArgs...); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
