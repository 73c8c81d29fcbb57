package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchpointhq/matchpoint/internal/domain/registration"
)

type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateParticipant claims a spot inside a transaction that locks the
// league row, so the capacity count and the insert are atomic against
// concurrent claims for the last spot.
func (r *RegistrationRepository) CreateParticipant(ctx context.Context, p registration.Participant, maxParticipants int) error {
	return r.claim(ctx, claimSpec{
		leagueID:   p.LeagueID,
		max:        maxParticipants,
		countQuery: `SELECT COUNT(*) FROM league_participants WHERE league_id = $1`,
		insertQuery: `
INSERT INTO league_participants (league_id, player_id, registered_at)
VALUES ($1, $2, $3)`,
		insertArgs: []any{p.LeagueID, p.PlayerID, p.RegisteredAt},
	})
}

func (r *RegistrationRepository) CreateDuoRegistration(ctx context.Context, d registration.DuoRegistration, maxPairs int) error {
	return r.claim(ctx, claimSpec{
		leagueID:   d.LeagueID,
		max:        maxPairs,
		countQuery: `SELECT COUNT(*) FROM league_duo_registrations WHERE league_id = $1`,
		insertQuery: `
INSERT INTO league_duo_registrations (league_id, partnership_id, registered_at)
VALUES ($1, $2, $3)`,
		insertArgs: []any{d.LeagueID, d.PartnershipID, d.RegisteredAt},
	})
}

type claimSpec struct {
	leagueID    string
	max         int
	countQuery  string
	insertQuery string
	insertArgs  []any
}

func (r *RegistrationRepository) claim(ctx context.Context, spec claimSpec) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for registration claim: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var lockedID string
	if err := tx.GetContext(ctx, &lockedID, `SELECT id FROM leagues WHERE id = $1 FOR UPDATE`, spec.leagueID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("league %s not found", spec.leagueID)
		}
		return fmt.Errorf("lock league row: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, spec.countQuery, spec.leagueID); err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if spec.max > 0 && count >= spec.max {
		return registration.ErrCapacityExceeded
	}

	if _, err := tx.ExecContext(ctx, spec.insertQuery, spec.insertArgs...); err != nil {
		if isUniqueViolation(err) {
			return registration.ErrDuplicateRegistration
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit registration claim: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) ListParticipants(ctx context.Context, leagueID string) ([]registration.Participant, error) {
	const query = `
SELECT league_id, player_id, registered_at
FROM league_participants
WHERE league_id = $1
ORDER BY registered_at, player_id`

	var rows []struct {
		LeagueID     string    `db:"league_id"`
		PlayerID     string    `db:"player_id"`
		RegisteredAt time.Time `db:"registered_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("select participants: %w", err)
	}

	out := make([]registration.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, registration.Participant{
			LeagueID:     row.LeagueID,
			PlayerID:     row.PlayerID,
			RegisteredAt: row.RegisteredAt,
		})
	}
	return out, nil
}

func (r *RegistrationRepository) CountParticipants(ctx context.Context, leagueID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM league_participants WHERE league_id = $1`, leagueID); err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return count, nil
}

func (r *RegistrationRepository) IsPlayerRegistered(ctx context.Context, leagueID, playerID string) (bool, error) {
	var exists bool
	const query = `SELECT EXISTS (SELECT 1 FROM league_participants WHERE league_id = $1 AND player_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, leagueID, playerID); err != nil {
		return false, fmt.Errorf("check participant: %w", err)
	}
	return exists, nil
}

func (r *RegistrationRepository) ListDuoRegistrations(ctx context.Context, leagueID string) ([]registration.DuoRegistration, error) {
	const query = `
SELECT league_id, partnership_id, registered_at
FROM league_duo_registrations
WHERE league_id = $1
ORDER BY registered_at, partnership_id`

	var rows []struct {
		LeagueID      string    `db:"league_id"`
		PartnershipID string    `db:"partnership_id"`
		RegisteredAt  time.Time `db:"registered_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("select duo registrations: %w", err)
	}

	out := make([]registration.DuoRegistration, 0, len(rows))
	for _, row := range rows {
		out = append(out, registration.DuoRegistration{
			LeagueID:      row.LeagueID,
			PartnershipID: row.PartnershipID,
			RegisteredAt:  row.RegisteredAt,
		})
	}
	return out, nil
}

func (r *RegistrationRepository) CountDuoRegistrations(ctx context.Context, leagueID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM league_duo_registrations WHERE league_id = $1`, leagueID); err != nil {
		return 0, fmt.Errorf("count duo registrations: %w", err)
	}
	return count, nil
}

func (r *RegistrationRepository) IsPartnershipRegistered(ctx context.Context, leagueID, partnershipID string) (bool, error) {
	var exists bool
	const query = `SELECT EXISTS (SELECT 1 FROM league_duo_registrations WHERE league_id = $1 AND partnership_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, leagueID, partnershipID); err != nil {
		return false, fmt.Errorf("check duo registration: %w", err)
	}
	return exists, nil
}
