package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchpointhq/matchpoint/internal/domain/challenge"
	qb "github.com/matchpointhq/matchpoint/internal/platform/querybuilder"
)

type ChallengeRepository struct {
	db *sqlx.DB
}

func NewChallengeRepository(db *sqlx.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

type challengeRow struct {
	ID           string    `db:"id"`
	LeagueID     string    `db:"league_id"`
	ChallengerID string    `db:"challenger_id"`
	ChallengedID string    `db:"challenged_id"`
	ProposedTime time.Time `db:"proposed_time"`
	Location     string    `db:"location"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func challengeFromRow(row challengeRow) challenge.Challenge {
	return challenge.Challenge{
		ID:           row.ID,
		LeagueID:     row.LeagueID,
		ChallengerID: row.ChallengerID,
		ChallengedID: row.ChallengedID,
		ProposedTime: row.ProposedTime,
		Location:     row.Location,
		Status:       challenge.Status(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *ChallengeRepository) Create(ctx context.Context, c challenge.Challenge) error {
	query, args, err := qb.InsertModel("challenges", challengeRow{
		ID:           c.ID,
		LeagueID:     c.LeagueID,
		ChallengerID: c.ChallengerID,
		ChallengedID: c.ChallengedID,
		ProposedTime: c.ProposedTime,
		Location:     c.Location,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert challenge query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert challenge: %w", err)
	}
	return nil
}

func (r *ChallengeRepository) GetByID(ctx context.Context, challengeID string) (challenge.Challenge, bool, error) {
	const query = `
SELECT id, league_id, challenger_id, challenged_id, proposed_time, location, status, created_at, updated_at
FROM challenges
WHERE id = $1`

	var row challengeRow
	if err := r.db.GetContext(ctx, &row, query, challengeID); err != nil {
		if isNotFound(err) {
			return challenge.Challenge{}, false, nil
		}
		return challenge.Challenge{}, false, fmt.Errorf("get challenge: %w", err)
	}

	return challengeFromRow(row), true, nil
}

func (r *ChallengeRepository) ListByPlayer(ctx context.Context, playerID string) ([]challenge.Challenge, error) {
	const query = `
SELECT id, league_id, challenger_id, challenged_id, proposed_time, location, status, created_at, updated_at
FROM challenges
WHERE challenger_id = $1 OR challenged_id = $1
ORDER BY created_at, id`

	var rows []challengeRow
	if err := r.db.SelectContext(ctx, &rows, query, playerID); err != nil {
		return nil, fmt.Errorf("select challenges: %w", err)
	}

	out := make([]challenge.Challenge, 0, len(rows))
	for _, row := range rows {
		out = append(out, challengeFromRow(row))
	}
	return out, nil
}

func (r *ChallengeRepository) UpdateStatus(ctx context.Context, c challenge.Challenge, from challenge.Status) error {
	query, args, err := qb.Update("challenges").
		Set("status", string(c.Status)).
		Set("updated_at", c.UpdatedAt).
		Where(qb.Eq("id", c.ID), qb.Eq("status", string(from))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update challenge query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update challenge status: %w", err)
	}
	// Zero rows means the row is gone or another transition won the
	// race; either way the caller's read is stale.
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("challenge %s: %w", c.ID, challenge.ErrConcurrentTransition)
	}
	return nil
}
