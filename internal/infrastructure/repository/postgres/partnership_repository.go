package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
)

type PartnershipRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPartnershipRepository(db *sqlx.DB) *PartnershipRepository {
	return &PartnershipRepository{db: db, now: time.Now}
}

// Create inserts the partnership plus one membership row per player.
// A partial unique index on active memberships turns "either member
// is already paired" into a unique violation here.
func (r *PartnershipRepository) Create(ctx context.Context, p partnership.Partnership) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for partnership create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertPartnership = `
INSERT INTO partnerships (id, player1_id, player2_id, active, created_at, dissolved_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, insertPartnership, p.ID, p.Player1ID, p.Player2ID, p.Active, p.CreatedAt, p.DissolvedAt); err != nil {
		return fmt.Errorf("insert partnership: %w", err)
	}

	if p.Active {
		const insertMember = `
INSERT INTO partnership_members (partnership_id, player_id, active)
VALUES ($1, $2, TRUE)`
		for _, playerID := range []string{p.Player1ID, p.Player2ID} {
			if _, err := tx.ExecContext(ctx, insertMember, p.ID, playerID); err != nil {
				if isUniqueViolation(err) {
					return partnership.ErrMemberAlreadyPaired
				}
				return fmt.Errorf("insert partnership member: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit partnership create: %w", err)
	}
	return nil
}

type partnershipRow struct {
	ID          string     `db:"id"`
	Player1ID   string     `db:"player1_id"`
	Player2ID   string     `db:"player2_id"`
	Active      bool       `db:"active"`
	CreatedAt   time.Time  `db:"created_at"`
	DissolvedAt *time.Time `db:"dissolved_at"`
}

func partnershipFromRow(row partnershipRow) partnership.Partnership {
	return partnership.Partnership{
		ID:          row.ID,
		Player1ID:   row.Player1ID,
		Player2ID:   row.Player2ID,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
		DissolvedAt: row.DissolvedAt,
	}
}

func (r *PartnershipRepository) GetByID(ctx context.Context, partnershipID string) (partnership.Partnership, bool, error) {
	const query = `
SELECT id, player1_id, player2_id, active, created_at, dissolved_at
FROM partnerships
WHERE id = $1`

	var row partnershipRow
	if err := r.db.GetContext(ctx, &row, query, partnershipID); err != nil {
		if isNotFound(err) {
			return partnership.Partnership{}, false, nil
		}
		return partnership.Partnership{}, false, fmt.Errorf("get partnership: %w", err)
	}

	return partnershipFromRow(row), true, nil
}

func (r *PartnershipRepository) GetActiveByPlayer(ctx context.Context, playerID string) (partnership.Partnership, bool, error) {
	const query = `
SELECT p.id, p.player1_id, p.player2_id, p.active, p.created_at, p.dissolved_at
FROM partnerships p
JOIN partnership_members m ON m.partnership_id = p.id
WHERE m.player_id = $1
  AND m.active`

	var row partnershipRow
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return partnership.Partnership{}, false, nil
		}
		return partnership.Partnership{}, false, fmt.Errorf("get active partnership: %w", err)
	}

	return partnershipFromRow(row), true, nil
}

func (r *PartnershipRepository) Dissolve(ctx context.Context, partnershipID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for partnership dissolve: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const dissolve = `
UPDATE partnerships
SET active = FALSE, dissolved_at = $2
WHERE id = $1
  AND active`
	if _, err := tx.ExecContext(ctx, dissolve, partnershipID, r.now().UTC()); err != nil {
		return fmt.Errorf("dissolve partnership: %w", err)
	}

	const releaseMembers = `
UPDATE partnership_members
SET active = FALSE
WHERE partnership_id = $1
  AND active`
	if _, err := tx.ExecContext(ctx, releaseMembers, partnershipID); err != nil {
		return fmt.Errorf("release partnership members: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit partnership dissolve: %w", err)
	}
	return nil
}
