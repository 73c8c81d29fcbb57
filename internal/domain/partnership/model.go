package partnership

import (
	"fmt"
	"strings"
	"time"
)

// Partnership is a standing pairing between two players, independent of
// any specific league. A player holds at most one active partnership at
// a time; the persistence layer enforces that for both members.
type Partnership struct {
	ID          string
	Player1ID   string
	Player2ID   string
	Active      bool
	CreatedAt   time.Time
	DissolvedAt *time.Time
}

func (p Partnership) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("partnership id is required")
	}
	if strings.TrimSpace(p.Player1ID) == "" || strings.TrimSpace(p.Player2ID) == "" {
		return fmt.Errorf("partnership requires two players")
	}
	if p.Player1ID == p.Player2ID {
		return fmt.Errorf("partnership players must differ")
	}

	return nil
}

// HasMember reports whether the player is either side of the pairing.
func (p Partnership) HasMember(playerID string) bool {
	return playerID != "" && (p.Player1ID == playerID || p.Player2ID == playerID)
}

// PartnerOf returns the other member of the pairing.
func (p Partnership) PartnerOf(playerID string) (string, bool) {
	switch playerID {
	case p.Player1ID:
		return p.Player2ID, true
	case p.Player2ID:
		return p.Player1ID, true
	default:
		return "", false
	}
}
