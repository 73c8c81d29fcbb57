package challenge

import (
	"fmt"
	"strings"
	"time"
)

// Perspective tells a player which side of a challenge they are on.
// It is derived from the requester identity, never stored.
type Perspective string

const (
	PerspectiveSent     Perspective = "sent"
	PerspectiveReceived Perspective = "received"
)

// Challenge is a direct player-to-player match proposal inside a league.
type Challenge struct {
	ID           string
	LeagueID     string
	ChallengerID string
	ChallengedID string
	ProposedTime time.Time
	Location     string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c Challenge) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("challenge id is required")
	}
	if strings.TrimSpace(c.ChallengerID) == "" || strings.TrimSpace(c.ChallengedID) == "" {
		return fmt.Errorf("challenge requires both players")
	}
	if c.ChallengerID == c.ChallengedID {
		return fmt.Errorf("players cannot challenge themselves")
	}
	if strings.TrimSpace(c.LeagueID) == "" {
		return fmt.Errorf("challenge league id is required")
	}
	if c.ProposedTime.IsZero() {
		return fmt.Errorf("challenge proposed time is required")
	}

	return nil
}

// HasParticipant reports whether the player is either side of the challenge.
func (c Challenge) HasParticipant(playerID string) bool {
	return playerID != "" && (c.ChallengerID == playerID || c.ChallengedID == playerID)
}

// PerspectiveFor classifies the challenge from the requester's side.
func (c Challenge) PerspectiveFor(playerID string) Perspective {
	if c.ChallengerID == playerID {
		return PerspectiveSent
	}
	return PerspectiveReceived
}
