package registration

import "time"

// Participant is one registered player in an individual league.
type Participant struct {
	LeagueID     string
	PlayerID     string
	RegisteredAt time.Time
}

// DuoRegistration is one registered partnership in a duo league.
type DuoRegistration struct {
	LeagueID      string
	PartnershipID string
	RegisteredAt  time.Time
}
