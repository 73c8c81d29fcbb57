package user

import (
	"fmt"
	"strings"
	"time"
)

// Principal identifies an authenticated player on API requests.
type Principal struct {
	UserID string
	Email  string
}

// Profile is the player-facing account data managed inside the platform.
// Avatar bytes live in external storage; only the reference is kept here.
type Profile struct {
	UserID         string
	DisplayName    string
	SkillLevel     int
	PreferredSport string
	Bio            string
	AvatarURL      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("profile user id is required")
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		return fmt.Errorf("profile display name is required")
	}
	if p.SkillLevel != 0 && (p.SkillLevel < 1 || p.SkillLevel > 10) {
		return fmt.Errorf("profile skill level must be between 1 and 10")
	}

	return nil
}
