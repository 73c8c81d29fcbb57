package httpapi

import (
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/challenge"
	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/message"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
	"github.com/matchpointhq/matchpoint/internal/domain/registration"
	"github.com/matchpointhq/matchpoint/internal/domain/user"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

type leagueDTO struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Sport                string    `json:"sport"`
	Gender               string    `json:"gender"`
	SkillLevelMin        int       `json:"skillLevelMin"`
	SkillLevelMax        int       `json:"skillLevelMax"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	RegistrationDeadline time.Time `json:"registrationDeadline"`
	Location             string    `json:"location"`
	MatchFormat          string    `json:"matchFormat"`
	Kind                 string    `json:"kind"`
	IsDoubles            bool      `json:"isDoubles"`
	MaxParticipants      int       `json:"maxParticipants,omitempty"`
	MaxDuoPairs          int       `json:"maxDuoPairs,omitempty"`
	Capacity             int       `json:"capacity"`
	AgeMin               int       `json:"ageMin,omitempty"`
	AgeMax               int       `json:"ageMax,omitempty"`
	Rules                string    `json:"rules,omitempty"`
	Description          string    `json:"description,omitempty"`
	NavigationPath       string    `json:"navigationPath"`
	CreatedBy            string    `json:"createdBy"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type leagueSummaryDTO struct {
	leagueDTO
	Status          string `json:"status"`
	RegisteredUnits int    `json:"registeredUnits"`
	SpotsLeft       int    `json:"spotsLeft"`
}

// navigationPath resolves the client route for a league. Duo leagues
// live under a separate route so the client renders pair entries.
func navigationPath(l league.League) string {
	if l.IsDuo() {
		return "/duo-tournament/" + l.ID
	}
	return "/tournament/" + l.ID
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:                   l.ID,
		Name:                 l.Name,
		Sport:                string(l.Sport),
		Gender:               string(l.Gender),
		SkillLevelMin:        l.SkillMin,
		SkillLevelMax:        l.SkillMax,
		StartDate:            l.StartDate,
		EndDate:              l.EndDate,
		RegistrationDeadline: l.RegistrationDeadline,
		Location:             l.Location,
		MatchFormat:          string(l.MatchFormat),
		Kind:                 string(l.Kind),
		IsDoubles:            l.IsDoubles(),
		MaxParticipants:      l.MaxParticipants,
		MaxDuoPairs:          l.MaxDuoPairs,
		Capacity:             l.Capacity(),
		AgeMin:               l.AgeMin,
		AgeMax:               l.AgeMax,
		Rules:                l.Rules,
		Description:          l.Description,
		NavigationPath:       navigationPath(l),
		CreatedBy:            l.CreatedBy,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}

func leagueSummaryToDTO(s usecase.LeagueSummary) leagueSummaryDTO {
	return leagueSummaryDTO{
		leagueDTO:       leagueToDTO(s.League),
		Status:          string(s.Status),
		RegisteredUnits: s.RegisteredUnits,
		SpotsLeft:       s.SpotsLeft(),
	}
}

type eligibilityDTO struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

func decisionToDTO(d registration.Decision) eligibilityDTO {
	return eligibilityDTO{
		Eligible: d.Eligible,
		Reason:   string(d.Reason),
	}
}

type partnershipDTO struct {
	ID          string     `json:"id"`
	Player1ID   string     `json:"player1Id"`
	Player2ID   string     `json:"player2Id"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	DissolvedAt *time.Time `json:"dissolvedAt,omitempty"`
}

func partnershipToDTO(p partnership.Partnership) partnershipDTO {
	return partnershipDTO{
		ID:          p.ID,
		Player1ID:   p.Player1ID,
		Player2ID:   p.Player2ID,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		DissolvedAt: p.DissolvedAt,
	}
}

type challengeDTO struct {
	ID           string    `json:"id"`
	LeagueID     string    `json:"leagueId"`
	ChallengerID string    `json:"challengerId"`
	ChallengedID string    `json:"challengedId"`
	ProposedTime time.Time `json:"proposedTime"`
	Location     string    `json:"location,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Perspective  string    `json:"perspective,omitempty"`
}

func challengeToDTO(c challenge.Challenge) challengeDTO {
	return challengeDTO{
		ID:           c.ID,
		LeagueID:     c.LeagueID,
		ChallengerID: c.ChallengerID,
		ChallengedID: c.ChallengedID,
		ProposedTime: c.ProposedTime,
		Location:     c.Location,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func challengeViewToDTO(v usecase.ChallengeView) challengeDTO {
	dto := challengeToDTO(v.Challenge)
	dto.Perspective = string(v.Perspective)
	return dto
}

type messageDTO struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"senderId"`
	RecipientID string     `json:"recipientId"`
	Body        string     `json:"body"`
	SentAt      time.Time  `json:"sentAt"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	Read        bool       `json:"read"`
}

func messageToDTO(m message.Message) messageDTO {
	return messageDTO{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		SentAt:      m.SentAt,
		ReadAt:      m.ReadAt,
		Read:        m.IsRead(),
	}
}

type profileDTO struct {
	UserID         string    `json:"userId"`
	DisplayName    string    `json:"displayName"`
	SkillLevel     int       `json:"skillLevel,omitempty"`
	PreferredSport string    `json:"preferredSport,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func profileToDTO(p user.Profile) profileDTO {
	return profileDTO{
		UserID:         p.UserID,
		DisplayName:    p.DisplayName,
		SkillLevel:     p.SkillLevel,
		PreferredSport: p.PreferredSport,
		Bio:            p.Bio,
		AvatarURL:      p.AvatarURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
