package memory

import (
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
)

const (
	LeagueIDRiversideTennis = "riverside-tennis-spring-2026"
	LeagueIDHarborPadel     = "harbor-padel-duo-2026"
)

// SeedLeagues backs local development runs without a database.
func SeedLeagues(now time.Time) []league.League {
	now = now.UTC()
	return []league.League{
		{
			ID:                   LeagueIDRiversideTennis,
			Name:                 "Riverside Tennis Spring Open",
			Sport:                league.SportTennis,
			Gender:               league.GenderMixed,
			SkillMin:             3,
			SkillMax:             7,
			StartDate:            now.AddDate(0, 0, 14),
			EndDate:              now.AddDate(0, 2, 14),
			RegistrationDeadline: now.AddDate(0, 0, 14),
			Location:             "Riverside Courts",
			MatchFormat:          league.MatchFormatBestOfThree,
			Kind:                 league.KindIndividual,
			MaxParticipants:      16,
			CreatedBy:            "seed",
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ID:                   LeagueIDHarborPadel,
			Name:                 "Harbor Padel Duo Ladder",
			Sport:                league.SportPadel,
			Gender:               league.GenderMixed,
			SkillMin:             1,
			SkillMax:             10,
			StartDate:            now.AddDate(0, 0, 7),
			EndDate:              now.AddDate(0, 3, 7),
			RegistrationDeadline: now.AddDate(0, 0, 7),
			Location:             "Harbor Sports Club",
			MatchFormat:          league.MatchFormatBestOfThree,
			Kind:                 league.KindDuo,
			MaxDuoPairs:          8,
			CreatedBy:            "seed",
			CreatedAt:            now,
			UpdatedAt:            now,
		},
	}
}
