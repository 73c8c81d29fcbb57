package postgres

import (
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
)

type leagueTableModel struct {
	ID                   string    `db:"id"`
	Name                 string    `db:"name"`
	SportType            string    `db:"sport_type"`
	GenderCategory       string    `db:"gender_category"`
	SkillLevelMin        int       `db:"skill_level_min"`
	SkillLevelMax        int       `db:"skill_level_max"`
	StartDate            time.Time `db:"start_date"`
	EndDate              time.Time `db:"end_date"`
	RegistrationDeadline time.Time `db:"registration_deadline"`
	Location             string    `db:"location"`
	MatchFormat          string    `db:"match_format"`
	Kind                 string    `db:"kind"`
	MaxParticipants      int       `db:"max_participants"`
	MaxDuoPairs          int       `db:"max_duo_pairs"`
	AgeMin               int       `db:"age_min"`
	AgeMax               int       `db:"age_max"`
	Rules                string    `db:"rules"`
	Description          string    `db:"description"`
	CreatedBy            string    `db:"created_by"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:                   row.ID,
		Name:                 row.Name,
		Sport:                league.SportType(row.SportType),
		Gender:               league.GenderCategory(row.GenderCategory),
		SkillMin:             row.SkillLevelMin,
		SkillMax:             row.SkillLevelMax,
		StartDate:            row.StartDate,
		EndDate:              row.EndDate,
		RegistrationDeadline: row.RegistrationDeadline,
		Location:             row.Location,
		MatchFormat:          league.MatchFormat(row.MatchFormat),
		Kind:                 league.Kind(row.Kind),
		MaxParticipants:      row.MaxParticipants,
		MaxDuoPairs:          row.MaxDuoPairs,
		AgeMin:               row.AgeMin,
		AgeMax:               row.AgeMax,
		Rules:                row.Rules,
		Description:          row.Description,
		CreatedBy:            row.CreatedBy,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

func leagueToRow(l league.League) leagueTableModel {
	return leagueTableModel{
		ID:                   l.ID,
		Name:                 l.Name,
		SportType:            string(l.Sport),
		GenderCategory:       string(l.Gender),
		SkillLevelMin:        l.SkillMin,
		SkillLevelMax:        l.SkillMax,
		StartDate:            l.StartDate,
		EndDate:              l.EndDate,
		RegistrationDeadline: l.RegistrationDeadline,
		Location:             l.Location,
		MatchFormat:          string(l.MatchFormat),
		Kind:                 string(l.Kind),
		MaxParticipants:      l.MaxParticipants,
		MaxDuoPairs:          l.MaxDuoPairs,
		AgeMin:               l.AgeMin,
		AgeMax:               l.AgeMax,
		Rules:                l.Rules,
		Description:          l.Description,
		CreatedBy:            l.CreatedBy,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}
