package league

import (
	"fmt"
	"strings"
	"time"
)

// FieldError reports one rejected field of a league draft.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationError aggregates every independent rule violation found in a
// draft. Rules never short-circuit each other: a draft with a bad skill
// range and a bad date range reports both.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "league draft is invalid"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "league draft is invalid: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// Draft is a candidate league-creation payload before normalization.
// Capacity carries MaxParticipants for individual entry and MaxDuoPairs
// for team entry; the unused one is ignored.
type Draft struct {
	Name                 string
	Sport                string
	Gender               string
	SkillMin             int
	SkillMax             int
	StartDate            time.Time
	EndDate              time.Time
	RegistrationDeadline time.Time
	Location             string
	MatchFormat          string
	Format               string
	MaxParticipants      int
	MaxDuoPairs          int
	AgeMin               int
	AgeMax               int
	Rules                string
	Description          string
}

// Normalize validates the draft and produces a league value with the
// kind discriminant fixed. On failure it returns every violated rule.
func (d Draft) Normalize(createdBy string, now time.Time) (League, *ValidationError) {
	verr := &ValidationError{}

	name := strings.TrimSpace(d.Name)
	if name == "" {
		verr.add("name", "name is required")
	}
	location := strings.TrimSpace(d.Location)
	if location == "" {
		verr.add("location", "location is required")
	}

	sport := SportType(strings.ToLower(strings.TrimSpace(d.Sport)))
	if _, ok := AllSports[sport]; !ok {
		verr.add("sport_type", fmt.Sprintf("unknown sport type %q", d.Sport))
	}
	gender := GenderCategory(strings.ToLower(strings.TrimSpace(d.Gender)))
	if _, ok := AllGenderCategories[gender]; !ok {
		verr.add("gender_category", fmt.Sprintf("unknown gender category %q", d.Gender))
	}
	matchFormat := MatchFormat(strings.ToLower(strings.TrimSpace(d.MatchFormat)))
	if _, ok := AllMatchFormats[matchFormat]; !ok {
		verr.add("match_format", fmt.Sprintf("unknown match format %q", d.MatchFormat))
	}

	if d.SkillMin < 1 || d.SkillMin > 10 {
		verr.add("skill_level_min", "skill level must be between 1 and 10")
	}
	if d.SkillMax < 1 || d.SkillMax > 10 {
		verr.add("skill_level_max", "skill level must be between 1 and 10")
	}
	if d.SkillMin >= 1 && d.SkillMin <= 10 && d.SkillMax >= 1 && d.SkillMax <= 10 && d.SkillMin > d.SkillMax {
		verr.add("skill_level_min", "minimum skill level cannot exceed maximum")
	}

	if d.StartDate.IsZero() {
		verr.add("start_date", "start date is required")
	}
	if d.EndDate.IsZero() {
		verr.add("end_date", "end date is required")
	}
	if !d.StartDate.IsZero() && !d.EndDate.IsZero() && !d.StartDate.Before(d.EndDate) {
		verr.add("start_date", "start date must be strictly before end date")
	}
	if !d.RegistrationDeadline.IsZero() && !d.StartDate.IsZero() && d.RegistrationDeadline.After(d.StartDate) {
		verr.add("registration_deadline", "registration deadline cannot fall after start date")
	}

	format := EntryFormat(strings.ToLower(strings.TrimSpace(d.Format)))
	kind := KindIndividual
	switch format {
	case EntryIndividual:
		if d.MaxParticipants < 2 {
			verr.add("max_participants", "league needs room for at least 2 participants")
		}
	case EntryTeam:
		kind = KindDuo
		if d.MaxDuoPairs < 2 {
			verr.add("max_duo_pairs", "duo league needs room for at least 2 pairs")
		}
	default:
		verr.add("format", fmt.Sprintf("unknown format %q", d.Format))
	}

	if d.AgeMin < 0 || d.AgeMax < 0 {
		verr.add("age_range", "age bounds cannot be negative")
	} else if d.AgeMin > 0 && d.AgeMax > 0 && d.AgeMin > d.AgeMax {
		verr.add("age_range", "minimum age cannot exceed maximum")
	}

	if len(verr.Fields) > 0 {
		return League{}, verr
	}

	// A league without an explicit deadline closes registration when it
	// starts, so eligibility always has a concrete cutoff.
	deadline := d.RegistrationDeadline
	if deadline.IsZero() {
		deadline = d.StartDate
	}

	l := League{
		Name:                 name,
		Sport:                sport,
		Gender:               gender,
		SkillMin:             d.SkillMin,
		SkillMax:             d.SkillMax,
		StartDate:            d.StartDate,
		EndDate:              d.EndDate,
		RegistrationDeadline: deadline,
		Location:             location,
		MatchFormat:          matchFormat,
		Kind:                 kind,
		AgeMin:               d.AgeMin,
		AgeMax:               d.AgeMax,
		Rules:                strings.TrimSpace(d.Rules),
		Description:          strings.TrimSpace(d.Description),
		CreatedBy:            createdBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if kind == KindDuo {
		l.MaxDuoPairs = d.MaxDuoPairs
	} else {
		l.MaxParticipants = d.MaxParticipants
	}

	return l, nil
}
