package league

import "time"

// Kind discriminates individual leagues from duo (pair-entry) leagues.
// It is set once at construction and is the only place the two shapes
// are told apart; callers must not re-derive it from other fields.
type Kind string

const (
	KindIndividual Kind = "individual"
	KindDuo        Kind = "duo"
)

type SportType string

const (
	SportTennis     SportType = "tennis"
	SportBasketball SportType = "basketball"
	SportFootball   SportType = "football"
	SportVolleyball SportType = "volleyball"
	SportBadminton  SportType = "badminton"
	SportPadel      SportType = "padel"
)

var AllSports = map[SportType]struct{}{
	SportTennis:     {},
	SportBasketball: {},
	SportFootball:   {},
	SportVolleyball: {},
	SportBadminton:  {},
	SportPadel:      {},
}

type GenderCategory string

const (
	GenderMen   GenderCategory = "men"
	GenderWomen GenderCategory = "women"
	GenderMixed GenderCategory = "mixed"
)

var AllGenderCategories = map[GenderCategory]struct{}{
	GenderMen:   {},
	GenderWomen: {},
	GenderMixed: {},
}

type MatchFormat string

const (
	MatchFormatSingleSet   MatchFormat = "single_set"
	MatchFormatBestOfThree MatchFormat = "best_of_three"
	MatchFormatBestOfFive  MatchFormat = "best_of_five"
)

var AllMatchFormats = map[MatchFormat]struct{}{
	MatchFormatSingleSet:   {},
	MatchFormatBestOfThree: {},
	MatchFormatBestOfFive:  {},
}

// EntryFormat is the creation-time switch between individual entry and
// team (pair) entry. Team entry always produces a duo league.
type EntryFormat string

const (
	EntryIndividual EntryFormat = "individual"
	EntryTeam       EntryFormat = "team"
)

// League is a scheduled competitive event with capacity and eligibility
// rules. The surrounding product calls the same thing a "tournament".
// Individual leagues register single players against MaxParticipants;
// duo leagues register partnerships against MaxDuoPairs.
type League struct {
	ID        string
	Name      string
	Sport     SportType
	Gender    GenderCategory
	SkillMin  int
	SkillMax  int
	StartDate time.Time
	EndDate   time.Time
	// RegistrationDeadline never falls after StartDate (validated at creation).
	RegistrationDeadline time.Time
	Location             string
	MatchFormat          MatchFormat
	Kind                 Kind
	MaxParticipants      int
	MaxDuoPairs          int
	AgeMin               int
	AgeMax               int
	Rules                string
	Description          string
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (l League) IsDuo() bool {
	return l.Kind == KindDuo
}

// IsDoubles and RequiresDuo are derived from the kind, never stored,
// so the two flags can never drift apart.
func (l League) IsDoubles() bool {
	return l.Kind == KindDuo
}

func (l League) RequiresDuo() bool {
	return l.Kind == KindDuo
}

// Capacity is the number of registration units the league accepts:
// players for an individual league, pairs for a duo league.
func (l League) Capacity() int {
	if l.Kind == KindDuo {
		return l.MaxDuoPairs
	}
	return l.MaxParticipants
}

// EffectiveMaxParticipants is the player headcount at full capacity.
func (l League) EffectiveMaxParticipants() int {
	if l.Kind == KindDuo {
		return l.MaxDuoPairs * 2
	}
	return l.MaxParticipants
}
