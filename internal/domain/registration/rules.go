package registration

import (
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/domain/partnership"
)

// Reason explains a denied eligibility decision. Reasons are stable
// values the UI surfaces verbatim, so "no active partnership" and
// "capacity reached" stay distinguishable to the player.
type Reason string

const (
	ReasonCapacityReached              Reason = "capacity reached"
	ReasonRegistrationClosed           Reason = "registration closed"
	ReasonAlreadyRegistered            Reason = "already registered"
	ReasonLeagueCompleted              Reason = "league completed"
	ReasonNoActivePartnership          Reason = "no active partnership"
	ReasonPartnershipAlreadyRegistered Reason = "partnership already registered"
)

// Decision is the advisory outcome of an eligibility pre-check. Under
// concurrent registration the write boundary re-checks; a write-time
// capacity or duplicate rejection overrides an eligible decision here.
type Decision struct {
	Eligible bool
	Reason   Reason
}

func allow() Decision {
	return Decision{Eligible: true}
}

func deny(reason Reason) Decision {
	return Decision{Eligible: false, Reason: reason}
}

// Snapshot is the full state an eligibility decision reads. Callers
// assemble it from the persistence layer; the decision itself performs
// no I/O and is safe under arbitrary concurrent invocation.
type Snapshot struct {
	League league.League
	// RegisteredUnits counts the league's registration units already
	// taken: players for an individual league, pairs for a duo league.
	RegisteredUnits int
	// ActorRegistered is true when the actor (individual league) or
	// the actor's partnership (duo league) already holds a spot.
	ActorRegistered bool
	// ActivePartnership is the actor's active pairing, nil when none.
	// Only consulted for duo leagues.
	ActivePartnership *partnership.Partnership
	Now               time.Time
}

// Decide reports whether the actor may register for the snapshot's
// league. The league kind discriminant picks the algorithm; duo
// eligibility additionally requires an active partnership naming the
// actor as a member.
func Decide(actorID string, snap Snapshot) Decision {
	if snap.League.StatusAt(snap.Now) == league.StatusCompleted {
		return deny(ReasonLeagueCompleted)
	}
	// Normalized leagues always carry a deadline; a zero value only
	// appears on records written outside draft normalization and means
	// no cutoff.
	if deadline := snap.League.RegistrationDeadline; !deadline.IsZero() && snap.Now.After(deadline) {
		return deny(ReasonRegistrationClosed)
	}

	if snap.League.Kind == league.KindDuo {
		return decideDuo(actorID, snap)
	}
	return decideIndividual(snap)
}

func decideIndividual(snap Snapshot) Decision {
	if snap.ActorRegistered {
		return deny(ReasonAlreadyRegistered)
	}
	if snap.RegisteredUnits >= snap.League.MaxParticipants {
		return deny(ReasonCapacityReached)
	}
	return allow()
}

func decideDuo(actorID string, snap Snapshot) Decision {
	p := snap.ActivePartnership
	if p == nil || !p.Active || !p.HasMember(actorID) {
		return deny(ReasonNoActivePartnership)
	}
	if snap.ActorRegistered {
		return deny(ReasonPartnershipAlreadyRegistered)
	}
	if snap.RegisteredUnits >= snap.League.MaxDuoPairs {
		return deny(ReasonCapacityReached)
	}
	return allow()
}
