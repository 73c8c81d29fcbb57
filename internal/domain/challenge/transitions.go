package challenge

import "fmt"

// Status is the challenge lifecycle state. A new challenge starts
// pending; rejected, completed, and disputed are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusDisputed  Status = "disputed"
)

var AllStatuses = map[Status]struct{}{
	StatusPending:   {},
	StatusAccepted:  {},
	StatusRejected:  {},
	StatusCompleted: {},
	StatusDisputed:  {},
}

// InvalidTransitionError reports an attempted move outside the state
// machine: pending -> {accepted, rejected}, accepted -> {completed, disputed}.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid challenge transition from %q to %q", e.From, e.To)
}

var transitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusAccepted: {},
		StatusRejected: {},
	},
	StatusAccepted: {
		StatusCompleted: {},
		StatusDisputed:  {},
	},
}

// CanTransition reports whether the move is inside the state machine,
// ignoring who is asking; authorization is layered on top by Transition.
func CanTransition(from, to Status) error {
	if _, ok := transitions[from][to]; !ok {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// ErrActorNotAllowed rejects a structurally valid move requested by the
// wrong party: only the challenged player may leave pending, while
// either participant may complete or dispute an accepted challenge.
type ErrActorNotAllowed struct {
	ActorID string
	To      Status
}

func (e *ErrActorNotAllowed) Error() string {
	return fmt.Sprintf("player %s may not move this challenge to %q", e.ActorID, e.To)
}

// Transition validates both the state machine and the acting party,
// returning the challenge with its new status. The receiver is not
// mutated; persistence of the result is the caller's concern.
func (c Challenge) Transition(actorID string, to Status) (Challenge, error) {
	if err := CanTransition(c.Status, to); err != nil {
		return Challenge{}, err
	}

	switch c.Status {
	case StatusPending:
		if actorID != c.ChallengedID {
			return Challenge{}, &ErrActorNotAllowed{ActorID: actorID, To: to}
		}
	case StatusAccepted:
		if !c.HasParticipant(actorID) {
			return Challenge{}, &ErrActorNotAllowed{ActorID: actorID, To: to}
		}
	}

	out := c
	out.Status = to
	return out, nil
}
