package notify

import (
	"context"

	"github.com/matchpointhq/matchpoint/internal/usecase"
)

// Noop drops every event. Used when no webhook endpoint is configured
// and in tests that don't care about notifications.
type Noop struct{}

func (Noop) NotifyChallenge(context.Context, usecase.ChallengeEvent) error {
	return nil
}

func (Noop) NotifyLeagueStatus(context.Context, usecase.LeagueStatusEvent) error {
	return nil
}
