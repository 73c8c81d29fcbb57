package memory

import (
	"sort"

	"github.com/matchpointhq/matchpoint/internal/domain/challenge"
	"github.com/matchpointhq/matchpoint/internal/domain/message"
	"github.com/matchpointhq/matchpoint/internal/domain/registration"
)

// Map iteration order is random; listings sort by registration time so
// repeated reads stay stable.

func sortParticipants(items []registration.Participant) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].RegisteredAt.Equal(items[j].RegisteredAt) {
			return items[i].PlayerID < items[j].PlayerID
		}
		return items[i].RegisteredAt.Before(items[j].RegisteredAt)
	})
}

func sortDuoRegistrations(items []registration.DuoRegistration) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].RegisteredAt.Equal(items[j].RegisteredAt) {
			return items[i].PartnershipID < items[j].PartnershipID
		}
		return items[i].RegisteredAt.Before(items[j].RegisteredAt)
	})
}

func sortChallenges(items []challenge.Challenge) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func sortMessages(items []message.Message) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].SentAt.Equal(items[j].SentAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].SentAt.Before(items[j].SentAt)
	})
}
