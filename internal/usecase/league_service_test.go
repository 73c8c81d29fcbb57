package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/memory"
	idgen "github.com/matchpointhq/matchpoint/internal/platform/id"
)

var testClock = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testClock }

func testLeague(id string, kind league.Kind, start, end time.Time) league.League {
	l := league.League{
		ID:          id,
		Name:        "League " + id,
		Sport:       league.SportTennis,
		Gender:      league.GenderMixed,
		SkillMin:    1,
		SkillMax:    10,
		StartDate:   start,
		EndDate:     end,
		Location:    "Riverside Courts",
		MatchFormat: league.MatchFormatBestOfThree,
		Kind:        kind,
	}
	if kind == league.KindDuo {
		l.MaxDuoPairs = 4
	} else {
		l.MaxParticipants = 8
	}
	return l
}

func newLeagueService(leagues ...league.League) (*LeagueService, *memory.RegistrationRepository, *memory.PartnershipRepository) {
	leagueRepo := memory.NewLeagueRepository(leagues)
	regRepo := memory.NewRegistrationRepository()
	partnerRepo := memory.NewPartnershipRepository()
	svc := NewLeagueService(leagueRepo, regRepo, partnerRepo, idgen.NewRandomGenerator())
	svc.now = fixedNow
	return svc, regRepo, partnerRepo
}

func TestLeagueServiceListFiltersByDerivedStatus(t *testing.T) {
	upcoming := testLeague("upcoming", league.KindIndividual, testClock.Add(24*time.Hour), testClock.Add(48*time.Hour))
	active := testLeague("active", league.KindIndividual, testClock.Add(-24*time.Hour), testClock.Add(24*time.Hour))
	completed := testLeague("completed", league.KindIndividual, testClock.Add(-72*time.Hour), testClock.Add(-24*time.Hour))

	svc, _, _ := newLeagueService(upcoming, active, completed)

	got, err := svc.List(context.Background(), ListLeaguesInput{Status: "active"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].League.ID != "active" {
		t.Fatalf("List returned %d leagues, want the active one", len(got))
	}
	if got[0].Status != league.StatusActive {
		t.Fatalf("status = %q, want active", got[0].Status)
	}
}

func TestLeagueServiceListRejectsUnknownFilter(t *testing.T) {
	svc, _, _ := newLeagueService()

	if _, err := svc.List(context.Background(), ListLeaguesInput{Sport: "curling"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.List(context.Background(), ListLeaguesInput{Status: "archived"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestLeagueServiceListCountsRegisteredUnits(t *testing.T) {
	l := testLeague("ind", league.KindIndividual, testClock.Add(-time.Hour), testClock.Add(time.Hour))
	svc, regRepo, _ := newLeagueService(l)

	ctx := context.Background()
	for _, playerID := range []string{"p1", "p2", "p3"} {
		err := regRepo.CreateParticipant(ctx, participant(l.ID, playerID), l.MaxParticipants)
		if err != nil {
			t.Fatalf("seed participant: %v", err)
		}
	}

	got, err := svc.List(ctx, ListLeaguesInput{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List returned %d leagues, want 1", len(got))
	}
	if got[0].RegisteredUnits != 3 {
		t.Fatalf("RegisteredUnits = %d, want 3", got[0].RegisteredUnits)
	}
	if got[0].SpotsLeft() != 5 {
		t.Fatalf("SpotsLeft = %d, want 5", got[0].SpotsLeft())
	}
}

func TestLeagueServiceCreate(t *testing.T) {
	svc, _, _ := newLeagueService()

	draft := league.Draft{
		Name:            "Morning Ladder",
		Sport:           "tennis",
		Gender:          "mixed",
		SkillMin:        2,
		SkillMax:        6,
		StartDate:       testClock.AddDate(0, 1, 0),
		EndDate:         testClock.AddDate(0, 2, 0),
		Location:        "North Club",
		MatchFormat:     "single_set",
		Format:          "individual",
		MaxParticipants: 12,
	}

	l, err := svc.Create(context.Background(), "user-1", draft)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if l.ID == "" {
		t.Fatal("created league has no id")
	}

	got, err := svc.Get(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != league.StatusUpcoming {
		t.Fatalf("status = %q, want upcoming", got.Status)
	}
}

func TestLeagueServiceCreateSurfacesFieldErrors(t *testing.T) {
	svc, _, _ := newLeagueService()

	draft := league.Draft{
		Name:            "Bad Draft",
		Sport:           "tennis",
		Gender:          "mixed",
		SkillMin:        8,
		SkillMax:        2,
		StartDate:       testClock,
		EndDate:         testClock,
		Location:        "North Club",
		MatchFormat:     "single_set",
		Format:          "individual",
		MaxParticipants: 12,
	}

	_, err := svc.Create(context.Background(), "user-1", draft)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}

	var verr *league.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want wrapped ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("fields = %v, want skill_level_min and start_date", verr.Fields)
	}
}

func TestLeagueServiceParticipantsDuo(t *testing.T) {
	l := testLeague("duo", league.KindDuo, testClock.Add(-time.Hour), testClock.Add(time.Hour))
	svc, regRepo, partnerRepo := newLeagueService(l)

	ctx := context.Background()
	seedDuoPair(t, ctx, regRepo, partnerRepo, l, "pair-1", "p1", "p2")

	got, err := svc.Participants(ctx, l.ID)
	if err != nil {
		t.Fatalf("Participants error: %v", err)
	}
	if len(got) != 2 || got[0] != "p1" || got[1] != "p2" {
		t.Fatalf("participants = %v, want both pair members", got)
	}
}
