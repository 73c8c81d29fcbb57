package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchpointhq/matchpoint/internal/infrastructure/repository/memory"
)

func TestProfileServiceUpdateAndGet(t *testing.T) {
	svc := NewProfileService(memory.NewProfileRepository())
	svc.now = fixedNow
	ctx := context.Background()

	created, err := svc.Update(ctx, UpdateProfileInput{
		ActorID:        "u1",
		DisplayName:    "Alex R",
		SkillLevel:     6,
		PreferredSport: "Tennis",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if created.PreferredSport != "tennis" {
		t.Fatalf("preferred sport = %q, want lowercased", created.PreferredSport)
	}

	svc.now = func() time.Time { return testClock.Add(time.Hour) }
	updated, err := svc.Update(ctx, UpdateProfileInput{
		ActorID:     "u1",
		DisplayName: "Alex R",
		SkillLevel:  7,
	})
	if err != nil {
		t.Fatalf("second Update error: %v", err)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update must preserve the original creation time")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("update must advance the update time")
	}

	got, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.SkillLevel != 7 {
		t.Fatalf("skill level = %d, want 7", got.SkillLevel)
	}
}

func TestProfileServiceValidation(t *testing.T) {
	svc := NewProfileService(memory.NewProfileRepository())
	svc.now = fixedNow
	ctx := context.Background()

	if _, err := svc.Update(ctx, UpdateProfileInput{ActorID: "u1", DisplayName: "", SkillLevel: 5}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Update(ctx, UpdateProfileInput{ActorID: "u1", DisplayName: "A", SkillLevel: 11}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Get(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
