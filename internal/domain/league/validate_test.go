package league

import (
	"testing"
	"time"
)

func validDraft() Draft {
	return Draft{
		Name:                 "Spring Open",
		Sport:                "tennis",
		Gender:               "mixed",
		SkillMin:             3,
		SkillMax:             7,
		StartDate:            time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		RegistrationDeadline: time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
		Location:             "Riverside Courts",
		MatchFormat:          "best_of_three",
		Format:               "individual",
		MaxParticipants:      16,
	}
}

func fieldsOf(verr *ValidationError) []string {
	if verr == nil {
		return nil
	}
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestDraftNormalizeValid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l, verr := validDraft().Normalize("user-1", now)
	if verr != nil {
		t.Fatalf("unexpected validation failure: %v", verr)
	}
	if l.Kind != KindIndividual {
		t.Fatalf("kind = %q, want %q", l.Kind, KindIndividual)
	}
	if l.MaxParticipants != 16 || l.MaxDuoPairs != 0 {
		t.Fatalf("capacity fields = %d/%d, want 16/0", l.MaxParticipants, l.MaxDuoPairs)
	}
	if l.CreatedBy != "user-1" || !l.CreatedAt.Equal(now) {
		t.Fatalf("creation metadata not set: %+v", l)
	}
}

func TestDraftNormalizeDefaultsDeadlineToStart(t *testing.T) {
	d := validDraft()
	d.RegistrationDeadline = time.Time{}

	l, verr := d.Normalize("user-1", time.Now())
	if verr != nil {
		t.Fatalf("unexpected validation failure: %v", verr)
	}
	if !l.RegistrationDeadline.Equal(d.StartDate) {
		t.Fatalf("registration deadline = %v, want start date %v", l.RegistrationDeadline, d.StartDate)
	}
}

func TestDraftNormalizeDuo(t *testing.T) {
	d := validDraft()
	d.Format = "team"
	d.MaxDuoPairs = 4

	l, verr := d.Normalize("user-1", time.Now())
	if verr != nil {
		t.Fatalf("unexpected validation failure: %v", verr)
	}
	if l.Kind != KindDuo {
		t.Fatalf("kind = %q, want %q", l.Kind, KindDuo)
	}
	if l.MaxDuoPairs != 4 || l.MaxParticipants != 0 {
		t.Fatalf("capacity fields = %d/%d, want 0/4", l.MaxParticipants, l.MaxDuoPairs)
	}
}

func TestDraftNormalizeFieldFailures(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Draft)
		wantFields []string
	}{
		{
			name:       "missing name",
			mutate:     func(d *Draft) { d.Name = "   " },
			wantFields: []string{"name"},
		},
		{
			name:       "unknown sport",
			mutate:     func(d *Draft) { d.Sport = "curling" },
			wantFields: []string{"sport_type"},
		},
		{
			name: "skill min above max reports one failure",
			mutate: func(d *Draft) {
				d.SkillMin = 7
				d.SkillMax = 3
			},
			wantFields: []string{"skill_level_min"},
		},
		{
			name:       "skill min out of range",
			mutate:     func(d *Draft) { d.SkillMin = 0 },
			wantFields: []string{"skill_level_min"},
		},
		{
			name: "start equal to end",
			mutate: func(d *Draft) {
				d.EndDate = d.StartDate
			},
			wantFields: []string{"start_date"},
		},
		{
			name: "deadline after start",
			mutate: func(d *Draft) {
				d.RegistrationDeadline = d.StartDate.Add(time.Hour)
			},
			wantFields: []string{"registration_deadline"},
		},
		{
			name:       "individual capacity too small",
			mutate:     func(d *Draft) { d.MaxParticipants = 1 },
			wantFields: []string{"max_participants"},
		},
		{
			name: "duo capacity too small",
			mutate: func(d *Draft) {
				d.Format = "team"
				d.MaxDuoPairs = 1
			},
			wantFields: []string{"max_duo_pairs"},
		},
		{
			name:       "unknown format",
			mutate:     func(d *Draft) { d.Format = "squad" },
			wantFields: []string{"format"},
		},
		{
			name: "age min above max",
			mutate: func(d *Draft) {
				d.AgeMin = 50
				d.AgeMax = 30
			},
			wantFields: []string{"age_range"},
		},
		{
			name: "independent failures aggregate",
			mutate: func(d *Draft) {
				d.Name = ""
				d.SkillMin = 9
				d.SkillMax = 2
				d.EndDate = d.StartDate.Add(-time.Hour)
			},
			wantFields: []string{"name", "skill_level_min", "start_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			_, verr := d.Normalize("user-1", time.Now())
			if verr == nil {
				t.Fatal("expected validation failure, got none")
			}
			got := fieldsOf(verr)
			if len(got) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want %v", got, tt.wantFields)
			}
			for i, f := range tt.wantFields {
				if got[i] != f {
					t.Fatalf("fields = %v, want %v", got, tt.wantFields)
				}
			}
		})
	}
}
