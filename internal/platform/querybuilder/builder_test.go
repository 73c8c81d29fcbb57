package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	sql, args, err := Select("id", "name").
		From("leagues").
		Where(Eq("sport_type", "tennis"), Eq("kind", "duo")).
		OrderBy("start_date ASC").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id, name FROM leagues WHERE sport_type = $1 AND kind = $2 ORDER BY start_date ASC LIMIT 50"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"tennis", "duo"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectBuilderExpr(t *testing.T) {
	sql, args, err := Select("id").
		From("messages").
		Where(Expr("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", "a", "b", "b", "a")).
		OrderBy("sent_at ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id FROM messages WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $3 AND recipient_id = $4) ORDER BY sent_at ASC"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 4 {
		t.Fatalf("args = %v, want 4 values", args)
	}
}

func TestSelectBuilderEmptyIn(t *testing.T) {
	sql, args, err := Select("id").
		From("challenges").
		Where(In("status", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id FROM challenges WHERE 1=0"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Fatalf("args = %v, want none", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID       string `db:"id"`
		PlayerID string `db:"player_id"`
		Skipped  string `db:"-"`
		hidden   string
	}
	_ = row{hidden: ""}

	sql, args, err := InsertModel("participants", row{ID: "r1", PlayerID: "p1"}, "ON CONFLICT DO NOTHING")
	if err != nil {
		t.Fatalf("InsertModel error: %v", err)
	}

	want := "INSERT INTO participants (id, player_id) VALUES ($1, $2) ON CONFLICT DO NOTHING"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"r1", "p1"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	sql, args, err := Update("challenges").
		Set("status", "accepted").
		Set("updated_at", "now").
		Where(Eq("id", "chal-1")).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "UPDATE challenges SET status = $1, updated_at = $2 WHERE id = $3 RETURNING id"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 3 {
		t.Fatalf("args = %v, want 3 values", args)
	}
}
