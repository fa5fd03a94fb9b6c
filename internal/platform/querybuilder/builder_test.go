package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "doc").
		From("team_documents").
		Where(Eq("tournament_id", int64(501)), Eq("season", "2025"), IsNull("deleted_at")).
		OrderBy("team_id").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, doc FROM team_documents WHERE tournament_id = $1 AND season = $2 AND deleted_at IS NULL ORDER BY team_id LIMIT 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(501) || args[1] != "2025" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InCondition(t *testing.T) {
	query, args, err := Select("doc").
		From("player_documents").
		Where(In("player_id", []any{int64(1), int64(2)})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT doc FROM player_documents WHERE player_id IN ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, _, err := Select("doc").
		From("player_documents").
		Where(In("player_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	want := "SELECT doc FROM player_documents WHERE 1=0"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
}

func TestDeleteBuilder_NotInCondition(t *testing.T) {
	query, args, err := DeleteFrom("team_documents").
		Where(
			Eq("tournament_id", int64(17)),
			NotIn("id", []any{int64(3), int64(4)}),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM team_documents WHERE tournament_id = $1 AND id NOT IN ($2, $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_EmptyNotInMatchesEverything(t *testing.T) {
	query, _, err := DeleteFrom("team_documents").
		Where(NotIn("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	want := "DELETE FROM team_documents WHERE 1=1"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
}

func TestInsertBuilder_WithConflictSuffix(t *testing.T) {
	query, args, err := InsertInto("team_documents").
		Columns("team_id", "doc").
		Values(int64(42), "{}").
		Suffix("ON CONFLICT (team_id) DO UPDATE SET doc = EXCLUDED.doc").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO team_documents (team_id, doc) VALUES ($1, $2) ON CONFLICT (team_id) DO UPDATE SET doc = EXCLUDED.doc"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(42) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("t").Columns("a", "b").Values("only-one").ToSQL()
	if err == nil {
		t.Fatalf("expected arity error")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("sync_state").
		Set("last_synced_at", "2026-05-01T00:00:00Z").
		Where(Eq("entity_type", "team"), Eq("entity_id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE sync_state SET last_synced_at = $1 WHERE entity_type = $2 AND entity_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("standings_documents").
		Where(Eq("tournament_id", int64(501))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM standings_documents WHERE tournament_id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		TeamID int64  `db:"team_id"`
		Doc    string `db:"doc"`
		Skip   string `db:"-"`
	}

	query, args, err := InsertModel("team_documents", row{TeamID: 9, Doc: "{}", Skip: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO team_documents (team_id, doc) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
