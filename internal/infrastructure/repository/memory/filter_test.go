package memory

import (
	"context"
	"testing"
	"time"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
)

func TestTeamRepository_DeleteMatching(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewTeamRepository()
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fresh := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	seed := []team.Record{
		{ID: 1, Name: "One", TournamentID: 17, LastSynced: old},
		{ID: 2, Name: "Two", TournamentID: 17, LastSynced: fresh},
		{ID: 3, Name: "Three", TournamentID: 7, LastSynced: fresh},
	}
	for _, record := range seed {
		if err := repo.Upsert(ctx, record); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	removed, err := repo.DeleteMatching(ctx, team.DeleteFilter{TournamentID: 17, SyncedBefore: &cutoff})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want only the stale tournament 17 row", removed)
	}
	if _, ok, _ := repo.GetByID(ctx, 2); !ok {
		t.Fatalf("fresh row must survive")
	}
	if _, ok, _ := repo.GetByID(ctx, 3); !ok {
		t.Fatalf("other tournament must survive")
	}
}

func TestTeamRepository_ListByTournamentFiltersSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewTeamRepository()
	_ = repo.Upsert(ctx, team.Record{ID: 2, Name: "B", TournamentID: 17, Season: "2025/2026"})
	_ = repo.Upsert(ctx, team.Record{ID: 1, Name: "A", TournamentID: 17, Season: "2024/2025"})

	records, err := repo.ListByTournament(ctx, 17, "2025/2026")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].ID != 2 {
		t.Fatalf("records = %+v", records)
	}

	all, err := repo.ListByTournament(ctx, 17, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 || all[0].ID != 1 {
		t.Fatalf("expected both rows sorted by id, got %+v", all)
	}
}
