package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
)

// TeamRepository is the in-process fallback store used when no database
// is configured. It mirrors the Postgres repository's semantics.
type TeamRepository struct {
	mu      sync.RWMutex
	records map[int64]team.Record
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{records: make(map[int64]team.Record)}
}

func (r *TeamRepository) Upsert(_ context.Context, record team.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.ID] = record
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	return record, ok, nil
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID int64, season string) ([]team.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Record, 0)
	for _, record := range r.records {
		if record.TournamentID != tournamentID {
			continue
		}
		if season != "" && record.Season != season {
			continue
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) DeleteMatching(_ context.Context, filter team.DeleteFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, record := range r.records {
		if !matchesFilter(id, record.TournamentID, record.LastSynced, filter.TournamentID, filter.IDs, filter.ExcludeIDs, filter.SyncedBefore, filter.SyncedAfter) {
			continue
		}
		delete(r.records, id)
		removed++
	}

	return removed, nil
}
