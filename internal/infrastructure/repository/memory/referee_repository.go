package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/referee"
)

type RefereeRepository struct {
	mu      sync.RWMutex
	records map[int64]referee.Record
}

func NewRefereeRepository() *RefereeRepository {
	return &RefereeRepository{records: make(map[int64]referee.Record)}
}

func (r *RefereeRepository) Upsert(_ context.Context, record referee.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.ID] = record
	return nil
}

func (r *RefereeRepository) GetByID(_ context.Context, id int64) (referee.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	return record, ok, nil
}

func (r *RefereeRepository) ListByTournament(_ context.Context, tournamentID int64) ([]referee.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]referee.Record, 0)
	for _, record := range r.records {
		if record.TournamentID != tournamentID {
			continue
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *RefereeRepository) DeleteMatching(_ context.Context, filter referee.DeleteFilter) (int64, error) {
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
