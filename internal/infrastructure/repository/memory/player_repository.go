package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	records map[int64]player.Record
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{records: make(map[int64]player.Record)}
}

func (r *PlayerRepository) Upsert(_ context.Context, record player.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.ID] = record
	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	return record, ok, nil
}

func (r *PlayerRepository) ListByTournament(_ context.Context, tournamentID int64, season string) ([]player.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Record, 0)
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

func (r *PlayerRepository) DeleteMatching(_ context.Context, filter player.DeleteFilter) (int64, error) {
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
