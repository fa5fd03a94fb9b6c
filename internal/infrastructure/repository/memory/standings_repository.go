package memory

import (
	"context"
	"sync"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/standings"
)

// StandingsRepository keeps one current table per tournament, replaced
// wholesale on every sync.
type StandingsRepository struct {
	mu      sync.RWMutex
	records map[int64]standings.Record
}

func NewStandingsRepository() *StandingsRepository {
	return &StandingsRepository{records: make(map[int64]standings.Record)}
}

func (r *StandingsRepository) Upsert(_ context.Context, record standings.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.TournamentID] = record
	return nil
}

func (r *StandingsRepository) GetByTournament(_ context.Context, tournamentID int64, season string) (standings.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[tournamentID]
	if !ok {
		return standings.Record{}, false, nil
	}
	if season != "" && record.Season != season {
		return standings.Record{}, false, nil
	}

	return record, true, nil
}

func (r *StandingsRepository) DeleteMatching(_ context.Context, filter standings.DeleteFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, record := range r.records {
		if filter.TournamentID > 0 && id != filter.TournamentID {
			continue
		}
		if filter.SyncedBefore != nil && !record.LastSynced.Before(*filter.SyncedBefore) {
			continue
		}
		if filter.SyncedAfter != nil && !record.LastSynced.After(*filter.SyncedAfter) {
			continue
		}
		delete(r.records, id)
		removed++
	}

	return removed, nil
}
