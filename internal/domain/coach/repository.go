package coach

import (
	"context"
	"time"
)

// DeleteFilter narrows which coach documents a clear pass removes.
type DeleteFilter struct {
	TournamentID int64
	IDs          []int64
	ExcludeIDs   []int64
	SyncedBefore *time.Time
	SyncedAfter  *time.Time
}

// Repository describes coach persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, record Record) error
	GetByID(ctx context.Context, id int64) (Record, bool, error)
	ListByTournament(ctx context.Context, tournamentID int64) ([]Record, error)
	DeleteMatching(ctx context.Context, filter DeleteFilter) (int64, error)
}
