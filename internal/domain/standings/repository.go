package standings

import (
	"context"
	"time"
)

// DeleteFilter narrows which standings documents a clear pass removes.
type DeleteFilter struct {
	TournamentID int64
	SyncedBefore *time.Time
	SyncedAfter  *time.Time
}

// Repository describes standings persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, record Record) error
	GetByTournament(ctx context.Context, tournamentID int64, season string) (Record, bool, error)
	DeleteMatching(ctx context.Context, filter DeleteFilter) (int64, error)
}
