package standings

import (
	"fmt"
	"time"
)

// Record is the canonical standings table for one tournament season.
// Multi-stage tournaments are flattened to the first stage's first group.
type Record struct {
	TournamentID   int64
	TournamentName string
	Season         string

	Rows []Row

	LastSynced  time.Time
	SyncVersion int64
}

// Row is one table line. Rank and row order come from the provider
// verbatim; GoalsDiff is always recomputed from GoalsFor and GoalsAgainst.
type Row struct {
	Rank     int
	TeamID   int64
	TeamName string

	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	GoalsDiff    int
	Points       int

	Home SplitLine
	Away SplitLine
}

// SplitLine is the estimated home or away share of the row's counts.
type SplitLine struct {
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

func (r Record) Validate() error {
	if r.TournamentID <= 0 {
		return fmt.Errorf("standings tournament id is required")
	}

	return nil
}
