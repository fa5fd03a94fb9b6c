package coach

import (
	"fmt"
	"time"
)

// Record is the canonical coach document, keyed by the provider's numeric
// coach ID.
type Record struct {
	ID           int64
	TournamentID int64

	Name        string
	Nationality string
	CountryCode string
	Image       string

	// PreferredFormation is inferred from aggregate possession and
	// offensive/defensive action counts, never provider-sourced.
	PreferredFormation string

	Career   []CareerEntry
	Trophies []Trophy

	LastSynced  time.Time
	SyncVersion int64
}

// CareerEntry is one tournament-scoped stat line.
type CareerEntry struct {
	TournamentID   int64
	TournamentName string
	Season         string
	Matches        int
	Wins           int
	Draws          int
	Losses         int
	Points         int
	PointsPerGame  float64
}

type Trophy struct {
	Name   string
	Season string
}

func (r Record) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("coach id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("coach name is required")
	}

	return nil
}
