package referee

import (
	"fmt"
	"time"
)

// Record is the canonical referee document, keyed by the provider's
// numeric referee ID.
type Record struct {
	ID           int64
	TournamentID int64

	Name        string
	Nationality string
	CountryCode string
	Image       string

	Career []CareerEntry

	LastSynced  time.Time
	SyncVersion int64
}

// CareerEntry is one tournament-scoped officiating stat line. Points
// follow the same wins*3+draws convention as the coach entries; wins
// here count matches where the home side won.
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

	YellowCardsPerGame float64
	RedCardsPerGame    float64
}

func (r Record) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("referee id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("referee name is required")
	}

	return nil
}
