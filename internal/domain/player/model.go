package player

import (
	"fmt"
	"time"
)

// Position is the canonical position category. Free-text provider codes
// collapse into one of four values; Midfielder is the fallback.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Record is the canonical player document, keyed by the provider's
// numeric player ID.
type Record struct {
	ID           int64
	TournamentID int64
	Season       string

	Name         string
	PositionCode string
	Position     Position
	Nationality  string
	Image        string

	Career CareerSummary
	Traits Traits

	// Heatmap and shotmap are synthetic placeholders when the provider
	// exposes no positional data.
	Heatmap []HeatPoint
	Shotmap []ShotPoint

	LastSynced  time.Time
	SyncVersion int64
}

type CareerSummary struct {
	TotalMatches int
	Entries      []CareerEntry
}

// CareerEntry aggregates a player's output for one team in one season.
type CareerEntry struct {
	TeamID   int64
	TeamName string
	Season   string
	Matches  int
	Goals    int
	Assists  int
	Saves    int
}

// Traits are eight 0-100 scores estimated from per-match rates.
type Traits struct {
	Attacking float64
	Dribbling float64
	Physical  float64
	Passing   float64
	Shooting  float64
	Defending float64
	Tackling  float64
	Duels     float64
}

type HeatPoint struct {
	X      float64
	Y      float64
	Weight float64
}

type ShotPoint struct {
	X      float64
	Y      float64
	OnGoal bool
}

func (r Record) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
