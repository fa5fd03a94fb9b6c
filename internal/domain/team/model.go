package team

import (
	"fmt"
	"time"
)

// Record is the canonical team document, keyed by the provider's numeric
// team ID. It is rebuilt wholesale on every sync pass.
type Record struct {
	ID           int64
	TournamentID int64
	Season       string

	Name  string
	Code  string
	Logo  string
	Venue string

	// Squad metrics are estimated from performance stats, not rostered truth.
	SquadSize      int
	ForeignPlayers int
	AverageAge     float64

	Coaches  []string
	Trophies []Trophy

	Rating float64

	Summary    StatsSummary
	Statistics Statistics

	GoalsOverTime []TimeSample
	FormOverTime  []TimeSample

	LastSynced  time.Time
	SyncVersion int64
}

type Trophy struct {
	Name   string
	Season string
}

// SplitCounts carries a total plus its estimated home/away shares.
type SplitCounts struct {
	Total int
	Home  int
	Away  int
}

type StatsSummary struct {
	Games        SplitCounts
	Wins         SplitCounts
	Draws        SplitCounts
	Losses       SplitCounts
	GoalsFor     SplitCounts
	GoalsAgainst SplitCounts
}

// Statistics holds per-game rates grouped the way the serving layer
// renders them.
type Statistics struct {
	Attacking AttackingStats
	Defending DefendingStats
	Passing   PassingStats
	Other     OtherStats
}

type AttackingStats struct {
	GoalsPerGame         float64
	ShotsPerGame         float64
	ShotsOnTargetPerGame float64
	BigChancesPerGame    float64
}

type DefendingStats struct {
	GoalsConcededPerGame float64
	TacklesPerGame       float64
	InterceptionsPerGame float64
	ClearancesPerGame    float64
}

type PassingStats struct {
	PassesPerGame         float64
	AccuratePassesPerGame float64
	PassAccuracyPercent   float64
	CrossesPerGame        float64
}

type OtherStats struct {
	FoulsPerGame       float64
	YellowCardsPerGame float64
	RedCardsPerGame    float64
	CornersPerGame     float64
}

type TimeSample struct {
	Matchday int
	Value    float64
}

func (r Record) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
