package usecase

import (
	"math"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
)

// StatKey enumerates the provider stat names the pipeline understands.
// Anything else lands in the stat map's unknown bucket.
type StatKey string

const (
	StatGoalsScored      StatKey = "goalsScored"
	StatGoalsConceded    StatKey = "goalsConceded"
	StatShots            StatKey = "shots"
	StatShotsOnTarget    StatKey = "shotsOnTarget"
	StatBigChances       StatKey = "bigChances"
	StatTackles          StatKey = "tackles"
	StatInterceptions    StatKey = "interceptions"
	StatClearances       StatKey = "clearances"
	StatPasses           StatKey = "passes"
	StatAccuratePasses   StatKey = "accuratePasses"
	StatPassAccuracy     StatKey = "passAccuracy"
	StatCrosses          StatKey = "crosses"
	StatFouls            StatKey = "fouls"
	StatYellowCards      StatKey = "yellowCards"
	StatRedCards         StatKey = "redCards"
	StatCorners          StatKey = "corners"
	StatWins             StatKey = "wins"
	StatDraws            StatKey = "draws"
	StatLosses           StatKey = "losses"
	StatPossession       StatKey = "possession"
	StatAssists          StatKey = "assists"
	StatSaves            StatKey = "saves"
	StatDribbles         StatKey = "dribbles"
	StatDuelsWon         StatKey = "duelsWon"
	StatAerialsWon       StatKey = "aerialsWon"
	StatMinutesPlayed    StatKey = "minutesPlayed"
	StatOffensiveActions StatKey = "offensiveActions"
	StatDefensiveActions StatKey = "defensiveActions"
)

var knownStatKeys = func() map[string]StatKey {
	keys := []StatKey{
		StatGoalsScored, StatGoalsConceded, StatShots, StatShotsOnTarget,
		StatBigChances, StatTackles, StatInterceptions, StatClearances,
		StatPasses, StatAccuratePasses, StatPassAccuracy, StatCrosses,
		StatFouls, StatYellowCards, StatRedCards, StatCorners,
		StatWins, StatDraws, StatLosses, StatPossession,
		StatAssists, StatSaves, StatDribbles, StatDuelsWon,
		StatAerialsWon, StatMinutesPlayed, StatOffensiveActions, StatDefensiveActions,
	}
	out := make(map[string]StatKey, len(keys))
	for _, k := range keys {
		out[string(k)] = k
	}
	return out
}()

// StatMap is a name-to-value lookup built once per raw stats payload
// before any derived metric is computed, so field order in the source
// payload never changes the output. Last write wins on duplicate names.
type StatMap struct {
	known   map[StatKey]float64
	unknown map[string]float64
}

func BuildStatMap(pairs []sourceapi.StatPair) StatMap {
	m := StatMap{
		known:   make(map[StatKey]float64, len(pairs)),
		unknown: make(map[string]float64),
	}
	for _, pair := range pairs {
		if key, ok := knownStatKeys[pair.Name]; ok {
			m.known[key] = pair.Value
			continue
		}
		m.unknown[pair.Name] = pair.Value
	}
	return m
}

// Value returns the stat value, 0 when absent.
func (m StatMap) Value(key StatKey) float64 {
	return m.known[key]
}

// Int returns the stat rounded to the nearest integer, 0 when absent.
func (m StatMap) Int(key StatKey) int {
	return int(math.Round(m.known[key]))
}

// Pct returns the stat clamped into [0, 100].
func (m StatMap) Pct(key StatKey) float64 {
	v := m.known[key]
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Has reports whether the provider supplied the stat at all.
func (m StatMap) Has(key StatKey) bool {
	_, ok := m.known[key]
	return ok
}

// UnknownStats exposes the names the pipeline did not recognize.
func (m StatMap) UnknownStats() map[string]float64 {
	return m.unknown
}
