package usecase

import (
	"math"
	"strings"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
)

// roundHalfUp rounds to the given number of decimals with ties going up,
// the rounding law downstream consumers compare against exactly.
func roundHalfUp(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(v*p+0.5) / p
}

// perGameRate divides a raw total by matches played, floor-clamping the
// denominator to 1 so a zero-match entity keeps the raw total instead of
// losing the field.
func perGameRate(total float64, matches int) float64 {
	if matches < 1 {
		matches = 1
	}
	return total / float64(matches)
}

// homeAwaySplit estimates home/away shares from an aggregate total using
// the fixed 0.6/0.4 approximation. The shares may not sum to the total
// after rounding; that is accepted behavior.
func homeAwaySplit(total int) (home, away int) {
	home = int(math.Round(float64(total) * 0.6))
	away = int(math.Round(float64(total) * 0.4))
	return home, away
}

func splitCounts(total int) team.SplitCounts {
	home, away := homeAwaySplit(total)
	return team.SplitCounts{Total: total, Home: home, Away: away}
}

// teamRating blends win rate, attacking output and defensive solidity
// into a 0-10 score, rounded half-up to 1 decimal. The attacking term is
// intentionally unclamped above 1.
func teamRating(winRate, goalsPerGame, concededPerGame float64) float64 {
	attacking := goalsPerGame / 2
	defending := math.Max(0, 1-concededPerGame/3)
	return roundHalfUp(10*(0.4*winRate+0.3*attacking+0.3*defending), 1)
}

// positionKeywords is ordered: the first category with a matching keyword
// wins, so "goalkeeper" beats the "keeper" suffix check never reaching
// other rows.
var positionKeywords = []struct {
	position player.Position
	keywords []string
}{
	{player.PositionGoalkeeper, []string{"goalkeeper", "keeper", "gk"}},
	{player.PositionDefender, []string{"defender", "defence", "back", "cb", "lb", "rb", "wb", "def"}},
	{player.PositionMidfielder, []string{"midfielder", "midfield", "cdm", "cam", "cm", "dm", "am", "mid"}},
	{player.PositionForward, []string{"forward", "striker", "winger", "attack", "cf", "st", "lw", "rw", "fw"}},
}

// classifyPosition collapses a free-text provider position code into one
// of four categories. No match defaults to Midfielder.
func classifyPosition(code string) player.Position {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return player.PositionMidfielder
	}
	for _, row := range positionKeywords {
		for _, keyword := range row.keywords {
			if strings.Contains(normalized, keyword) {
				return row.position
			}
		}
	}
	return player.PositionMidfielder
}

// inferFormation picks one of four fixed formations from aggregate
// possession and offensive/defensive action counts. An offensive/
// defensive tie resolves to the balanced 4-4-2.
func inferFormation(possession float64, offensiveActions, defensiveActions int) string {
	switch {
	case offensiveActions > defensiveActions && possession >= 55:
		return "4-3-3"
	case offensiveActions > defensiveActions:
		return "4-2-3-1"
	case defensiveActions > offensiveActions:
		return "5-4-1"
	default:
		return "4-4-2"
	}
}

// successfulSeason reports whether a win rate above 0.70 over at least 10
// matches earns the synthetic "Successful Season" trophy.
func successfulSeason(wins, matches int) bool {
	if matches < 10 {
		return false
	}
	return float64(wins)/float64(matches) > 0.70
}

const successfulSeasonTrophy = "Successful Season"

func careerPoints(wins, draws int) int {
	return wins*3 + draws
}

func pointsPerGame(points, matches int) float64 {
	return roundHalfUp(perGameRate(float64(points), matches), 2)
}

// Squad metrics are statistically invented: the provider exposes no
// roster, so deterministic estimates stand in as documented output.
func estimateSquadSize(matches int) int {
	return 22 + matches%6
}

func estimateForeignPlayers(squadSize int) int {
	return int(math.Round(float64(squadSize) * 0.35))
}

func estimateAverageAge(matches int) float64 {
	return 24.0 + float64(matches%7)*0.5
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return roundHalfUp(v, 1)
}

// playerTraits estimates eight 0-100 scores from per-match rates. The
// passing score floors at passAccuracy*0.8, and shooting is the
// shotsOnTarget/shots ratio over raw totals, 0 when the player never shot.
func playerTraits(stats StatMap, matches int) player.Traits {
	rate := func(key StatKey) float64 {
		return perGameRate(stats.Value(key), matches)
	}

	passing := clampScore(rate(StatPasses) * 1.6)
	if floor := clampScore(stats.Pct(StatPassAccuracy) * 0.8); floor > passing {
		passing = floor
	}

	shooting := 0.0
	if shots := stats.Value(StatShots); shots > 0 {
		shooting = clampScore(stats.Value(StatShotsOnTarget) / shots * 100)
	}

	return player.Traits{
		Attacking: clampScore(rate(StatGoalsScored)*35 + rate(StatAssists)*25 + rate(StatBigChances)*15),
		Dribbling: clampScore(rate(StatDribbles) * 28),
		Physical:  clampScore(rate(StatDuelsWon)*9 + rate(StatAerialsWon)*11),
		Passing:   passing,
		Shooting:  shooting,
		Defending: clampScore(rate(StatInterceptions)*14 + rate(StatClearances)*8),
		Tackling:  clampScore(rate(StatTackles) * 16),
		Duels:     clampScore(rate(StatDuelsWon) * 12),
	}
}

// syntheticHeatmap fabricates a deterministic positional placeholder when
// the provider has no tracking data. Same player ID, same points.
func syntheticHeatmap(playerID int64, position player.Position) []player.HeatPoint {
	baseX := 50.0
	switch position {
	case player.PositionGoalkeeper:
		baseX = 8
	case player.PositionDefender:
		baseX = 25
	case player.PositionMidfielder:
		baseX = 50
	case player.PositionForward:
		baseX = 75
	}

	seed := uint64(playerID)
	points := make([]player.HeatPoint, 0, 12)
	for i := 0; i < 12; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		dx := float64(seed%21) - 10
		seed = seed*6364136223846793005 + 1442695040888963407
		y := float64(seed % 101)
		points = append(points, player.HeatPoint{
			X:      math.Max(0, math.Min(100, baseX+dx)),
			Y:      y,
			Weight: roundHalfUp(0.3+float64(seed%71)/100, 2),
		})
	}
	return points
}

// syntheticShotmap fabricates deterministic shot placements scaled by the
// player's shot volume.
func syntheticShotmap(playerID int64, stats StatMap) []player.ShotPoint {
	shots := stats.Int(StatShots)
	if shots <= 0 {
		return nil
	}
	if shots > 20 {
		shots = 20
	}
	onTarget := stats.Int(StatShotsOnTarget)

	seed := uint64(playerID) * 2862933555777941757
	points := make([]player.ShotPoint, 0, shots)
	for i := 0; i < shots; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		x := 70 + float64(seed%31)
		seed = seed*6364136223846793005 + 1442695040888963407
		y := 20 + float64(seed%61)
		points = append(points, player.ShotPoint{
			X:      math.Min(100, x),
			Y:      y,
			OnGoal: i < onTarget,
		})
	}
	return points
}

// goalsOverTime spreads a season's goals across five cumulative samples
// assuming an even scoring rate.
func goalsOverTime(goalsFor, matches int) []team.TimeSample {
	if matches < 1 {
		return nil
	}
	samples := make([]team.TimeSample, 0, 5)
	for k := 1; k <= 5; k++ {
		samples = append(samples, team.TimeSample{
			Matchday: int(math.Ceil(float64(matches) * float64(k) / 5)),
			Value:    math.Round(float64(goalsFor) * float64(k) / 5),
		})
	}
	return samples
}

// formOverTime is a flat placeholder series at the season's win
// percentage; the provider exposes no per-matchday history.
func formOverTime(winRate float64, matches int) []team.TimeSample {
	if matches < 1 {
		return nil
	}
	value := roundHalfUp(winRate*100, 1)
	samples := make([]team.TimeSample, 0, 5)
	for k := 1; k <= 5; k++ {
		samples = append(samples, team.TimeSample{
			Matchday: int(math.Ceil(float64(matches) * float64(k) / 5)),
			Value:    value,
		})
	}
	return samples
}
