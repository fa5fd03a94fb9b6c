package usecase

import (
	"fmt"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
)

const unknownTeamName = "Unknown Team"

// MapTeam derives the canonical team document from the provider's team
// summary and raw stats. Only a missing numeric team ID is a hard error;
// every other absent field degrades to a documented default.
func (m *Mapper) MapTeam(raw sourceapi.TeamSummary, stats sourceapi.TeamStats, tournamentID int64) (team.Record, error) {
	if raw.ID <= 0 {
		return team.Record{}, fmt.Errorf("%w: team id is missing", ErrInvalidInput)
	}

	statMap := BuildStatMap(stats.Stats)
	matches := stats.Matches
	wins := statMap.Int(StatWins)
	draws := statMap.Int(StatDraws)
	losses := statMap.Int(StatLosses)
	goalsFor := statMap.Int(StatGoalsScored)
	goalsAgainst := statMap.Int(StatGoalsConceded)

	winRate := perGameRate(float64(wins), matches)
	goalsPerGame := perGameRate(float64(goalsFor), matches)
	concededPerGame := perGameRate(float64(goalsAgainst), matches)

	name := raw.Name
	if name == "" {
		name = unknownTeamName
	}

	squadSize := estimateSquadSize(matches)

	record := team.Record{
		ID:           raw.ID,
		TournamentID: tournamentID,
		Season:       stats.Season,

		Name:  name,
		Code:  raw.Code,
		Logo:  m.lookupImages([]imageRequest{{kind: "team", id: raw.ID}})[0],
		Venue: raw.Venue,

		SquadSize:      squadSize,
		ForeignPlayers: estimateForeignPlayers(squadSize),
		AverageAge:     estimateAverageAge(matches),

		Rating: teamRating(winRate, goalsPerGame, concededPerGame),

		Summary: team.StatsSummary{
			Games:        splitCounts(matches),
			Wins:         splitCounts(wins),
			Draws:        splitCounts(draws),
			Losses:       splitCounts(losses),
			GoalsFor:     splitCounts(goalsFor),
			GoalsAgainst: splitCounts(goalsAgainst),
		},

		Statistics: team.Statistics{
			Attacking: team.AttackingStats{
				GoalsPerGame:         roundHalfUp(goalsPerGame, 2),
				ShotsPerGame:         roundHalfUp(perGameRate(statMap.Value(StatShots), matches), 2),
				ShotsOnTargetPerGame: roundHalfUp(perGameRate(statMap.Value(StatShotsOnTarget), matches), 2),
				BigChancesPerGame:    roundHalfUp(perGameRate(statMap.Value(StatBigChances), matches), 2),
			},
			Defending: team.DefendingStats{
				GoalsConcededPerGame: roundHalfUp(concededPerGame, 2),
				TacklesPerGame:       roundHalfUp(perGameRate(statMap.Value(StatTackles), matches), 2),
				InterceptionsPerGame: roundHalfUp(perGameRate(statMap.Value(StatInterceptions), matches), 2),
				ClearancesPerGame:    roundHalfUp(perGameRate(statMap.Value(StatClearances), matches), 2),
			},
			Passing: team.PassingStats{
				PassesPerGame:         roundHalfUp(perGameRate(statMap.Value(StatPasses), matches), 2),
				AccuratePassesPerGame: roundHalfUp(perGameRate(statMap.Value(StatAccuratePasses), matches), 2),
				PassAccuracyPercent:   roundHalfUp(statMap.Pct(StatPassAccuracy), 2),
				CrossesPerGame:        roundHalfUp(perGameRate(statMap.Value(StatCrosses), matches), 2),
			},
			Other: team.OtherStats{
				FoulsPerGame:       roundHalfUp(perGameRate(statMap.Value(StatFouls), matches), 2),
				YellowCardsPerGame: roundHalfUp(perGameRate(statMap.Value(StatYellowCards), matches), 2),
				RedCardsPerGame:    roundHalfUp(perGameRate(statMap.Value(StatRedCards), matches), 2),
				CornersPerGame:     roundHalfUp(perGameRate(statMap.Value(StatCorners), matches), 2),
			},
		},

		GoalsOverTime: teamGoalsSeries(stats.Recent, goalsFor, matches),
		FormOverTime:  teamFormSeries(stats.Recent, winRate, matches),
	}

	if raw.CoachName != "" {
		record.Coaches = []string{raw.CoachName}
	}
	if successfulSeason(wins, matches) {
		record.Trophies = []team.Trophy{{Name: successfulSeasonTrophy, Season: stats.Season}}
	}

	return record, nil
}

// teamGoalsSeries prefers real recent-match history and falls back to an
// even synthetic spread of the season total.
func teamGoalsSeries(recent []sourceapi.MatchResult, goalsFor, matches int) []team.TimeSample {
	if len(recent) == 0 {
		return goalsOverTime(goalsFor, matches)
	}
	samples := make([]team.TimeSample, 0, len(recent))
	for _, match := range recent {
		samples = append(samples, team.TimeSample{
			Matchday: match.Matchday,
			Value:    float64(match.GoalsFor),
		})
	}
	return samples
}

// teamFormSeries is the rolling win percentage over recent matches, or a
// flat season win-rate placeholder when no history is available.
func teamFormSeries(recent []sourceapi.MatchResult, winRate float64, matches int) []team.TimeSample {
	if len(recent) == 0 {
		return formOverTime(winRate, matches)
	}
	samples := make([]team.TimeSample, 0, len(recent))
	wins := 0
	for i, match := range recent {
		if match.Outcome == "W" {
			wins++
		}
		samples = append(samples, team.TimeSample{
			Matchday: match.Matchday,
			Value:    roundHalfUp(float64(wins)/float64(i+1)*100, 1),
		})
	}
	return samples
}
