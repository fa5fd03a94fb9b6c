package usecase

import (
	"fmt"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/standings"
)

// MapStandings derives the canonical table from the provider's group
// standings. Multi-stage tournaments flatten to the first stage's first
// group; row order and rank are trusted verbatim; goalsDiff is always
// recomputed locally for consistency with the stored goals fields.
func (m *Mapper) MapStandings(tournament sourceapi.Tournament, raw sourceapi.GroupStandings) (standings.Record, error) {
	tournamentID := tournament.ID
	if tournamentID <= 0 {
		tournamentID = raw.TournamentID
	}
	if tournamentID <= 0 {
		return standings.Record{}, fmt.Errorf("%w: standings tournament id is missing", ErrInvalidInput)
	}

	season := raw.Season
	if season == "" {
		season = tournament.Season
	}

	record := standings.Record{
		TournamentID:   tournamentID,
		TournamentName: tournamentName(tournamentID, tournament.Name),
		Season:         season,
	}

	rows := firstGroupRows(raw)
	record.Rows = make([]standings.Row, 0, len(rows))
	for _, row := range rows {
		record.Rows = append(record.Rows, mapStandingRow(row))
	}

	return record, nil
}

func firstGroupRows(raw sourceapi.GroupStandings) []sourceapi.StandingRow {
	if len(raw.Stages) == 0 {
		return nil
	}
	stage := raw.Stages[0]
	if len(stage.Groups) == 0 {
		return nil
	}
	return stage.Groups[0].Rows
}

func mapStandingRow(row sourceapi.StandingRow) standings.Row {
	return standings.Row{
		Rank:     row.Rank,
		TeamID:   row.TeamID,
		TeamName: row.TeamName,

		Played:       row.Played,
		Wins:         row.Wins,
		Draws:        row.Draws,
		Losses:       row.Losses,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		GoalsDiff:    row.GoalsFor - row.GoalsAgainst,
		Points:       row.Points,

		Home: splitLine(row, true),
		Away: splitLine(row, false),
	}
}

// splitLine estimates the home or away share of a row's counts with the
// fixed 0.6/0.4 split.
func splitLine(row sourceapi.StandingRow, home bool) standings.SplitLine {
	pick := func(total int) int {
		h, a := homeAwaySplit(total)
		if home {
			return h
		}
		return a
	}

	return standings.SplitLine{
		Played:       pick(row.Played),
		Wins:         pick(row.Wins),
		Draws:        pick(row.Draws),
		Losses:       pick(row.Losses),
		GoalsFor:     pick(row.GoalsFor),
		GoalsAgainst: pick(row.GoalsAgainst),
	}
}
