package usecase

import (
	"fmt"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/coach"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/referee"
)

// MapCoach derives the canonical coach document from tournament-scoped
// stat lines. Formation and trophies are inferred, never provider-sourced.
func (m *Mapper) MapCoach(raw sourceapi.CoachStats, tournamentID int64) (coach.Record, error) {
	if raw.CoachID <= 0 {
		return coach.Record{}, fmt.Errorf("%w: coach id is missing", ErrInvalidInput)
	}

	name := raw.Name
	if name == "" {
		name = "Unknown Coach"
	}

	entries := make([]coach.CareerEntry, 0, len(raw.Entries))
	var trophies []coach.Trophy
	totalPossession := 0.0
	offensive, defensive := 0, 0

	for _, line := range raw.Entries {
		points := careerPoints(line.Wins, line.Draws)
		entries = append(entries, coach.CareerEntry{
			TournamentID:   line.TournamentID,
			TournamentName: tournamentName(line.TournamentID, line.TournamentName),
			Season:         line.Season,
			Matches:        line.Matches,
			Wins:           line.Wins,
			Draws:          line.Draws,
			Losses:         line.Losses,
			Points:         points,
			PointsPerGame:  pointsPerGame(points, line.Matches),
		})

		totalPossession += line.Possession
		offensive += line.OffensiveActions
		defensive += line.DefensiveActions

		if successfulSeason(line.Wins, line.Matches) {
			trophies = append(trophies, coach.Trophy{Name: successfulSeasonTrophy, Season: line.Season})
		}
	}

	possession := 0.0
	if len(raw.Entries) > 0 {
		possession = totalPossession / float64(len(raw.Entries))
	}

	return coach.Record{
		ID:           raw.CoachID,
		TournamentID: tournamentID,

		Name:        name,
		Nationality: raw.Nationality,
		CountryCode: raw.CountryCode,
		Image:       m.lookupImages([]imageRequest{{kind: "coach", id: raw.CoachID}})[0],

		PreferredFormation: inferFormation(possession, offensive, defensive),

		Career:   entries,
		Trophies: trophies,
	}, nil
}

// MapReferee derives the canonical referee document. Career lines share
// the coach points convention; card rates are per-game, 2 decimals.
func (m *Mapper) MapReferee(raw sourceapi.RefereeSummary, stats sourceapi.RefereeStats, tournamentID int64) (referee.Record, error) {
	id := raw.ID
	if id <= 0 {
		id = stats.RefereeID
	}
	if id <= 0 {
		return referee.Record{}, fmt.Errorf("%w: referee id is missing", ErrInvalidInput)
	}

	name := raw.Name
	if name == "" {
		name = "Unknown Referee"
	}

	entries := make([]referee.CareerEntry, 0, len(stats.Entries))
	for _, line := range stats.Entries {
		points := careerPoints(line.Wins, line.Draws)
		entries = append(entries, referee.CareerEntry{
			TournamentID:   line.TournamentID,
			TournamentName: tournamentName(line.TournamentID, line.TournamentName),
			Season:         line.Season,
			Matches:        line.Matches,
			Wins:           line.Wins,
			Draws:          line.Draws,
			Losses:         line.Losses,
			Points:         points,
			PointsPerGame:  pointsPerGame(points, line.Matches),

			YellowCardsPerGame: roundHalfUp(perGameRate(float64(line.YellowCards), line.Matches), 2),
			RedCardsPerGame:    roundHalfUp(perGameRate(float64(line.RedCards), line.Matches), 2),
		})
	}

	return referee.Record{
		ID:           id,
		TournamentID: tournamentID,

		Name:        name,
		Nationality: raw.Nationality,
		CountryCode: raw.CountryCode,
		Image:       m.lookupImages([]imageRequest{{kind: "referee", id: id}})[0],

		Career: entries,
	}, nil
}
