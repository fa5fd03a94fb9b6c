package usecase

import (
	"fmt"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
)

const unknownPlayerName = "Unknown Player"

// MapPlayer derives the canonical player document. Only a missing
// numeric player ID is a hard error.
func (m *Mapper) MapPlayer(ref sourceapi.PlayerRef, stats sourceapi.PlayerStats, tournamentID int64, season string) (player.Record, error) {
	id := ref.ID
	if id <= 0 {
		id = stats.PlayerID
	}
	if id <= 0 {
		return player.Record{}, fmt.Errorf("%w: player id is missing", ErrInvalidInput)
	}

	name := ref.Name
	if name == "" {
		name = unknownPlayerName
	}

	position := classifyPosition(ref.Position)
	statMap := BuildStatMap(stats.Stats)

	matches := stats.Matches
	entries := make([]player.CareerEntry, 0, len(stats.Career))
	careerMatches := 0
	for _, line := range stats.Career {
		careerMatches += line.Matches
		entries = append(entries, player.CareerEntry{
			TeamID:   line.TeamID,
			TeamName: line.TeamName,
			Season:   line.Season,
			Matches:  line.Matches,
			Goals:    line.Goals,
			Assists:  line.Assists,
			Saves:    line.Saves,
		})
	}
	totalMatches := matches
	if careerMatches > totalMatches {
		totalMatches = careerMatches
	}

	return player.Record{
		ID:           id,
		TournamentID: tournamentID,
		Season:       season,

		Name:         name,
		PositionCode: ref.Position,
		Position:     position,
		Nationality:  ref.Nationality,
		Image:        m.lookupImages([]imageRequest{{kind: "player", id: id}})[0],

		Career: player.CareerSummary{
			TotalMatches: totalMatches,
			Entries:      entries,
		},
		Traits: playerTraits(statMap, matches),

		Heatmap: syntheticHeatmap(id, position),
		Shotmap: syntheticShotmap(id, statMap),
	}, nil
}
