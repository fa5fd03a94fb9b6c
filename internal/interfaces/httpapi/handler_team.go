package httpapi

import (
	"net/http"
	"strings"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
)

type teamDTO struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournamentId"`
	Season       string `json:"season"`

	Name  string `json:"name"`
	Code  string `json:"code"`
	Logo  string `json:"logo"`
	Venue string `json:"venue"`

	SquadSize      int     `json:"squadSize"`
	ForeignPlayers int     `json:"foreignPlayers"`
	AverageAge     float64 `json:"averageAge"`

	Coaches  []string    `json:"coaches"`
	Trophies []trophyDTO `json:"trophies"`

	Rating float64 `json:"rating"`

	Summary    teamSummaryDTO    `json:"summary"`
	Statistics teamStatisticsDTO `json:"statistics"`

	GoalsOverTime []timeSampleDTO `json:"goalsOverTime"`
	FormOverTime  []timeSampleDTO `json:"formOverTime"`

	LastSyncedAt string `json:"lastSyncedAt"`
	SyncVersion  int64  `json:"syncVersion"`
}

type trophyDTO struct {
	Name   string `json:"name"`
	Season string `json:"season"`
}

type splitCountsDTO struct {
	Total int `json:"total"`
	Home  int `json:"home"`
	Away  int `json:"away"`
}

type teamSummaryDTO struct {
	Games        splitCountsDTO `json:"games"`
	Wins         splitCountsDTO `json:"wins"`
	Draws        splitCountsDTO `json:"draws"`
	Losses       splitCountsDTO `json:"losses"`
	GoalsFor     splitCountsDTO `json:"goalsFor"`
	GoalsAgainst splitCountsDTO `json:"goalsAgainst"`
}

type teamStatisticsDTO struct {
	Attacking teamAttackingDTO `json:"attacking"`
	Defending teamDefendingDTO `json:"defending"`
	Passing   teamPassingDTO   `json:"passing"`
	Other     teamOtherDTO     `json:"other"`
}

type teamAttackingDTO struct {
	GoalsPerGame         float64 `json:"goalsPerGame"`
	ShotsPerGame         float64 `json:"shotsPerGame"`
	ShotsOnTargetPerGame float64 `json:"shotsOnTargetPerGame"`
	BigChancesPerGame    float64 `json:"bigChancesPerGame"`
}

type teamDefendingDTO struct {
	GoalsConcededPerGame float64 `json:"goalsConcededPerGame"`
	TacklesPerGame       float64 `json:"tacklesPerGame"`
	InterceptionsPerGame float64 `json:"interceptionsPerGame"`
	ClearancesPerGame    float64 `json:"clearancesPerGame"`
}

type teamPassingDTO struct {
	PassesPerGame         float64 `json:"passesPerGame"`
	AccuratePassesPerGame float64 `json:"accuratePassesPerGame"`
	PassAccuracyPercent   float64 `json:"passAccuracyPercent"`
	CrossesPerGame        float64 `json:"crossesPerGame"`
}

type teamOtherDTO struct {
	FoulsPerGame       float64 `json:"foulsPerGame"`
	YellowCardsPerGame float64 `json:"yellowCardsPerGame"`
	RedCardsPerGame    float64 `json:"redCardsPerGame"`
	CornersPerGame     float64 `json:"cornersPerGame"`
}

type timeSampleDTO struct {
	Matchday int     `json:"matchday"`
	Value    float64 `json:"value"`
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	id, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.queries.GetTeam(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTO(record))
}

func (h *Handler) ListTeamsByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByTournament")
	defer span.End()

	tournamentID, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := listQuery{
		TournamentID: tournamentID,
		Season:       strings.TrimSpace(r.URL.Query().Get("season")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.queries.ListTeams(ctx, query.TournamentID, query.Season)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(records))
	for _, record := range records {
		items = append(items, toTeamDTO(record))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": items})
}

func toTeamDTO(record team.Record) teamDTO {
	trophies := make([]trophyDTO, 0, len(record.Trophies))
	for _, trophy := range record.Trophies {
		trophies = append(trophies, trophyDTO{Name: trophy.Name, Season: trophy.Season})
	}

	return teamDTO{
		ID:             record.ID,
		TournamentID:   record.TournamentID,
		Season:         record.Season,
		Name:           record.Name,
		Code:           record.Code,
		Logo:           record.Logo,
		Venue:          record.Venue,
		SquadSize:      record.SquadSize,
		ForeignPlayers: record.ForeignPlayers,
		AverageAge:     record.AverageAge,
		Coaches:        record.Coaches,
		Trophies:       trophies,
		Rating:         record.Rating,
		Summary: teamSummaryDTO{
			Games:        toSplitCountsDTO(record.Summary.Games),
			Wins:         toSplitCountsDTO(record.Summary.Wins),
			Draws:        toSplitCountsDTO(record.Summary.Draws),
			Losses:       toSplitCountsDTO(record.Summary.Losses),
			GoalsFor:     toSplitCountsDTO(record.Summary.GoalsFor),
			GoalsAgainst: toSplitCountsDTO(record.Summary.GoalsAgainst),
		},
		Statistics: teamStatisticsDTO{
			Attacking: teamAttackingDTO{
				GoalsPerGame:         record.Statistics.Attacking.GoalsPerGame,
				ShotsPerGame:         record.Statistics.Attacking.ShotsPerGame,
				ShotsOnTargetPerGame: record.Statistics.Attacking.ShotsOnTargetPerGame,
				BigChancesPerGame:    record.Statistics.Attacking.BigChancesPerGame,
			},
			Defending: teamDefendingDTO{
				GoalsConcededPerGame: record.Statistics.Defending.GoalsConcededPerGame,
				TacklesPerGame:       record.Statistics.Defending.TacklesPerGame,
				InterceptionsPerGame: record.Statistics.Defending.InterceptionsPerGame,
				ClearancesPerGame:    record.Statistics.Defending.ClearancesPerGame,
			},
			Passing: teamPassingDTO{
				PassesPerGame:         record.Statistics.Passing.PassesPerGame,
				AccuratePassesPerGame: record.Statistics.Passing.AccuratePassesPerGame,
				PassAccuracyPercent:   record.Statistics.Passing.PassAccuracyPercent,
				CrossesPerGame:        record.Statistics.Passing.CrossesPerGame,
			},
			Other: teamOtherDTO{
				FoulsPerGame:       record.Statistics.Other.FoulsPerGame,
				YellowCardsPerGame: record.Statistics.Other.YellowCardsPerGame,
				RedCardsPerGame:    record.Statistics.Other.RedCardsPerGame,
				CornersPerGame:     record.Statistics.Other.CornersPerGame,
			},
		},
		GoalsOverTime: toTimeSampleDTOs(record.GoalsOverTime),
		FormOverTime:  toTimeSampleDTOs(record.FormOverTime),
		LastSyncedAt:  formatSyncTime(record.LastSynced),
		SyncVersion:   record.SyncVersion,
	}
}

func toSplitCountsDTO(counts team.SplitCounts) splitCountsDTO {
	return splitCountsDTO{Total: counts.Total, Home: counts.Home, Away: counts.Away}
}

func toTimeSampleDTOs(samples []team.TimeSample) []timeSampleDTO {
	out := make([]timeSampleDTO, 0, len(samples))
	for _, sample := range samples {
		out = append(out, timeSampleDTO{Matchday: sample.Matchday, Value: sample.Value})
	}
	return out
}
