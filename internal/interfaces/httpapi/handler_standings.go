package httpapi

import (
	"net/http"
	"strings"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/standings"
)

type standingsDTO struct {
	TournamentID   int64  `json:"tournamentId"`
	TournamentName string `json:"tournamentName"`
	Season         string `json:"season"`

	Rows []standingsRowDTO `json:"rows"`

	LastSyncedAt string `json:"lastSyncedAt"`
	SyncVersion  int64  `json:"syncVersion"`
}

type standingsRowDTO struct {
	Rank     int    `json:"rank"`
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`

	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
	GoalsDiff    int `json:"goalsDiff"`
	Points       int `json:"points"`

	Home splitLineDTO `json:"home"`
	Away splitLineDTO `json:"away"`
}

type splitLineDTO struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

func toSplitLineDTO(line standings.SplitLine) splitLineDTO {
	return splitLineDTO{
		Played:       line.Played,
		Wins:         line.Wins,
		Draws:        line.Draws,
		Losses:       line.Losses,
		GoalsFor:     line.GoalsFor,
		GoalsAgainst: line.GoalsAgainst,
	}
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
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

	record, err := h.queries.GetStandings(ctx, query.TournamentID, query.Season)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toStandingsDTO(record))
}

func toStandingsDTO(record standings.Record) standingsDTO {
	rows := make([]standingsRowDTO, 0, len(record.Rows))
	for _, row := range record.Rows {
		rows = append(rows, standingsRowDTO{
			Rank:         row.Rank,
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			Played:       row.Played,
			Wins:         row.Wins,
			Draws:        row.Draws,
			Losses:       row.Losses,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			GoalsDiff:    row.GoalsDiff,
			Points:       row.Points,
			Home:         toSplitLineDTO(row.Home),
			Away:         toSplitLineDTO(row.Away),
		})
	}

	return standingsDTO{
		TournamentID:   record.TournamentID,
		TournamentName: record.TournamentName,
		Season:         record.Season,
		Rows:           rows,
		LastSyncedAt:   formatSyncTime(record.LastSynced),
		SyncVersion:    record.SyncVersion,
	}
}
