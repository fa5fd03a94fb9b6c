package httpapi

import (
	"net/http"
	"strings"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
)

type playerDTO struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournamentId"`
	Season       string `json:"season"`

	Name         string `json:"name"`
	Position     string `json:"position"`
	PositionCode string `json:"positionCode"`
	Nationality  string `json:"nationality"`
	Image        string `json:"image"`

	Career playerCareerDTO `json:"career"`
	Traits playerTraitsDTO `json:"traits"`

	Heatmap []heatPointDTO `json:"heatmap"`
	Shotmap []shotPointDTO `json:"shotmap"`

	LastSyncedAt string `json:"lastSyncedAt"`
	SyncVersion  int64  `json:"syncVersion"`
}

type playerCareerDTO struct {
	TotalMatches int                    `json:"totalMatches"`
	Entries      []playerCareerEntryDTO `json:"entries"`
}

type playerCareerEntryDTO struct {
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`
	Season   string `json:"season"`
	Matches  int    `json:"matches"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Saves    int    `json:"saves"`
}

type playerTraitsDTO struct {
	Attacking float64 `json:"attacking"`
	Dribbling float64 `json:"dribbling"`
	Physical  float64 `json:"physical"`
	Passing   float64 `json:"passing"`
	Shooting  float64 `json:"shooting"`
	Defending float64 `json:"defending"`
	Tackling  float64 `json:"tackling"`
	Duels     float64 `json:"duels"`
}

type heatPointDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Weight float64 `json:"weight"`
}

type shotPointDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	OnGoal bool    `json:"onGoal"`
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.queries.GetPlayer(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDTO(record))
}

func (h *Handler) ListPlayersByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTournament")
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

	records, err := h.queries.ListPlayers(ctx, query.TournamentID, query.Season)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(records))
	for _, record := range records {
		items = append(items, toPlayerDTO(record))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": items})
}

func toPlayerDTO(record player.Record) playerDTO {
	entries := make([]playerCareerEntryDTO, 0, len(record.Career.Entries))
	for _, entry := range record.Career.Entries {
		entries = append(entries, playerCareerEntryDTO{
			TeamID:   entry.TeamID,
			TeamName: entry.TeamName,
			Season:   entry.Season,
			Matches:  entry.Matches,
			Goals:    entry.Goals,
			Assists:  entry.Assists,
			Saves:    entry.Saves,
		})
	}

	heatmap := make([]heatPointDTO, 0, len(record.Heatmap))
	for _, point := range record.Heatmap {
		heatmap = append(heatmap, heatPointDTO{X: point.X, Y: point.Y, Weight: point.Weight})
	}

	shotmap := make([]shotPointDTO, 0, len(record.Shotmap))
	for _, point := range record.Shotmap {
		shotmap = append(shotmap, shotPointDTO{X: point.X, Y: point.Y, OnGoal: point.OnGoal})
	}

	return playerDTO{
		ID:           record.ID,
		TournamentID: record.TournamentID,
		Season:       record.Season,
		Name:         record.Name,
		Position:     string(record.Position),
		PositionCode: record.PositionCode,
		Nationality:  record.Nationality,
		Image:        record.Image,
		Career: playerCareerDTO{
			TotalMatches: record.Career.TotalMatches,
			Entries:      entries,
		},
		Traits: playerTraitsDTO{
			Attacking: record.Traits.Attacking,
			Dribbling: record.Traits.Dribbling,
			Physical:  record.Traits.Physical,
			Passing:   record.Traits.Passing,
			Shooting:  record.Traits.Shooting,
			Defending: record.Traits.Defending,
			Tackling:  record.Traits.Tackling,
			Duels:     record.Traits.Duels,
		},
		Heatmap:      heatmap,
		Shotmap:      shotmap,
		LastSyncedAt: formatSyncTime(record.LastSynced),
		SyncVersion:  record.SyncVersion,
	}
}
