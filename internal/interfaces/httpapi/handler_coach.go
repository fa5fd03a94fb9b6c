package httpapi

import (
	"net/http"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/coach"
)

type coachDTO struct {
	ID           int64 `json:"id"`
	TournamentID int64 `json:"tournamentId"`

	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	CountryCode string `json:"countryCode"`
	Image       string `json:"image"`

	PreferredFormation string `json:"preferredFormation"`

	Career   []coachCareerEntryDTO `json:"career"`
	Trophies []trophyDTO           `json:"trophies"`

	LastSyncedAt string `json:"lastSyncedAt"`
	SyncVersion  int64  `json:"syncVersion"`
}

type coachCareerEntryDTO struct {
	TournamentID   int64   `json:"tournamentId"`
	TournamentName string  `json:"tournamentName"`
	Season         string  `json:"season"`
	Matches        int     `json:"matches"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	Points         int     `json:"points"`
	PointsPerGame  float64 `json:"pointsPerGame"`
}

func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCoach")
	defer span.End()

	id, err := pathID(r, "coachID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.queries.GetCoach(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toCoachDTO(record))
}

func toCoachDTO(record coach.Record) coachDTO {
	career := make([]coachCareerEntryDTO, 0, len(record.Career))
	for _, entry := range record.Career {
		career = append(career, coachCareerEntryDTO{
			TournamentID:   entry.TournamentID,
			TournamentName: entry.TournamentName,
			Season:         entry.Season,
			Matches:        entry.Matches,
			Wins:           entry.Wins,
			Draws:          entry.Draws,
			Losses:         entry.Losses,
			Points:         entry.Points,
			PointsPerGame:  entry.PointsPerGame,
		})
	}

	trophies := make([]trophyDTO, 0, len(record.Trophies))
	for _, trophy := range record.Trophies {
		trophies = append(trophies, trophyDTO{Name: trophy.Name, Season: trophy.Season})
	}

	return coachDTO{
		ID:                 record.ID,
		TournamentID:       record.TournamentID,
		Name:               record.Name,
		Nationality:        record.Nationality,
		CountryCode:        record.CountryCode,
		Image:              record.Image,
		PreferredFormation: record.PreferredFormation,
		Career:             career,
		Trophies:           trophies,
		LastSyncedAt:       formatSyncTime(record.LastSynced),
		SyncVersion:        record.SyncVersion,
	}
}
