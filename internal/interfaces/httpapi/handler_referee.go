package httpapi

import (
	"net/http"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/referee"
)

type refereeDTO struct {
	ID           int64 `json:"id"`
	TournamentID int64 `json:"tournamentId"`

	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	CountryCode string `json:"countryCode"`
	Image       string `json:"image"`

	Career []refereeCareerEntryDTO `json:"career"`

	LastSyncedAt string `json:"lastSyncedAt"`
	SyncVersion  int64  `json:"syncVersion"`
}

type refereeCareerEntryDTO struct {
	TournamentID   int64   `json:"tournamentId"`
	TournamentName string  `json:"tournamentName"`
	Season         string  `json:"season"`
	Matches        int     `json:"matches"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	Points         int     `json:"points"`
	PointsPerGame  float64 `json:"pointsPerGame"`

	YellowCardsPerGame float64 `json:"yellowCardsPerGame"`
	RedCardsPerGame    float64 `json:"redCardsPerGame"`
}

func (h *Handler) GetReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReferee")
	defer span.End()

	id, err := pathID(r, "refereeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.queries.GetReferee(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRefereeDTO(record))
}

func toRefereeDTO(record referee.Record) refereeDTO {
	career := make([]refereeCareerEntryDTO, 0, len(record.Career))
	for _, entry := range record.Career {
		career = append(career, refereeCareerEntryDTO{
			TournamentID:       entry.TournamentID,
			TournamentName:     entry.TournamentName,
			Season:             entry.Season,
			Matches:            entry.Matches,
			Wins:               entry.Wins,
			Draws:              entry.Draws,
			Losses:             entry.Losses,
			Points:             entry.Points,
			PointsPerGame:      entry.PointsPerGame,
			YellowCardsPerGame: entry.YellowCardsPerGame,
			RedCardsPerGame:    entry.RedCardsPerGame,
		})
	}

	return refereeDTO{
		ID:           record.ID,
		TournamentID: record.TournamentID,
		Name:         record.Name,
		Nationality:  record.Nationality,
		CountryCode:  record.CountryCode,
		Image:        record.Image,
		Career:       career,
		LastSyncedAt: formatSyncTime(record.LastSynced),
		SyncVersion:  record.SyncVersion,
	}
}
