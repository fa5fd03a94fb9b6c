package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/coaches/{coachID}", handler.GetCoach)
	mux.HandleFunc("GET /v1/referees/{refereeID}", handler.GetReferee)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/teams", handler.ListTeamsByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/players", handler.ListPlayersByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.GetStandings)
}
