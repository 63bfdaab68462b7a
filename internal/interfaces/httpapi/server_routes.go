package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/login", handler.Login)

	mux.HandleFunc("GET /v1/categories", handler.ListCategories)
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{clubID}/details", handler.GetClubDetails)
	mux.HandleFunc("GET /v1/venues", handler.ListVenues)
	mux.HandleFunc("GET /v1/match-days", handler.ListMatchDays)
	mux.HandleFunc("GET /v1/categories/{categoryID}/teams", handler.ListTeamsByCategory)

	mux.HandleFunc("GET /v1/categories/{categoryID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/standings/adultos", handler.GetAdultStandings)
	mux.HandleFunc("GET /v1/top-scorers/{categoryRef}", handler.GetTopScorers)
	mux.HandleFunc("GET /v1/categories/{categoryID}/fixtures", handler.GetPublicFixtures)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	authorized := func(h http.HandlerFunc) http.Handler {
		return RequireSession(h)
	}

	mux.Handle("POST /v1/clubs", authorized(handler.CreateClub))
	mux.Handle("PUT /v1/clubs/{clubID}", authorized(handler.UpdateClub))
	mux.Handle("POST /v1/teams", authorized(handler.EnrollTeam))

	mux.Handle("GET /v1/teams/{teamID}/players", authorized(handler.ListTeamPlayers))
	mux.Handle("PUT /v1/players/{playerID}", authorized(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", authorized(handler.DeletePlayer))
	mux.Handle("POST /v1/teams/{teamID}/players/upload", authorized(handler.UploadRoster))

	mux.Handle("GET /v1/categories/{categoryID}/matches", authorized(handler.GetAdminSchedule))
	mux.Handle("POST /v1/matches", authorized(handler.CreateMatch))
	mux.Handle("PUT /v1/matches/{matchID}", authorized(handler.UpdateMatch))
	mux.Handle("DELETE /v1/matches/{matchID}", authorized(handler.DeleteMatch))

	mux.Handle("GET /v1/matches/{matchID}/live", authorized(handler.OpenLiveSession))
	mux.Handle("POST /v1/matches/{matchID}/events", authorized(handler.AddMatchEvent))
	mux.Handle("DELETE /v1/matches/{matchID}/events/{eventID}", authorized(handler.DeleteMatchEvent))
	mux.Handle("POST /v1/matches/{matchID}/finalize", authorized(handler.FinalizeMatch))
	mux.Handle("POST /v1/matches/{matchID}/reopen", authorized(handler.ReopenMatch))

	mux.Handle("POST /v1/match-days", authorized(handler.CreateMatchDay))
	mux.Handle("DELETE /v1/match-days/{matchDayID}", authorized(handler.DeleteMatchDay))

	mux.Handle("GET /v1/users", authorized(handler.ListUsers))
	mux.Handle("POST /v1/users", authorized(handler.CreateUser))
	mux.Handle("DELETE /v1/users/{userID}", authorized(handler.DeleteUser))
	mux.Handle("GET /v1/audit-logs", authorized(handler.ListAuditLogs))
}
