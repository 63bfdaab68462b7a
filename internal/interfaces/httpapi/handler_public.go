package httpapi

import (
	"errors"
	"net/http"

	"github.com/renca-fc/league-console/internal/usecase"
)

// Public read endpoints degrade to an empty collection when the league
// backend is unreachable. The dashboard renders "no data" instead of an
// error page; admin endpoints never do this.
func (h *Handler) publicDegrade(err error) bool {
	return errors.Is(err, usecase.ErrDependencyUnavailable)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCategories")
	defer span.End()

	categories, err := h.clubService.ListCategories(ctx)
	if err != nil {
		if h.publicDegrade(err) {
			h.logger.WarnContext(ctx, "category list degraded to empty", "error", err)
			writeSuccess(ctx, w, http.StatusOK, []categoryDTO{})
			return
		}
		h.logger.ErrorContext(ctx, "list categories failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	clubs, err := h.clubService.ListClubs(ctx)
	if err != nil {
		if h.publicDegrade(err) {
			h.logger.WarnContext(ctx, "club list degraded to empty", "error", err)
			writeSuccess(ctx, w, http.StatusOK, []clubDTO{})
			return
		}
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClubDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubDetails")
	defer span.End()

	clubID, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.clubService.GetClubDetails(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "club details failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubDetailToDTO(detail))
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	venues, err := h.clubService.ListVenues(ctx)
	if err != nil {
		if h.publicDegrade(err) {
			h.logger.WarnContext(ctx, "venue list degraded to empty", "error", err)
			writeSuccess(ctx, w, http.StatusOK, []venueDTO{})
			return
		}
		h.logger.ErrorContext(ctx, "list venues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]venueDTO, 0, len(venues))
	for _, v := range venues {
		items = append(items, venueDTO{ID: v.ID, Name: v.Name, Location: v.Location})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchDays")
	defer span.End()

	days, err := h.scheduleService.ListMatchDays(ctx)
	if err != nil {
		if h.publicDegrade(err) {
			h.logger.WarnContext(ctx, "match day list degraded to empty", "error", err)
			writeSuccess(ctx, w, http.StatusOK, []matchDayDTO{})
			return
		}
		h.logger.ErrorContext(ctx, "list match days failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDayDTO, 0, len(days))
	for _, d := range days {
		items = append(items, matchDayToDTO(d))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByCategory")
	defer span.End()

	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.clubService.ListTeamsByCategory(ctx, categoryID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingsService.Leaderboard(ctx, categoryID, r.URL.Query().Get("series"))
	if err != nil {
		if h.publicDegrade(err) {
			h.logger.WarnContext(ctx, "standings degraded to empty", "category_id", categoryID, "error", err)
			writeSuccess(ctx, w, http.StatusOK, []standingsRowDTO{})
			return
		}
		h.logger.WarnContext(ctx, "standings failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) GetAdultStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdultStandings")
	defer span.End()

	rows, err := h.standingsService.AdultLeaderboard(ctx, r.URL.Query().Get("series"))
	if err != nil {
		if h.publicDegrade(err) {
			h.logger.WarnContext(ctx, "adult standings degraded to empty", "error", err)
			writeSuccess(ctx, w, http.StatusOK, []standingsRowDTO{})
			return
		}
		h.logger.WarnContext(ctx, "adult standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopScorers")
	defer span.End()

	categoryRef := r.PathValue("categoryRef")
	scorers, err := h.standingsService.TopScorers(ctx, categoryRef, r.URL.Query().Get("series"))
	if err != nil {
		if h.publicDegrade(err) {
			h.logger.WarnContext(ctx, "top scorers degraded to empty", "category_ref", categoryRef, "error", err)
			writeSuccess(ctx, w, http.StatusOK, []scorerDTO{})
			return
		}
		h.logger.WarnContext(ctx, "top scorers failed", "category_ref", categoryRef, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scorerDTO, 0, len(scorers))
	for _, s := range scorers {
		items = append(items, scorerDTO{
			PlayerID:   s.PlayerID,
			PlayerName: s.PlayerName,
			ClubName:   s.ClubName,
			ClubLogo:   s.ClubLogo,
			Goals:      s.Goals,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

// GetPublicFixtures serves the dashboard's grouped fixture view:
// current rounds only unless show_past=true, with the public overflow
// variant applied.
func (h *Handler) GetPublicFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPublicFixtures")
	defer span.End()

	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	grouping, err := h.scheduleService.GroupedMatches(ctx, categoryID, usecase.GroupedOptions{
		Series:     r.URL.Query().Get("series"),
		ShowPast:   r.URL.Query().Get("show_past") == "true",
		PublicView: true,
	})
	if err != nil {
		if h.publicDegrade(err) {
			h.logger.WarnContext(ctx, "public fixtures degraded to empty", "category_id", categoryID, "error", err)
			writeSuccess(ctx, w, http.StatusOK, []fixtureGroupDTO{})
			return
		}
		h.logger.WarnContext(ctx, "public fixtures failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, groupingToDTO(grouping))
}
