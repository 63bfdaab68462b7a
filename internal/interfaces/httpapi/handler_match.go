package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/renca-fc/league-console/internal/domain/match"
	"github.com/renca-fc/league-console/internal/domain/matchday"
	"github.com/renca-fc/league-console/internal/usecase"
)

// The console's scheduling form posts naive local datetimes. RFC 3339
// is accepted too for API clients.
var matchDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseMatchDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range matchDateLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("%w: unrecognized match date %q", usecase.ErrInvalidInput, raw)
}

type matchRequest struct {
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	HomeTeamID int64  `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64  `json:"away_team_id" validate:"required,gt=0"`
	VenueID    *int64 `json:"venue_id" validate:"omitempty,gt=0"`
	MatchDate  string `json:"match_date"`
}

type matchDayRequest struct {
	Name      string `json:"name" validate:"required,max=80"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (h *Handler) decodeMatchDraft(r *http.Request) (match.Draft, error) {
	var req matchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		return match.Draft{}, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(r.Context(), req); err != nil {
		return match.Draft{}, err
	}
	matchDate, err := parseMatchDate(req.MatchDate)
	if err != nil {
		return match.Draft{}, err
	}
	return match.Draft{
		CategoryID: req.CategoryID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		VenueID:    req.VenueID,
		MatchDate:  matchDate,
	}, nil
}

// GetAdminSchedule serves the admin console's grouped match view: all
// rounds including past ones stay visible, and the overflow bucket is
// always present so undated matches can be scheduled from it.
func (h *Handler) GetAdminSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminSchedule")
	defer span.End()

	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	grouping, err := h.scheduleService.GroupedMatches(ctx, categoryID, usecase.GroupedOptions{
		Series:   r.URL.Query().Get("series"),
		ShowPast: r.URL.Query().Get("show_past") != "false",
	})
	if err != nil {
		h.logger.WarnContext(ctx, "admin schedule failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, groupingToDTO(grouping))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	draft, err := h.decodeMatchDraft(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, sessionFromContext(ctx), draft)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	draft, err := h.decodeMatchDraft(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, sessionFromContext(ctx), matchID, draft)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, sessionFromContext(ctx), matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) CreateMatchDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchDay")
	defer span.End()

	var req matchDayRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startDate, err := time.ParseInLocation(dateOnlyLayout, req.StartDate, time.UTC)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: start_date must be YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}
	endDate, err := time.ParseInLocation(dateOnlyLayout, req.EndDate, time.UTC)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: end_date must be YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}

	day, err := h.scheduleService.CreateMatchDay(ctx, sessionFromContext(ctx), matchday.Draft{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match day failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchDayToDTO(day))
}

func (h *Handler) DeleteMatchDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchDay")
	defer span.End()

	dayID, err := pathID(r, "matchDayID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.scheduleService.DeleteMatchDay(ctx, sessionFromContext(ctx), dayID); err != nil {
		h.logger.WarnContext(ctx, "delete match day failed", "match_day_id", dayID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
