package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/renca-fc/league-console/internal/domain/club"
	"github.com/renca-fc/league-console/internal/usecase"
)

type clubRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	LogoURL      string `json:"logo_url" validate:"omitempty,url"`
	LeagueSeries string `json:"league_series" validate:"omitempty,max=20"`
}

type enrollTeamRequest struct {
	ClubID     int64 `json:"club_id" validate:"required,gt=0"`
	CategoryID int64 `json:"category_id" validate:"required,gt=0"`
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var req clubRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.clubService.CreateClub(ctx, sessionFromContext(ctx), club.Draft{
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		LeagueSeries: req.LeagueSeries,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(created))
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClub")
	defer span.End()

	clubID, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req clubRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.clubService.UpdateClub(ctx, sessionFromContext(ctx), clubID, club.Draft{
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		LeagueSeries: req.LeagueSeries,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update club failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubToDTO(updated))
}

func (h *Handler) EnrollTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EnrollTeam")
	defer span.End()

	var req enrollTeamRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	enrolled, err := h.clubService.EnrollTeam(ctx, sessionFromContext(ctx), req.ClubID, req.CategoryID)
	if err != nil {
		h.logger.WarnContext(ctx, "enroll team failed",
			"club_id", req.ClubID, "category_id", req.CategoryID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(enrolled))
}
