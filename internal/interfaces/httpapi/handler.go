package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/renca-fc/league-console/internal/usecase"
)

type Handler struct {
	scheduleService  *usecase.ScheduleService
	matchService     *usecase.MatchService
	liveService      *usecase.LiveMatchService
	rosterService    *usecase.RosterService
	clubService      *usecase.ClubService
	standingsService *usecase.StandingsService
	accountService   *usecase.AccountService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	scheduleService *usecase.ScheduleService,
	matchService *usecase.MatchService,
	liveService *usecase.LiveMatchService,
	rosterService *usecase.RosterService,
	clubService *usecase.ClubService,
	standingsService *usecase.StandingsService,
	accountService *usecase.AccountService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		scheduleService:  scheduleService,
		matchService:     matchService,
		liveService:      liveService,
		rosterService:    rosterService,
		clubService:      clubService,
		standingsService: standingsService,
		accountService:   accountService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// pathID parses a numeric path segment. The backend keys everything by
// integer id, so a non-numeric segment can only be a bad request.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
