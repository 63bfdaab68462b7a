package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/renca-fc/league-console/internal/domain/player"
	"github.com/renca-fc/league-console/internal/usecase"
)

// Roster spreadsheets top out well under this; the cap only guards
// against runaway uploads.
const maxUploadBytes = 10 << 20

type playerUpdateRequest struct {
	Name   string `json:"name" validate:"required,max=120"`
	DNI    string `json:"dni" validate:"omitempty,max=20"`
	Number *int   `json:"number" validate:"omitempty,gte=0,lte=99"`
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.rosterService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerUpdateRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.rosterService.UpdatePlayer(ctx, sessionFromContext(ctx), playerID, player.Update{
		Name:   req.Name,
		DNI:    req.DNI,
		Number: req.Number,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.rosterService.DeletePlayer(ctx, sessionFromContext(ctx), playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

// UploadRoster accepts a spreadsheet as the multipart "file" field and
// forwards it to the backend importer. Row-level failures come back in
// the summary rather than failing the request.
func (h *Handler) UploadRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadRoster")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart body: %v", usecase.ErrInvalidInput, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: file field is required", usecase.ErrInvalidInput))
		return
	}
	defer file.Close()

	summary, err := h.rosterService.UploadRoster(ctx, sessionFromContext(ctx), teamID, header.Filename, file)
	if err != nil {
		h.logger.WarnContext(ctx, "roster upload failed",
			"team_id", teamID, "filename", header.Filename, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "roster uploaded",
		"team_id", teamID,
		"created", summary.CreatedCount,
		"updated", summary.UpdatedCount,
		"row_errors", len(summary.Errors))
	writeSuccess(ctx, w, http.StatusOK, importSummaryDTO{
		Message:      summary.Message,
		CreatedCount: summary.CreatedCount,
		UpdatedCount: summary.UpdatedCount,
		Errors:       summary.Errors,
	})
}
