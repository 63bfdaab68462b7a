package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/renca-fc/league-console/internal/usecase"
)

// flexibleMinute accepts the minute as either a JSON number or a
// string. The match-control form submits whatever the operator typed;
// coercion to a real minute happens downstream.
type flexibleMinute string

func (m *flexibleMinute) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*m = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = flexibleMinute(s)
		return nil
	}
	*m = flexibleMinute(raw)
	return nil
}

type addEventRequest struct {
	PlayerID  int64          `json:"player_id" validate:"required,gt=0"`
	EventType string         `json:"event_type" validate:"required"`
	Minute    flexibleMinute `json:"minute"`
}

func (h *Handler) OpenLiveSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenLiveSession")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.liveService.Open(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "open live session failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveSessionToDTO(view))
}

func (h *Handler) AddMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatchEvent")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addEventRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.liveService.AddEvent(ctx, sessionFromContext(ctx), usecase.AddEventInput{
		MatchID:   matchID,
		PlayerID:  req.PlayerID,
		EventType: req.EventType,
		Minute:    string(req.Minute),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add match event failed",
			"match_id", matchID, "player_id", req.PlayerID, "event_type", req.EventType, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, liveSessionToDTO(view))
}

func (h *Handler) DeleteMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchEvent")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.liveService.DeleteEvent(ctx, sessionFromContext(ctx), matchID, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "delete match event failed",
			"match_id", matchID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveSessionToDTO(view))
}

func (h *Handler) FinalizeMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	finalized, err := h.liveService.Finalize(ctx, sessionFromContext(ctx), matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "finalize match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(finalized))
}

func (h *Handler) ReopenMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReopenMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	reopened, err := h.liveService.Reopen(ctx, sessionFromContext(ctx), matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "reopen match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(reopened))
}
