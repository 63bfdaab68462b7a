package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/renca-fc/league-console/internal/domain/user"
	"github.com/renca-fc/league-console/internal/usecase"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string     `json:"token"`
	Username  string     `json:"username"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.accountService.Login(ctx, user.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	resp := loginResponse{Token: sess.Token, Username: sess.Username()}
	if !sess.Principal.ExpiresAt.IsZero() {
		expires := sess.Principal.ExpiresAt
		resp.ExpiresAt = &expires
	}
	writeSuccess(ctx, w, http.StatusOK, resp)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	users, err := h.accountService.ListUsers(ctx, sessionFromContext(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "list users failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]userDTO, 0, len(users))
	for _, u := range users {
		items = append(items, userToDTO(u))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateUser")
	defer span.End()

	var req createUserRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.accountService.CreateUser(ctx, sessionFromContext(ctx), user.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create user failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, userToDTO(created))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteUser")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.accountService.DeleteUser(ctx, sessionFromContext(ctx), userID); err != nil {
		h.logger.WarnContext(ctx, "delete user failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAuditLogs")
	defer span.End()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	entries, err := h.accountService.AuditLog(ctx, sessionFromContext(ctx), limit)
	if err != nil {
		h.logger.WarnContext(ctx, "audit log failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]auditEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, auditEntryToDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
