package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// CompletionCounter reads completion counts. It is satisfied by the Redis
// statistics subscriber.
type CompletionCounter interface {
	ForUser(ctx context.Context, userID int64) (int64, error)
	Total(ctx context.Context) (int64, error)
}

// UserHandler handles account registration and the caller's own account.
type UserHandler struct {
	svc   ports.UserService
	stats CompletionCounter
}

// NewUserHandler creates a new UserHandler. stats may be nil, in which case
// the stats endpoint answers 503.
func NewUserHandler(svc ports.UserService, stats CompletionCounter) *UserHandler {
	return &UserHandler{svc: svc, stats: stats}
}

// Register handles POST /api/v1/users. It is not authenticated.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.svc.Register(r.Context(), req.Input())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/users/%d", u.ID()))
	writeJSON(w, r, http.StatusCreated, dto.ToUserResponse(u))
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToUserResponse(u))
}

// DeleteMe handles DELETE /api/v1/users/me. The account's lists and items
// go with it.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteUser(r.Context(), userID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/v1/users/me/stats.
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if h.stats == nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: completion statistics are disabled", domain.ErrUnavailable))
		return
	}

	mine, err := h.stats.ForUser(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: %w", domain.ErrUnavailable, err))
		return
	}
	total, err := h.stats.Total(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: %w", domain.ErrUnavailable, err))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.StatsResponse{
		UserID:              userID,
		CompletedItems:      mine,
		TotalCompletedItems: total,
	})
}
