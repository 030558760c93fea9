package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// ListHandler handles HTTP requests for the caller's todo lists.
type ListHandler struct {
	svc ports.TodoListService
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(svc ports.TodoListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// ListLists handles GET /api/v1/lists.
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	lists, err := h.svc.ListTodoLists(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListsResponse(lists))
}

// CreateList handles POST /api/v1/lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.CreateTodoList(r.Context(), userID, req.Input())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToListResponse(l))
}

// GetList handles GET /api/v1/lists/{listId}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := resolve(w, r, ParamListID)
	if !ok {
		return
	}

	l, err := h.svc.GetTodoList(r.Context(), userID, ids[0])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(l))
}

// UpdateList handles PUT /api/v1/lists/{listId}.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := resolve(w, r, ParamListID)
	if !ok {
		return
	}

	var req dto.ListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.UpdateTodoList(r.Context(), userID, ids[0], req.Input())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(l))
}

// DeleteList handles DELETE /api/v1/lists/{listId}.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := resolve(w, r, ParamListID)
	if !ok {
		return
	}

	if err := h.svc.DeleteTodoList(r.Context(), userID, ids[0]); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
