package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// ItemHandler handles HTTP requests for items nested under a todo list.
type ItemHandler struct {
	svc ports.TodoItemService
}

// NewItemHandler creates a new ItemHandler with the given service port.
func NewItemHandler(svc ports.TodoItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// ListItems handles GET /api/v1/lists/{listId}/items.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := resolve(w, r, ParamListID)
	if !ok {
		return
	}

	items, err := h.svc.ListTodoItems(r.Context(), userID, ids[0])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemsResponse(items))
}

// CreateItem handles POST /api/v1/lists/{listId}/items.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := resolve(w, r, ParamListID)
	if !ok {
		return
	}

	var req dto.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	it, err := h.svc.CreateTodoItem(r.Context(), userID, ids[0], req.Input())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToItemResponse(it))
}

// GetItem handles GET /api/v1/lists/{listId}/items/{itemId}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := resolve(w, r, ParamListID, ParamItemID)
	if !ok {
		return
	}

	it, err := h.svc.GetTodoItem(r.Context(), userID, ids[0], ids[1])
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemResponse(it))
}

// UpdateItem handles PUT /api/v1/lists/{listId}/items/{itemId}.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := resolve(w, r, ParamListID, ParamItemID)
	if !ok {
		return
	}

	var req dto.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	it, err := h.svc.UpdateTodoItem(r.Context(), userID, ids[0], ids[1], req.Input())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemResponse(it))
}

// DeleteItem handles DELETE /api/v1/lists/{listId}/items/{itemId}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ids, ok := resolve(w, r, ParamListID, ParamItemID)
	if !ok {
		return
	}

	if err := h.svc.DeleteTodoItem(r.Context(), userID, ids[0], ids[1]); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resolve returns the caller and the named path ids in order, writing the
// error response when any is missing.
func resolve(w http.ResponseWriter, r *http.Request, params ...string) (int64, []int64, bool) {
	userID, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, nil, false
	}
	ids, err := parseIDs(r, params...)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, nil, false
	}
	return userID, ids, true
}
