package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
	"github.com/jsamuelsen11/go-todolist-service/mocks"
)

func itemRequest(t *testing.T, method, target, body string, params map[string]string) *http.Request {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return withChiParams(asCaller(req), params)
}

func TestListItems(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoItemService(t)
	svc.EXPECT().ListTodoItems(mock.Anything, testCaller, int64(3)).Return([]*todo.Item{milk(false)}, nil)

	rec := httptest.NewRecorder()
	handlers.NewItemHandler(svc).ListItems(rec,
		itemRequest(t, http.MethodGet, "/api/v1/lists/3/items", "", map[string]string{handlers.ParamListID: "3"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ItemsResponse](t, rec)
	if resp.Count != 1 || resp.Items[0].Priority != "LOW" {
		t.Errorf("response = %+v, want one LOW item", resp)
	}
}

func TestCreateItem(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	svc := mocks.NewMockTodoItemService(t)
	svc.EXPECT().
		CreateTodoItem(mock.Anything, testCaller, int64(3), mock.MatchedBy(func(in ports.ItemInput) bool {
			return in.Title == "Milk" && in.Priority == "LOW" &&
				in.DueDate != nil && in.DueDate.Equal(due) &&
				in.Completed != nil && *in.Completed
		})).
		Return(milk(true), nil)

	body := `{"title":"Milk","priority":"LOW","due_date":"2026-03-01T09:00:00Z","completed":true}`
	rec := httptest.NewRecorder()
	handlers.NewItemHandler(svc).CreateItem(rec,
		itemRequest(t, http.MethodPost, "/api/v1/lists/3/items", body, map[string]string{handlers.ParamListID: "3"}))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ItemResponse](t, rec)
	if !resp.Completed || resp.ID != 7 {
		t.Errorf("response = %+v, want completed item 7", resp)
	}
}

func TestCreateItem_BadPriority(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoItemService(t)

	rec := httptest.NewRecorder()
	handlers.NewItemHandler(svc).CreateItem(rec,
		itemRequest(t, http.MethodPost, "/api/v1/lists/3/items", `{"title":"Milk","priority":"URGENT"}`,
			map[string]string{handlers.ParamListID: "3"}))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.priority" {
		t.Errorf("errors = %+v, want body.priority", resp.Errors)
	}
}

func TestGetItem_AuthorizationOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "list missing", err: &domain.NotFoundError{Entity: "todo list", ID: 3}, wantStatus: http.StatusNotFound},
		{name: "list not owned", err: domain.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "item missing", err: &domain.NotFoundError{Entity: "todo item", ID: 7}, wantStatus: http.StatusNotFound},
		{name: "item in another list", err: fmt.Errorf("item 7 is not in list 3: %w", domain.ErrConflict), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockTodoItemService(t)
			svc.EXPECT().GetTodoItem(mock.Anything, testCaller, int64(3), int64(7)).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			handlers.NewItemHandler(svc).GetItem(rec, itemRequest(t, http.MethodGet, "/api/v1/lists/3/items/7", "",
				map[string]string{handlers.ParamListID: "3", handlers.ParamItemID: "7"}))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestGetItem_InvalidItemID(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoItemService(t)

	rec := httptest.NewRecorder()
	handlers.NewItemHandler(svc).GetItem(rec, itemRequest(t, http.MethodGet, "/api/v1/lists/3/items/x", "",
		map[string]string{handlers.ParamListID: "3", handlers.ParamItemID: "x"}))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateItem_LeavesCompletionAlone(t *testing.T) {
	t.Parallel()

	var got ports.ItemInput
	svc := mocks.NewMockTodoItemService(t)
	svc.EXPECT().
		UpdateTodoItem(mock.Anything, testCaller, int64(3), int64(7), mock.Anything).
		RunAndReturn(func(_ context.Context, _, _, _ int64, in ports.ItemInput) (*todo.Item, error) {
			got = in
			return milk(false), nil
		})

	rec := httptest.NewRecorder()
	handlers.NewItemHandler(svc).UpdateItem(rec, itemRequest(t, http.MethodPut, "/api/v1/lists/3/items/7",
		`{"title":"Oat milk"}`, map[string]string{handlers.ParamListID: "3", handlers.ParamItemID: "7"}))

	requireStatus(t, rec, http.StatusOK)
	if got.Completed != nil {
		t.Errorf("Completed = %v, want nil when omitted", *got.Completed)
	}
	if got.Title != "Oat milk" {
		t.Errorf("Title = %q, want %q", got.Title, "Oat milk")
	}
}

func TestDeleteItem(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTodoItemService(t)
	svc.EXPECT().DeleteTodoItem(mock.Anything, testCaller, int64(3), int64(7)).Return(nil)

	rec := httptest.NewRecorder()
	handlers.NewItemHandler(svc).DeleteItem(rec, itemRequest(t, http.MethodDelete, "/api/v1/lists/3/items/7", "",
		map[string]string{handlers.ParamListID: "3", handlers.ParamItemID: "7"}))

	requireStatus(t, rec, http.StatusNoContent)
}
