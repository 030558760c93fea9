package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
)

const testCaller int64 = 1

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asCaller marks r as authenticated by testCaller.
func asCaller(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), testCaller))
}

func groceries(items ...*todo.Item) *todo.List {
	return todo.RestoreList(todo.ListSnapshot{
		ID:        3,
		UserID:    testCaller,
		Name:      "Groceries",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}, items)
}

func milk(completed bool) *todo.Item {
	return todo.RestoreItem(todo.ItemSnapshot{
		ID:        7,
		ListID:    3,
		OwnerID:   testCaller,
		Title:     "Milk",
		Completed: completed,
		Priority:  todo.PriorityLow,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	})
}

func alice() *user.User {
	return user.Restore(user.Snapshot{
		ID:           testCaller,
		Username:     "alice",
		PasswordHash: "$2a$04$abcdefghijklmnopqrstuu",
		Email:        "alice@example.com",
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
