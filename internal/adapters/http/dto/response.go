// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
)

// ListResponse represents a single todo list with its items.
type ListResponse struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Items          []ItemResponse `json:"items"`
	TotalItems     int            `json:"total_items"`
	CompletedItems int            `json:"completed_items"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

// ListsResponse represents the caller's lists.
type ListsResponse struct {
	Lists []ListResponse `json:"lists"`
	Count int            `json:"count"`
}

// ToListResponse converts a domain list to an HTTP response DTO.
func ToListResponse(l *todo.List) ListResponse {
	items := l.Items()
	resp := ListResponse{
		ID:             l.ID(),
		Name:           l.Name(),
		Description:    l.Description(),
		Items:          make([]ItemResponse, len(items)),
		TotalItems:     l.TotalItemsCount(),
		CompletedItems: l.CompletedItemsCount(),
		CreatedAt:      formatTime(l.CreatedAt()),
		UpdatedAt:      formatTime(l.UpdatedAt()),
	}
	for i, it := range items {
		resp.Items[i] = ToItemResponse(it)
	}
	return resp
}

// ToListsResponse converts domain lists to an HTTP response DTO.
func ToListsResponse(lists []*todo.List) ListsResponse {
	out := make([]ListResponse, len(lists))
	for i, l := range lists {
		out[i] = ToListResponse(l)
	}
	return ListsResponse{Lists: out, Count: len(out)}
}

// ItemResponse represents a single todo item.
type ItemResponse struct {
	ID          int64   `json:"id"`
	ListID      int64   `json:"list_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ItemsResponse represents the items of one list.
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count"`
}

// ToItemResponse converts a domain item to an HTTP response DTO.
func ToItemResponse(it *todo.Item) ItemResponse {
	resp := ItemResponse{
		ID:          it.ID(),
		ListID:      it.ListID(),
		Title:       it.Title(),
		Description: it.Description(),
		Completed:   it.Completed(),
		Priority:    it.Priority().String(),
		CreatedAt:   formatTime(it.CreatedAt()),
		UpdatedAt:   formatTime(it.UpdatedAt()),
	}
	if due := it.DueDate(); due != nil {
		s := formatTime(*due)
		resp.DueDate = &s
	}
	return resp
}

// ToItemsResponse converts domain items to an HTTP response DTO.
func ToItemsResponse(items []*todo.Item) ItemsResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ToItemResponse(it)
	}
	return ItemsResponse{Items: out, Count: len(out)}
}

// UserResponse represents an account. The password hash is never exposed.
type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

// ToUserResponse converts a domain user to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email().String(),
		FirstName:   u.Name().First,
		LastName:    u.Name().Last,
		DisplayName: u.DisplayName(),
		CreatedAt:   formatTime(u.CreatedAt()),
	}
}

// StatsResponse reports the caller's completion count next to the count
// across all users.
type StatsResponse struct {
	UserID              int64 `json:"user_id"`
	CompletedItems      int64 `json:"completed_items"`
	TotalCompletedItems int64 `json:"total_completed_items"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
