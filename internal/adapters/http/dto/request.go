package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// ListRequest is the JSON body for creating or replacing a todo list.
type ListRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
// Length limits are left to the domain.
func (r *ListRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Input converts the request to the service input.
func (r *ListRequest) Input() ports.ListInput {
	return ports.ListInput{Name: r.Name, Description: r.Description}
}

// ItemRequest is the JSON body for creating or replacing a todo item.
// Completed is optional; leaving it out of an update keeps the item's
// current state.
type ItemRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// Validate checks the title and, when given, the priority.
func (r *ItemRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if _, err := todo.ParsePriority(r.Priority); err != nil {
		fields["priority"] = "must be one of LOW, MEDIUM, HIGH"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Input converts the request to the service input.
func (r *ItemRequest) Input() ports.ItemInput {
	return ports.ItemInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
	}
}

// RegisterRequest is the JSON body for creating an account.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Validate checks that the credentials and email are present. Format and
// length rules are the domain's.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Input converts the request to the service input.
func (r *RegisterRequest) Input() ports.RegisterInput {
	return ports.RegisterInput{
		Username:  r.Username,
		Password:  r.Password,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}
