package todo

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// Priority ranks a todo item. The zero value is not a valid priority;
// SetPriority maps it to PriorityMedium.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority converts user input to a Priority, ignoring case and
// surrounding whitespace. An empty string yields PriorityMedium.
func ParsePriority(raw string) (Priority, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", domain.NewValidationError("priority", fmt.Sprintf("invalid: %q", raw))
	}
	return p, nil
}
