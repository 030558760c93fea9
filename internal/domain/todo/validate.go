package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// Field limits, counted in characters.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
	MaxListNameLength    = 255
)

// Each check returns an empty string when the value is acceptable, otherwise
// the field message. Constructors collect them into one ValidationError;
// setters report the single failing field.

func checkTitle(title string) string {
	return checkName(title, MaxTitleLength)
}

func checkListName(name string) string {
	return checkName(name, MaxListNameLength)
}

func checkName(v string, limit int) string {
	if strings.TrimSpace(v) == "" {
		return domain.MsgMustNotBlank
	}
	if utf8.RuneCountInString(v) > limit {
		return fmt.Sprintf("must be at most %d characters", limit)
	}
	return ""
}

func checkDescription(v string) string {
	if utf8.RuneCountInString(v) > MaxDescriptionLength {
		return fmt.Sprintf("must be at most %d characters", MaxDescriptionLength)
	}
	return ""
}

func checkPriority(p Priority) string {
	if p != "" && !p.IsValid() {
		return fmt.Sprintf("invalid: %q", p)
	}
	return ""
}

// fieldErrors accumulates failing checks keyed by field name.
type fieldErrors map[string]string

func (f fieldErrors) check(field, msg string) {
	if msg != "" {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: f}
}

func singleField(field, msg string) error {
	if msg == "" {
		return nil
	}
	return domain.NewValidationError(field, msg)
}

func now() time.Time {
	return time.Now().UTC()
}
