package user

import (
	"regexp"
	"strings"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a validated e-mail address. Comparison ignores case.
type Email struct {
	address string
}

// NewEmail validates raw and returns it as an Email. Surrounding whitespace
// is trimmed.
func NewEmail(raw string) (Email, error) {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return Email{}, domain.NewValidationError("email", domain.MsgRequired)
	}
	if !emailPattern.MatchString(addr) {
		return Email{}, domain.NewValidationError("email", "must be a valid e-mail address")
	}
	return Email{address: addr}, nil
}

// MustEmail is NewEmail for literals known to be valid. It panics otherwise.
func MustEmail(raw string) Email {
	e, err := NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the address as entered.
func (e Email) String() string { return e.address }

// IsZero reports whether e is the zero Email.
func (e Email) IsZero() bool { return e.address == "" }

// Normalized returns the lower-cased address used for uniqueness checks.
func (e Email) Normalized() string { return strings.ToLower(e.address) }

// Equal compares two addresses case-insensitively.
func (e Email) Equal(other Email) bool {
	return strings.EqualFold(e.address, other.address)
}

// Compare orders addresses case-insensitively. It returns -1, 0 or +1.
func (e Email) Compare(other Email) int {
	return strings.Compare(e.Normalized(), other.Normalized())
}
