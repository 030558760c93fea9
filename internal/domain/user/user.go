// Package user holds the User aggregate and its value objects.
package user

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
)

// Credential limits, counted in characters.
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// PasswordHasher turns a raw password into its stored representation.
type PasswordHasher interface {
	Hash(raw string) (string, error)
}

// User owns todo lists. Its password is only ever held hashed.
type User struct {
	id           int64
	username     string
	passwordHash string
	email        Email
	name         FullName
	lists        []*todo.List
	createdAt    time.Time
	updatedAt    time.Time
}

// NormalizeUsername is the stored form of a username: surrounding
// whitespace is dropped, case is kept.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// New registers a user from a raw password. The password is length-checked
// before it is hashed.
func New(username, rawPassword string, email Email, hasher PasswordHasher) (*User, error) {
	username = NormalizeUsername(username)
	errs := map[string]string{}
	if msg := checkUsername(username); msg != "" {
		errs["username"] = msg
	}
	if msg := checkPassword(rawPassword); msg != "" {
		errs["password"] = msg
	}
	if email.IsZero() {
		errs["email"] = domain.MsgRequired
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	hash, err := hasher.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return newUser(username, hash, email), nil
}

// NewWithPasswordHash builds a user from an already hashed password. The
// hash is not length-checked.
func NewWithPasswordHash(username, passwordHash string, email Email) (*User, error) {
	username = NormalizeUsername(username)
	errs := map[string]string{}
	if msg := checkUsername(username); msg != "" {
		errs["username"] = msg
	}
	if passwordHash == "" {
		errs["password"] = domain.MsgRequired
	}
	if email.IsZero() {
		errs["email"] = domain.MsgRequired
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}
	return newUser(username, passwordHash, email), nil
}

func newUser(username, hash string, email Email) *User {
	ts := time.Now().UTC()
	return &User{
		username:     username,
		passwordHash: hash,
		email:        email,
		createdAt:    ts,
		updatedAt:    ts,
	}
}

func (u *User) ID() int64 { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Email() Email { return u.email }
func (u *User) Name() FullName { return u.name }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// DisplayName is the full name when one is set, otherwise the username.
func (u *User) DisplayName() string {
	if s := u.name.String(); s != "" {
		return s
	}
	return u.username
}

// SetUsername replaces the username with its normalized form.
func (u *User) SetUsername(username string) error {
	username = NormalizeUsername(username)
	if msg := checkUsername(username); msg != "" {
		return domain.NewValidationError("username", msg)
	}
	u.username = username
	u.touch()
	return nil
}

// SetPassword length-checks raw and stores its hash.
func (u *User) SetPassword(raw string, hasher PasswordHasher) error {
	if msg := checkPassword(raw); msg != "" {
		return domain.NewValidationError("password", msg)
	}
	hash, err := hasher.Hash(raw)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

// SetPasswordHash stores an already hashed password as-is.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return domain.NewValidationError("password", domain.MsgRequired)
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

// SetEmail replaces the address. The zero Email is rejected.
func (u *User) SetEmail(email Email) error {
	if email.IsZero() {
		return domain.NewValidationError("email", domain.MsgRequired)
	}
	u.email = email
	u.touch()
	return nil
}

// SetName replaces the full name.
func (u *User) SetName(name FullName) {
	u.name = name
	u.touch()
}

// AddList makes the user the owner of list.
func (u *User) AddList(list *todo.List) error {
	if list == nil {
		return domain.NewValidationError("list", domain.MsgRequired)
	}
	if err := list.AttachOwner(u.id); err != nil {
		return err
	}
	if u.indexOf(list) < 0 {
		u.lists = append(u.lists, list)
	}
	u.touch()
	return nil
}

// RemoveList releases list and clears its owner reference.
func (u *User) RemoveList(list *todo.List) error {
	if list == nil {
		return domain.NewValidationError("list", domain.MsgRequired)
	}
	idx := u.indexOf(list)
	if idx < 0 && !list.OwnedBy(u.id) {
		return fmt.Errorf("list %d is not owned by user %d: %w", list.ID(), u.id, domain.ErrConflict)
	}
	if idx >= 0 {
		u.lists = append(u.lists[:idx], u.lists[idx+1:]...)
	}
	list.DetachOwner()
	u.touch()
	return nil
}

// Lists returns the owned lists that are loaded into this aggregate.
func (u *User) Lists() []*todo.List {
	out := make([]*todo.List, len(u.lists))
	copy(out, u.lists)
	return out
}

// AssignID records the store-assigned identity of a new user and propagates
// it to loaded lists. It has no effect once the user has an id.
func (u *User) AssignID(id int64) error {
	if u.id != 0 {
		return nil
	}
	u.id = id
	for _, l := range u.lists {
		l.DetachOwner()
		if err := l.AttachOwner(id); err != nil {
			return fmt.Errorf("assigning user %d to list %d: %w", id, l.ID(), err)
		}
	}
	return nil
}

func (u *User) indexOf(list *todo.List) int {
	for i, l := range u.lists {
		if l == list || (l.ID() != 0 && l.ID() == list.ID()) {
			return i
		}
	}
	return -1
}

func (u *User) touch() {
	ts := time.Now().UTC()
	if ts.Before(u.updatedAt) {
		ts = u.updatedAt
	}
	u.updatedAt = ts
}

func checkUsername(username string) string {
	if username == "" {
		return domain.MsgMustNotBlank
	}
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return fmt.Sprintf("must be at least %d characters", MinUsernameLength)
	}
	return ""
}

func checkPassword(raw string) string {
	if raw == "" {
		return domain.MsgRequired
	}
	if utf8.RuneCountInString(raw) < MinPasswordLength {
		return fmt.Sprintf("must be at least %d characters", MinPasswordLength)
	}
	return ""
}

// Snapshot is the flat persisted form of a User, without its lists.
type Snapshot struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Snapshot returns the user's own fields.
func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:           u.id,
		Username:     u.username,
		PasswordHash: u.passwordHash,
		Email:        u.email.String(),
		FirstName:    u.name.First,
		LastName:     u.name.Last,
		CreatedAt:    u.createdAt,
		UpdatedAt:    u.updatedAt,
	}
}

// Restore rebuilds a user from stored state without re-running validation.
func Restore(s Snapshot) *User {
	return &User{
		id:           s.ID,
		username:     s.Username,
		passwordHash: s.PasswordHash,
		email:        Email{address: s.Email},
		name:         FullName{First: s.FirstName, Last: s.LastName},
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}
}
