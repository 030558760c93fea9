package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/password"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.userSvc.Register(ctx, ports.RegisterInput{
		Username:  "alice",
		Password:  "s3cret!",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Liddell",
	})
	if err != nil {
		t.Fatalf("Register() error = %v, want nil", err)
	}
	if u.ID() == 0 {
		t.Fatal("Register() returned user without id")
	}
	if u.DisplayName() != "Alice Liddell" {
		t.Errorf("DisplayName() = %q, want %q", u.DisplayName(), "Alice Liddell")
	}
	if u.PasswordHash() == "s3cret!" {
		t.Error("PasswordHash() holds the raw password")
	}
	if err := password.NewHasher(0).Compare(u.PasswordHash(), "s3cret!"); err != nil {
		t.Errorf("Compare(hash, raw) error = %v, want match", err)
	}

	padded, err := f.userSvc.Register(ctx, ports.RegisterInput{Username: "  bob ", Password: "s3cret!", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("Register(padded) error = %v, want nil", err)
	}
	if padded.Username() != "bob" {
		t.Errorf("Register(padded).Username() = %q, want %q", padded.Username(), "bob")
	}

	got, err := f.userSvc.GetUser(ctx, u.ID())
	if err != nil {
		t.Fatalf("GetUser() error = %v, want nil", err)
	}
	if got.Username() != "alice" || got.Email().String() != "alice@example.com" {
		t.Errorf("GetUser() = %s <%s>, want alice <alice@example.com>", got.Username(), got.Email())
	}
}

func TestUserService_Register_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      ports.RegisterInput
		wantErr error
	}{
		{
			name:    "username taken",
			in:      ports.RegisterInput{Username: "alice", Password: "s3cret!", Email: "other@example.com"},
			wantErr: domain.ErrConflict,
		},
		{
			name:    "username taken with surrounding spaces",
			in:      ports.RegisterInput{Username: " alice ", Password: "s3cret!", Email: "other@example.com"},
			wantErr: domain.ErrConflict,
		},
		{
			name:    "email taken ignoring case",
			in:      ports.RegisterInput{Username: "alicia", Password: "s3cret!", Email: "ALICE@example.com"},
			wantErr: domain.ErrConflict,
		},
		{
			name:    "malformed email",
			in:      ports.RegisterInput{Username: "carol", Password: "s3cret!", Email: "carol"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "short password",
			in:      ports.RegisterInput{Username: "carol", Password: "abc", Email: "carol@example.com"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "short username",
			in:      ports.RegisterInput{Username: "al", Password: "s3cret!", Email: "al@example.com"},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.register(t, "alice")

			if _, err := f.userSvc.Register(context.Background(), tt.in); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	if _, err := f.userSvc.GetUser(context.Background(), 404); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetUser(404) error = %v, want ErrNotFound", err)
	}
}

func TestUserService_DeleteUser_Cascades(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	alice := f.register(t, "alice")
	l := f.createList(t, alice, "Groceries")
	milk := f.createItem(t, alice, l, "Milk")

	if err := f.userSvc.DeleteUser(ctx, alice.ID()); err != nil {
		t.Fatalf("DeleteUser() error = %v, want nil", err)
	}

	if _, err := f.userSvc.GetUser(ctx, alice.ID()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetUser() after delete error = %v, want ErrNotFound", err)
	}
	if _, err := f.lists.FindByID(ctx, l.ID()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID(list) after delete error = %v, want ErrNotFound", err)
	}
	if _, err := f.items.FindByID(ctx, milk.ID()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID(item) after delete error = %v, want ErrNotFound", err)
	}

	if err := f.userSvc.DeleteUser(ctx, alice.ID()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteUser() twice error = %v, want ErrNotFound", err)
	}
}
