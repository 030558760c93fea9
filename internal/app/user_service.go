package app

import (
	"context"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-todolist-service/internal/app/context"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/user"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService.
type UserService struct {
	uow    unitOfWork
	users  ports.UserRepository
	hasher user.PasswordHasher
}

// NewUserService creates a UserService. Account use cases raise no events,
// so there is no publisher.
func NewUserService(tx ports.Transactor, users ports.UserRepository, hasher user.PasswordHasher, logger *slog.Logger) *UserService {
	return &UserService{
		uow:    newUnitOfWork(tx, nil, logger),
		users:  users,
		hasher: hasher,
	}
}

// Register validates the input, checks that the username and email are
// free, and stores the new account with a hashed password.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*user.User, error) {
	s.uow.logger.InfoContext(ctx, "registering user", slog.String("username", in.Username))

	var created *user.User
	err := s.uow.run(ctx, "Register", func(rc *appctx.RequestContext) error {
		email, err := user.NewEmail(in.Email)
		if err != nil {
			return err
		}

		username := user.NormalizeUsername(in.Username)
		taken, err := s.users.ExistsByUsername(rc, username)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("username %q is taken: %w", username, domain.ErrConflict)
		}
		taken, err = s.users.ExistsByEmail(rc, email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("email is already registered: %w", domain.ErrConflict)
		}

		u, err := user.New(username, in.Password, email, s.hasher)
		if err != nil {
			return err
		}
		u.SetName(user.FullName{First: in.FirstName, Last: in.LastName})

		created = u
		return rc.AddAction(appctx.NewAction("save user", func(ctx context.Context) error {
			_, err := s.users.Save(ctx, u)
			return err
		}, nil))
	})
	if err != nil {
		s.uow.logFailure(ctx, "Register", err, slog.String("username", in.Username))
		return nil, err
	}
	return created, nil
}

// GetUser returns the caller's account.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*user.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.uow.logFailure(ctx, "GetUser", err, slog.Int64("user_id", userID))
		return nil, err
	}
	return u, nil
}

// DeleteUser removes the caller's account with all lists and items.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	s.uow.logger.InfoContext(ctx, "deleting user", slog.Int64("user_id", userID))

	err := s.uow.run(ctx, "DeleteUser", func(rc *appctx.RequestContext) error {
		u, err := appctx.GetOrFetch(rc, userKey(userID), func(ctx context.Context) (*user.User, error) {
			return s.users.FindByID(ctx, userID)
		})
		if err != nil {
			return err
		}
		return rc.AddAction(appctx.NewAction(fmt.Sprintf("delete user %d", userID), func(ctx context.Context) error {
			return s.users.Delete(ctx, u)
		}, nil))
	})
	if err != nil {
		s.uow.logFailure(ctx, "DeleteUser", err, slog.Int64("user_id", userID))
		return err
	}
	return nil
}
