// Package auth implements the login flow: a known email signs straight in,
// an unknown one is registered as a customer, and administrators answer a
// single password prompt.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"fleetdesk/internal/domain/user"
)

type Service struct {
	Users  user.Repository
	Logger *slog.Logger
}

// Lookup resolves an email to its account, or user.ErrNotFound.
func (s *Service) Lookup(ctx context.Context, email string) (user.User, error) {
	users, err := s.Users.LoadAll(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("load users: %w", err)
	}
	return user.FindByEmail(email, users)
}

// Register creates a customer account for an unseen email and persists the
// collection. First-login auto-registration; administrators are provisioned
// out of band.
func (s *Service) Register(ctx context.Context, email string) (user.User, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return user.User{}, user.ErrEmailRequired
	}
	users, err := s.Users.LoadAll(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("load users: %w", err)
	}
	if existing, err := user.FindByEmail(email, users); err == nil {
		return existing, nil
	}
	account := user.User{Email: email, Role: user.RoleCustomer}
	users = append(users, account)
	if err := s.Users.SaveAll(ctx, users); err != nil {
		return user.User{}, fmt.Errorf("save users: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("customer registered", slog.String("email", email))
	}
	return account, nil
}

// VerifyPassword compares the admin's stored password in plaintext.
// Callers get one attempt, no retry loop, no lockout.
func (s *Service) VerifyPassword(account user.User, password string) error {
	if account.Password != password {
		return user.ErrBadPassword
	}
	return nil
}
