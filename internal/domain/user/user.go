// Package user holds the account records: administrators with a password,
// customers identified by email alone.
package user

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrEmailRequired = errors.New("user: email is required")
	ErrBadPassword   = errors.New("user: incorrect password")
	ErrNotFound      = errors.New("user: not found")
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is one account record. Password is set for administrators only and
// compared in plaintext; hashing is an explicit non-goal of this tool.
type User struct {
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Repository persists the user collection wholesale.
type Repository interface {
	LoadAll(ctx context.Context) ([]User, error)
	SaveAll(ctx context.Context, items []User) error
}

// FindByEmail scans the collection for a matching normalized email.
func FindByEmail(email string, users []User) (User, error) {
	email = NormalizeEmail(email)
	for _, u := range users {
		if NormalizeEmail(u.Email) == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}
