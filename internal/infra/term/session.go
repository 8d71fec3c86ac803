package term

import (
	"context"
	"errors"

	"fleetdesk/internal/domain/user"
)

// Run drives the login loop until input is exhausted. A known email signs
// straight in; administrators answer one password prompt; an unseen email
// becomes a new customer account.
func (m *Menus) Run(ctx context.Context) error {
	for {
		email, ok := m.Term.Prompt("Enter your email (Ctrl-D to quit): ")
		if !ok {
			m.Term.Printf("\nGoodbye.\n")
			return nil
		}
		if email == "" {
			continue
		}

		account, err := m.Auth.Lookup(ctx, email)
		switch {
		case errors.Is(err, user.ErrNotFound):
			account, err = m.Auth.Register(ctx, email)
			if err != nil {
				m.Term.Printf("Error: %v\n", err)
				continue
			}
			m.Term.Printf("Welcome! A customer account was created for %s.\n", account.Email)
		case err != nil:
			m.Term.Printf("Error: %v\n", err)
			continue
		}

		if account.IsAdmin() {
			password, ok := m.Term.Prompt("Enter your password: ")
			if !ok {
				return nil
			}
			// Single attempt.
			if err := m.Auth.VerifyPassword(account, password); err != nil {
				m.Term.Printf("Incorrect password.\n")
				continue
			}
			m.adminMenu(ctx)
			continue
		}
		m.clientMenu(ctx, account)
	}
}
