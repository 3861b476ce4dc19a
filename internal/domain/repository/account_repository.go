package repository

import (
	"context"
	"errors"

	"recipes/internal/domain/entity"
)

var (
	// ErrAccountNotFound is the internal signal for an unknown email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned by Create when the email is taken.
	ErrAccountAlreadyExists = errors.New("account already exists")
)

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	// Exists reports whether an account is registered under email.
	Exists(ctx context.Context, email string) (bool, error)

	// FindByEmail retrieves an account by its exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error
}
