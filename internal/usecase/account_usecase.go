package usecase

import (
	"context"

	"recipes/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the issued bearer token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
}

// AccountUsecase defines registration and credential checks.
type AccountUsecase interface {
	// Register creates an account after checking email shape, password strength and uniqueness.
	Register(ctx context.Context, input *RegisterInput) error

	// LoadCredentials resolves an email to the stored account.
	// Returns repository.ErrAccountNotFound for unknown emails.
	LoadCredentials(ctx context.Context, email string) (*entity.Account, error)

	// Authenticate verifies a password and returns the caller identity (email).
	// Unknown email and wrong password are indistinguishable to the caller.
	Authenticate(ctx context.Context, email, password string) (string, error)

	// Login authenticates and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
