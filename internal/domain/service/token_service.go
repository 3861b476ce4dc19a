package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens for authenticated accounts.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the account email.
	GenerateAccessToken(email string) (string, error)

	// ValidateToken parses a token string and returns its claims when the signature and expiry are valid.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns how long issued access tokens stay valid.
	AccessTokenTTL() time.Duration
}
