package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the admin
	// subject. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context) (string, error)

	// ValidateToken validates the provided access token string and
	// extracts the claims. Returns an error if validation fails
	// (expired, invalid signature, wrong type, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated claims of an access token.
type Claims struct {
	// Subject identifies who the token was issued for.
	Subject string

	// TokenType indicates the purpose of the token. Only "access"
	// tokens exist today; the field guards against future misuse.
	TokenType string

	// IssuedAt and ExpiresAt bound the token's validity window.
	IssuedAt  time.Time
	ExpiresAt time.Time

	// ID is the unique token identifier.
	ID string
}
