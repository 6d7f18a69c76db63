// Package auth provides the admin authentication services: bcrypt
// password verification and HMAC-signed JWT issuance and validation.
package auth

import "errors"

// Authentication errors.
var (
	// ErrInvalidToken is returned when a token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's not-before time
	// is in the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")

	// ErrWrongTokenType is returned when a token is used in a context
	// it was not issued for.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidCredentials is returned when the admin password does
	// not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
