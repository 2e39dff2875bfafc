// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Role   string
	Email  string // Only present on access tokens.
	Type   string // "access" or "refresh".
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Access and refresh tokens are signed with different secrets so leaking one
// cannot forge the other. Validation folds every failure mode (bad signature,
// malformed token, expiry, wrong type) into a single invalid-token error.
type TokenService interface {
	// GenerateAccessToken creates a short-lived access token embedding the
	// user's identity and role for stateless authorization.
	GenerateAccessToken(userID uuid.UUID, role, email string) (string, error)

	// GenerateRefreshToken creates a longer-lived refresh token embedding only
	// the subject and role.
	GenerateRefreshToken(userID uuid.UUID, role string) (string, error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken derives the storage hash for a raw refresh token.
	HashToken(tokenString string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
