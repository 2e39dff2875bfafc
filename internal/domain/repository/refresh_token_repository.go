// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vitals/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository manages the per-user set of live refresh tokens.
// Each row is one session; rotation and revocation are row deletions.
//
// DeleteRefreshTokenByHash doubles as the rotation consume step: it reports
// ErrRefreshTokenNotFound when no row was deleted, which is how a concurrent
// rotation loser (or a replayed token) is detected. The hash column is unique,
// so at most one caller can win the delete for a given token.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindRefreshTokenByID retrieves a refresh token record by its unique ID.
	FindRefreshTokenByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error)

	// FindRefreshTokensByUserID retrieves all unexpired refresh tokens for a user,
	// newest first. This backs the active-sessions listing.
	FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// DeleteRefreshToken removes a refresh token by its ID, ending that session.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokenByHash removes the refresh token with the given hash.
	// Returns ErrRefreshTokenNotFound when no row matched.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID removes all refresh tokens for a user
	// (logout-everywhere).
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes all expired refresh tokens.
	// Intended for periodic cleanup.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}
