package usecase

import (
	"context"

	"vitals/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase exposes session management built on stored refresh tokens.
type SessionUsecase interface {
	// GetActiveSessions retrieves all active sessions for a user.
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error)

	// RevokeSession revokes a specific session. The session must belong to
	// the requesting user.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// RevokeAllSessions revokes all sessions for a user.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error

	// CleanupExpiredSessions removes expired refresh tokens from storage.
	CleanupExpiredSessions(ctx context.Context) error
}
