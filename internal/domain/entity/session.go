package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionInfo is a read model describing one active session, derived from a
// stored refresh token. The token hash itself is never exposed.
type SessionInfo struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
	IsActive  bool
}
