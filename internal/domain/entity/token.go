// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents one live session on one device. A user may hold any
// number of concurrent sessions; each row is a member of that user's live
// token set. The raw token never touches the database, only its SHA-256 hash.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links the session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid regardless of rotation.
	CreatedAt time.Time // When the session was established.
}
