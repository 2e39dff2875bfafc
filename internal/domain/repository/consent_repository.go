// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"vitals/internal/domain/entity"

	"github.com/google/uuid"
)

// ConsentRepository persists the versioned consent ledger. Records are never
// hard-deleted; superseding or revoking a grant stamps RevokedAt on it.
type ConsentRepository interface {
	// CreateConsent inserts a new consent record.
	CreateConsent(ctx context.Context, record *entity.ConsentRecord) error

	// RevokeActiveConsents stamps revokedAt and clears the granted flag on every
	// active record of the given type for the user. Returns the number of rows
	// closed; zero is not an error.
	RevokeActiveConsents(ctx context.Context, userID uuid.UUID, consentType entity.ConsentType, revokedAt time.Time) (int64, error)

	// HasActiveConsent reports whether the user currently holds an active grant
	// of the given type.
	HasActiveConsent(ctx context.Context, userID uuid.UUID, consentType entity.ConsentType) (bool, error)

	// ListConsentsByUserID returns the user's full consent history, newest first.
	ListConsentsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ConsentRecord, error)
}
