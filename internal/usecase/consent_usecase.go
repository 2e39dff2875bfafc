package usecase

import (
	"context"

	"vitals/internal/domain/entity"

	"github.com/google/uuid"
)

// GrantConsentInput defines the data required to grant a consent.
type GrantConsentInput struct {
	UserID      uuid.UUID
	ConsentType entity.ConsentType
	IPAddress   string
}

// RevokeConsentInput defines the data required to revoke a consent.
type RevokeConsentInput struct {
	UserID      uuid.UUID
	ConsentType entity.ConsentType
	IPAddress   string
}

// ConsentUsecase manages the append-only consent ledger. Granting supersedes
// any previous active grant of the same type; revoking stamps the active
// grant rather than deleting it, so history is never lost.
type ConsentUsecase interface {
	// GrantConsent records a new active grant, revoking any previous active
	// grant of the same type first.
	GrantConsent(ctx context.Context, input *GrantConsentInput) (*entity.ConsentRecord, error)

	// RevokeConsent revokes the user's active grant of the given type.
	RevokeConsent(ctx context.Context, input *RevokeConsentInput) error

	// HasActiveConsent reports whether the user currently holds an active
	// grant of the given type.
	HasActiveConsent(ctx context.Context, userID uuid.UUID, consentType entity.ConsentType) (bool, error)

	// ListConsents returns the user's full consent history, newest first.
	ListConsents(ctx context.Context, userID uuid.UUID) ([]*entity.ConsentRecord, error)
}
