package usecase

import (
	"context"

	"vitals/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase exposes read access to the authenticated user's own account.
type UserUsecase interface {
	// GetProfile retrieves the user together with their role profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
