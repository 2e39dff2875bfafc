// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vitals/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user identity persistence.
// Email lookups are case-insensitive: implementations normalize the email to
// lowercase before storing and querying.
type UserRepository interface {
	// Create persists a new user together with its role-specific profile.
	// A duplicate email surfaces as a conflict-class domain error.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user and its profile by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, matching case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user and its profile.
	Update(ctx context.Context, user *entity.User) error
}
