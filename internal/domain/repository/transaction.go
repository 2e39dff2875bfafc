// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
// Use cases receive a factory inside TransactionManager.Execute so every
// repository call in the callback shares the same transaction.
type RepositoryFactory interface {
	// UserRepo returns a user repository bound to the transaction.
	UserRepo() UserRepository

	// RefreshTokenRepo returns a refresh token repository bound to the transaction.
	RefreshTokenRepo() RefreshTokenRepository

	// ConsentRepo returns a consent repository bound to the transaction.
	ConsentRepo() ConsentRepository

	// AuditRepo returns an audit repository bound to the transaction.
	AuditRepo() AuditRepository
}

// TransactionManager runs a unit of work inside a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
