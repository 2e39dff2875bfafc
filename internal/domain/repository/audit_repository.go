// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vitals/internal/domain/entity"
)

// AuditRepository appends immutable audit entries. There are intentionally no
// update or delete operations; the table is an append-only ledger of PHI and
// security-relevant access.
type AuditRepository interface {
	// CreateAuditEntry appends one audit entry.
	CreateAuditEntry(ctx context.Context, entry *entity.AuditEntry) error
}
