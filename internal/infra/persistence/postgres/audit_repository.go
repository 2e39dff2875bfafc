// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	"vitals/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// auditRepository implements the repository.AuditRepository interface.
// The audit log is append-only; no update or delete methods exist.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// CreateAuditEntry appends a single entry to the audit log.
func (repo *auditRepository) CreateAuditEntry(ctx context.Context, entry *entity.AuditEntry) error {
	entryM := fromAuditDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit entry")
	}

	entry.ID = entryM.ID

	return nil
}

// --- Mapper Functions ---

// fromAuditDomain converts a domain AuditEntry entity to a GORM AuditEntryModel.
func fromAuditDomain(data *entity.AuditEntry) *model.AuditEntryModel {
	if data == nil {
		return nil
	}

	return &model.AuditEntryModel{
		ID:           data.ID,
		UserID:       data.UserID,
		UserEmail:    data.UserEmail,
		UserRole:     data.UserRole,
		Action:       data.Action.String(),
		ResourceType: data.ResourceType,
		ResourceID:   data.ResourceID,
		Method:       data.Method,
		Endpoint:     data.Endpoint,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		Details:      data.Details,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		Timestamp:    data.Timestamp,
	}
}
