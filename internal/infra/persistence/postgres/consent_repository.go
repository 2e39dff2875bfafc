// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	"vitals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// consentRepository implements the repository.ConsentRepository interface.
type consentRepository struct {
	db *gorm.DB
}

// NewConsentRepository is the constructor for consentRepository.
func NewConsentRepository(db *gorm.DB) repository.ConsentRepository {
	return &consentRepository{
		db: db,
	}
}

// CreateConsent inserts a new consent record.
func (repo *consentRepository) CreateConsent(ctx context.Context, record *entity.ConsentRecord) error {
	recordM := fromConsentDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required consent information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create consent record")
	}

	record.ID = recordM.ID

	return nil
}

// RevokeActiveConsents stamps revokedAt and clears the granted flag on every
// active record of the given type for the user.
func (repo *consentRepository) RevokeActiveConsents(ctx context.Context, userID uuid.UUID, consentType entity.ConsentType, revokedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ConsentRecordModel{}).
		Where("user_id = ? AND consent_type = ? AND granted = ? AND revoked_at IS NULL", userID, consentType.String(), true).
		Updates(map[string]any{
			"granted":    false,
			"revoked_at": revokedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to revoke active consents")
	}

	return result.RowsAffected, nil
}

// HasActiveConsent reports whether the user currently holds an active grant of the given type.
func (repo *consentRepository) HasActiveConsent(ctx context.Context, userID uuid.UUID, consentType entity.ConsentType) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ConsentRecordModel{}).
		Where("user_id = ? AND consent_type = ? AND granted = ? AND revoked_at IS NULL", userID, consentType.String(), true).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count active consents")
	}

	return count > 0, nil
}

// ListConsentsByUserID returns the user's full consent history, newest first.
func (repo *consentRepository) ListConsentsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ConsentRecord, error) {
	var recordModels []*model.ConsentRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list consents by user")
	}

	records := make([]*entity.ConsentRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toConsentDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toConsentDomain converts a GORM ConsentRecordModel to a domain ConsentRecord entity.
func toConsentDomain(data *model.ConsentRecordModel) *entity.ConsentRecord {
	if data == nil {
		return nil
	}

	return &entity.ConsentRecord{
		ID:          data.ID,
		UserID:      data.UserID,
		ConsentType: entity.ConsentType(data.ConsentType),
		Version:     data.Version,
		Granted:     data.Granted,
		GrantedAt:   data.GrantedAt,
		RevokedAt:   data.RevokedAt,
		Method:      data.Method,
		IPAddress:   data.IPAddress,
	}
}

// fromConsentDomain converts a domain ConsentRecord entity to a GORM ConsentRecordModel.
func fromConsentDomain(data *entity.ConsentRecord) *model.ConsentRecordModel {
	if data == nil {
		return nil
	}

	return &model.ConsentRecordModel{
		ID:          data.ID,
		UserID:      data.UserID,
		ConsentType: data.ConsentType.String(),
		Version:     data.Version,
		Granted:     data.Granted,
		GrantedAt:   data.GrantedAt,
		RevokedAt:   data.RevokedAt,
		Method:      data.Method,
		IPAddress:   data.IPAddress,
	}
}
