// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	"vitals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user together with its role-specific profile.
// The email is lowercased before insert so the unique index enforces
// case-insensitive uniqueness.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.Email = strings.ToLower(userM.Email)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.PatientProfile != nil {
		user.PatientProfile.UserID = userM.ID
	}
	if user.ProviderProfile != nil {
		user.ProviderProfile.UserID = userM.ID
	}

	return nil
}

// FindByID retrieves a user and its profile by unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("PatientProfile").
		Preload("ProviderProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email, matching case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("PatientProfile").
		Preload("ProviderProfile").
		Where("email = ?", strings.ToLower(email)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Update persists changes to an existing user and its profile.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.Email = strings.ToLower(userM.Email)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.PatientProfile != nil {
		user.PatientProfile = &entity.PatientProfile{
			UserID:    data.PatientProfile.UserID,
			Age:       data.PatientProfile.Age,
			UpdatedAt: data.PatientProfile.UpdatedAt,
		}
	}
	if data.ProviderProfile != nil {
		user.ProviderProfile = &entity.ProviderProfile{
			UserID:        data.ProviderProfile.UserID,
			Specialty:     data.ProviderProfile.Specialty,
			LicenseNumber: data.ProviderProfile.LicenseNumber,
			UpdatedAt:     data.ProviderProfile.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.PatientProfile != nil {
		userM.PatientProfile = &model.PatientProfileModel{
			UserID:    data.PatientProfile.UserID,
			Age:       data.PatientProfile.Age,
			UpdatedAt: data.PatientProfile.UpdatedAt,
		}
	}
	if data.ProviderProfile != nil {
		userM.ProviderProfile = &model.ProviderProfileModel{
			UserID:        data.ProviderProfile.UserID,
			Specialty:     data.ProviderProfile.Specialty,
			LicenseNumber: data.ProviderProfile.LicenseNumber,
			UpdatedAt:     data.ProviderProfile.UpdatedAt,
		}
	}

	return userM
}
