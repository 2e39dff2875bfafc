package impl

import (
	"context"
	"testing"
	"time"

	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	mockRepo "vitals/internal/mocks/repository"
	"vitals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsentService_GrantConsent_SupersedesPreviousGrant(t *testing.T) {
	fx := createTestConsentService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", Role: entity.RolePatient}

	var auditEntry *entity.AuditEntry

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockConsentRepo := mockRepo.NewMockConsentRepository(t)
		mockAuditRepo := mockRepo.NewMockAuditRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ConsentRepo().Return(mockConsentRepo)
		factory.EXPECT().AuditRepo().Return(mockAuditRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		// One earlier grant of the same type gets stamped revoked.
		mockConsentRepo.EXPECT().
			RevokeActiveConsents(ctx, userID, entity.ConsentHealthDataSharing, mock.AnythingOfType("time.Time")).
			Return(1, nil)
		mockConsentRepo.EXPECT().CreateConsent(ctx, mock.AnythingOfType("*entity.ConsentRecord")).Return(nil)
		mockAuditRepo.EXPECT().CreateAuditEntry(ctx, mock.AnythingOfType("*entity.AuditEntry")).
			Run(func(_ context.Context, entry *entity.AuditEntry) {
				auditEntry = entry
			}).
			Return(nil)
	})

	record, err := fx.service.GrantConsent(ctx, &usecase.GrantConsentInput{
		UserID:      userID,
		ConsentType: entity.ConsentHealthDataSharing,
		IPAddress:   "198.51.100.4",
	})

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.Active())
	assert.Equal(t, testPolicyVersion, record.Version)
	assert.Equal(t, "settings", record.Method)

	require.NotNil(t, auditEntry)
	assert.Equal(t, entity.AuditActionConsentGranted, auditEntry.Action)
	assert.Equal(t, "consent", auditEntry.ResourceType)
	require.NotNil(t, auditEntry.UserID)
	assert.Equal(t, userID, *auditEntry.UserID)
	assert.True(t, auditEntry.Success)
}

func TestConsentService_GrantConsent_UnknownType(t *testing.T) {
	fx := createTestConsentService(t)

	ctx := context.Background()

	record, err := fx.service.GrantConsent(ctx, &usecase.GrantConsentInput{
		UserID:      uuid.New(),
		ConsentType: entity.ConsentType("marketing_email"),
	})

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestConsentService_GrantConsent_UserNotFound(t *testing.T) {
	fx := createTestConsentService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ConsentRepo().Return(mockRepo.NewMockConsentRepository(t))
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	record, err := fx.service.GrantConsent(ctx, &usecase.GrantConsentInput{
		UserID:      userID,
		ConsentType: entity.ConsentHealthDataSharing,
	})

	require.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestConsentService_RevokeConsent_Success(t *testing.T) {
	fx := createTestConsentService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", Role: entity.RolePatient}

	var auditEntry *entity.AuditEntry

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockConsentRepo := mockRepo.NewMockConsentRepository(t)
		mockAuditRepo := mockRepo.NewMockAuditRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ConsentRepo().Return(mockConsentRepo)
		factory.EXPECT().AuditRepo().Return(mockAuditRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockConsentRepo.EXPECT().
			RevokeActiveConsents(ctx, userID, entity.ConsentHealthDataSharing, mock.AnythingOfType("time.Time")).
			Return(1, nil)
		mockAuditRepo.EXPECT().CreateAuditEntry(ctx, mock.AnythingOfType("*entity.AuditEntry")).
			Run(func(_ context.Context, entry *entity.AuditEntry) {
				auditEntry = entry
			}).
			Return(nil)
	})

	err := fx.service.RevokeConsent(ctx, &usecase.RevokeConsentInput{
		UserID:      userID,
		ConsentType: entity.ConsentHealthDataSharing,
		IPAddress:   "198.51.100.4",
	})

	require.NoError(t, err)
	require.NotNil(t, auditEntry)
	assert.Equal(t, entity.AuditActionConsentRevoked, auditEntry.Action)
}

func TestConsentService_RevokeConsent_NoActiveGrant(t *testing.T) {
	fx := createTestConsentService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockConsentRepo := mockRepo.NewMockConsentRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ConsentRepo().Return(mockConsentRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockConsentRepo.EXPECT().
			RevokeActiveConsents(ctx, userID, entity.ConsentHealthDataSharing, mock.AnythingOfType("time.Time")).
			Return(0, nil)
	})

	err := fx.service.RevokeConsent(ctx, &usecase.RevokeConsentInput{
		UserID:      userID,
		ConsentType: entity.ConsentHealthDataSharing,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestConsentService_HasActiveConsent(t *testing.T) {
	fx := createTestConsentService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockConsentRepo := mockRepo.NewMockConsentRepository(t)
		factory.EXPECT().ConsentRepo().Return(mockConsentRepo)
		mockConsentRepo.EXPECT().HasActiveConsent(ctx, userID, entity.ConsentDataProcessing).Return(true, nil)
	})

	active, err := fx.service.HasActiveConsent(ctx, userID, entity.ConsentDataProcessing)

	require.NoError(t, err)
	assert.True(t, active)
}

func TestConsentService_ListConsents_ReturnsHistory(t *testing.T) {
	fx := createTestConsentService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	revokedAt := time.Now().Add(-time.Hour)
	history := []*entity.ConsentRecord{
		{ID: uuid.New(), UserID: userID, ConsentType: entity.ConsentHealthDataSharing, Granted: true},
		{ID: uuid.New(), UserID: userID, ConsentType: entity.ConsentHealthDataSharing, Granted: false, RevokedAt: &revokedAt},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockConsentRepo := mockRepo.NewMockConsentRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ConsentRepo().Return(mockConsentRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockConsentRepo.EXPECT().ListConsentsByUserID(ctx, userID).Return(history, nil)
	})

	records, err := fx.service.ListConsents(ctx, userID)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].Active())
	assert.False(t, records[1].Active())
}
