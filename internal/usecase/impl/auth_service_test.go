package impl

import (
	"context"
	"testing"
	"time"

	"vitals/internal/domain/entity"
	"vitals/internal/domain/repository"
	"vitals/internal/domain/service"
	mockRepo "vitals/internal/mocks/repository"
	"vitals/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func allConsents() []entity.ConsentType {
	return []entity.ConsentType{entity.ConsentDataProcessing, entity.ConsentTermsOfService}
}

func TestAuthService_RegisterPatient_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed-password", nil)
	fx.tokens.EXPECT().GenerateAccessToken(userID, "patient", "alice@example.com").Return("access-token", nil)
	fx.tokens.EXPECT().GenerateRefreshToken(userID, "patient").Return("refresh-token", nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokens.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	var createdConsents []*entity.ConsentRecord

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockConsentRepo := mockRepo.NewMockConsentRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ConsentRepo().Return(mockConsentRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)
		mockConsentRepo.EXPECT().CreateConsent(ctx, mock.AnythingOfType("*entity.ConsentRecord")).
			Run(func(_ context.Context, record *entity.ConsentRecord) {
				createdConsents = append(createdConsents, record)
			}).
			Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(_ context.Context, token *entity.RefreshToken) {
				assert.Equal(t, userID, token.UserID)
				assert.Equal(t, "refresh-hash", token.TokenHash)
			}).
			Return(nil)
	})

	out, err := fx.service.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		Name:             "Alice",
		Email:            "alice@example.com",
		Password:         "s3cret-pass",
		Age:              34,
		AcceptedConsents: allConsents(),
		IPAddress:        "198.51.100.4",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, entity.RolePatient, out.User.Role)
	require.NotNil(t, out.User.PatientProfile)
	assert.Equal(t, 34, out.User.PatientProfile.Age)

	require.Len(t, createdConsents, 2)
	for _, record := range createdConsents {
		assert.True(t, record.Active())
		assert.Equal(t, testPolicyVersion, record.Version)
		assert.Equal(t, "registration", record.Method)
	}
}

func TestAuthService_RegisterProvider_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed-password", nil)
	fx.tokens.EXPECT().GenerateAccessToken(userID, "provider", "dr.bob@example.com").Return("access-token", nil)
	fx.tokens.EXPECT().GenerateRefreshToken(userID, "provider").Return("refresh-token", nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokens.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockConsentRepo := mockRepo.NewMockConsentRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ConsentRepo().Return(mockConsentRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, "dr.bob@example.com").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)
		mockConsentRepo.EXPECT().CreateConsent(ctx, mock.AnythingOfType("*entity.ConsentRecord")).Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	})

	out, err := fx.service.RegisterProvider(ctx, &usecase.RegisterProviderInput{
		Name:             "Dr. Bob",
		Email:            "dr.bob@example.com",
		Password:         "s3cret-pass",
		Specialty:        "cardiology",
		LicenseNumber:    "LIC-4521",
		AcceptedConsents: allConsents(),
		IPAddress:        "203.0.113.7",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleProvider, out.User.Role)
	require.NotNil(t, out.User.ProviderProfile)
	assert.Equal(t, "cardiology", out.User.ProviderProfile.Specialty)
	assert.Equal(t, "LIC-4521", out.User.ProviderProfile.LicenseNumber)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		Role:         entity.RolePatient,
		PasswordHash: "hashed-password",
	}

	fx.hasher.EXPECT().Check("s3cret-pass", "hashed-password").Return(true)
	fx.tokens.EXPECT().GenerateAccessToken(userID, "patient", "alice@example.com").Return("access-token", nil)
	fx.tokens.EXPECT().GenerateRefreshToken(userID, "patient").Return("refresh-token", nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokens.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	})

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", Role: entity.RolePatient}

	fx.tokens.EXPECT().ValidateRefreshToken("old-refresh").Return(&service.Claims{UserID: userID, Role: "patient", Type: "refresh"}, nil)
	fx.tokens.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.tokens.EXPECT().GenerateAccessToken(userID, "patient", "alice@example.com").Return("new-access", nil)
	fx.tokens.EXPECT().GenerateRefreshToken(userID, "patient").Return("new-refresh", nil)
	fx.tokens.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokens.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(_ context.Context, token *entity.RefreshToken) {
				assert.Equal(t, "new-hash", token.TokenHash)
			}).
			Return(nil)
	})

	out, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokens.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{}, nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-hash")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil)
	})

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestAuthService_Logout_AlreadyEndedSessionIsIdempotent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokens.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{}, nil)
	fx.tokens.EXPECT().HashToken("refresh-token").Return("refresh-hash")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(repository.ErrRefreshTokenNotFound)
	})

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestAuthService_LogoutAllDevices_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
	})

	err := fx.service.LogoutAllDevices(ctx, userID)

	require.NoError(t, err)
}
