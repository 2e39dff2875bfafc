package impl

import (
	"context"
	"testing"
	"time"

	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	mockRepo "vitals/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_GetActiveSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	tokens := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now().Add(-time.Hour), ExpiresAt: time.Now().Add(2 * time.Hour)},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(tokens, nil)
	})

	sessions, err := fx.service.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, tokens[0].ID, sessions[0].ID)
	assert.True(t, sessions[0].IsActive)
}

func TestSessionService_GetActiveSessions_UserNotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRepo.NewMockRefreshTokenRepository(t))
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	sessions, err := fx.service.GetActiveSessions(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, sessions)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	token := &entity.RefreshToken{ID: sessionID, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(token, nil)
		mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, sessionID).Return(nil)
	})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_RevokeSession_OwnerMismatch(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	token := &entity.RefreshToken{ID: sessionID, UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(token, nil)
	})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSessionService_RevokeSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(nil, repository.ErrRefreshTokenNotFound)
	})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSessionService_RevokeAllSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
	})

	err := fx.service.RevokeAllSessions(ctx, userID)

	require.NoError(t, err)
}

func TestSessionService_CleanupExpiredSessions_Error(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	dbError := errors.New("database connection failed")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(dbError)
	})

	err := fx.service.CleanupExpiredSessions(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to cleanup expired sessions")
}
