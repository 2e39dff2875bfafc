package impl

import (
	"context"
	"testing"

	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/repository"
	mockRepo "vitals/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:             userID,
		Email:          "alice@example.com",
		Role:           entity.RolePatient,
		PatientProfile: &entity.PatientProfile{UserID: userID, Age: 34},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, got.ID)
	require.NotNil(t, got.PatientProfile)
	assert.Equal(t, 34, got.PatientProfile.Age)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	got, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
