package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"vitals/internal/domain/entity"
	mockUsecase "vitals/internal/mocks/usecase"
	"vitals/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsentHandler_GrantConsent_Success(t *testing.T) {
	uc := mockUsecase.NewMockConsentUsecase(t)
	h := NewConsentHandler(uc, discardLogger())

	userID := uuid.New()
	var captured *usecase.GrantConsentInput

	uc.EXPECT().GrantConsent(mock.Anything, mock.AnythingOfType("*usecase.GrantConsentInput")).
		Run(func(_ context.Context, input *usecase.GrantConsentInput) {
			captured = input
		}).
		Return(&entity.ConsentRecord{
			ID:          uuid.New(),
			UserID:      userID,
			ConsentType: entity.ConsentHealthDataSharing,
			Version:     "2.1",
			Granted:     true,
			GrantedAt:   time.Now(),
			Method:      "settings",
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/consents", `{"consent_type": "health_data_sharing"}`)
	c.Set("userID", userID)

	require.NoError(t, h.GrantConsent(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "health_data_sharing")

	require.NotNil(t, captured)
	assert.Equal(t, userID, captured.UserID)
	assert.Equal(t, entity.ConsentHealthDataSharing, captured.ConsentType)
}

func TestConsentHandler_GrantConsent_RequiresIdentity(t *testing.T) {
	uc := mockUsecase.NewMockConsentUsecase(t)
	h := NewConsentHandler(uc, discardLogger())

	c, rec := newTestContext(t, http.MethodPost, "/consents", `{"consent_type": "health_data_sharing"}`)

	require.NoError(t, h.GrantConsent(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConsentHandler_RevokeConsent_Success(t *testing.T) {
	uc := mockUsecase.NewMockConsentUsecase(t)
	h := NewConsentHandler(uc, discardLogger())

	userID := uuid.New()
	var captured *usecase.RevokeConsentInput

	uc.EXPECT().RevokeConsent(mock.Anything, mock.AnythingOfType("*usecase.RevokeConsentInput")).
		Run(func(_ context.Context, input *usecase.RevokeConsentInput) {
			captured = input
		}).
		Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/consents/health_data_sharing", "")
	c.Set("userID", userID)
	c.SetParamNames("type")
	c.SetParamValues("health_data_sharing")

	require.NoError(t, h.RevokeConsent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, entity.ConsentHealthDataSharing, captured.ConsentType)
}

func TestConsentHandler_ListConsents_Success(t *testing.T) {
	uc := mockUsecase.NewMockConsentUsecase(t)
	h := NewConsentHandler(uc, discardLogger())

	userID := uuid.New()
	revokedAt := time.Now().Add(-time.Hour)
	uc.EXPECT().ListConsents(mock.Anything, userID).Return([]*entity.ConsentRecord{
		{ID: uuid.New(), UserID: userID, ConsentType: entity.ConsentDataProcessing, Granted: true, Method: "registration"},
		{ID: uuid.New(), UserID: userID, ConsentType: entity.ConsentHealthDataSharing, Granted: false, RevokedAt: &revokedAt, Method: "settings"},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/consents", "")
	c.Set("userID", userID)

	require.NoError(t, h.ListConsents(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data_processing")
	assert.Contains(t, rec.Body.String(), "revoked_at")
}
