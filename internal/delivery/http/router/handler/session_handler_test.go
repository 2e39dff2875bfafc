package handler

import (
	"net/http"
	"testing"
	"time"

	"vitals/internal/domain/entity"
	domainerrors "vitals/internal/domain/errors"
	mockUsecase "vitals/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_ListSessions_Success(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())

	userID := uuid.New()
	sessionID := uuid.New()
	uc.EXPECT().GetActiveSessions(mock.Anything, userID).Return([]*entity.SessionInfo{
		{ID: sessionID, UserID: userID, CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour), IsActive: true},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/auth/sessions", "")
	c.Set("userID", userID)

	require.NoError(t, h.ListSessions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), sessionID.String())
}

func TestSessionHandler_ListSessions_RequiresIdentity(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())

	c, rec := newTestContext(t, http.MethodGet, "/auth/sessions", "")

	require.NoError(t, h.ListSessions(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHandler_RevokeSession_Success(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())

	userID := uuid.New()
	sessionID := uuid.New()
	uc.EXPECT().RevokeSession(mock.Anything, userID, sessionID).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/auth/sessions/"+sessionID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())

	require.NoError(t, h.RevokeSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_RevokeSession_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())

	c, rec := newTestContext(t, http.MethodDelete, "/auth/sessions/not-a-uuid", "")
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.RevokeSession(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandler_RevokeSession_OtherUsersSession(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())

	userID := uuid.New()
	sessionID := uuid.New()
	uc.EXPECT().RevokeSession(mock.Anything, userID, sessionID).Return(domainerrors.ErrForbidden)

	c, _ := newTestContext(t, http.MethodDelete, "/auth/sessions/"+sessionID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())

	err := h.RevokeSession(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSessionHandler_RevokeAllSessions_Success(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, discardLogger())

	userID := uuid.New()
	uc.EXPECT().RevokeAllSessions(mock.Anything, userID).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/auth/sessions", "")
	c.Set("userID", userID)

	require.NoError(t, h.RevokeAllSessions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
