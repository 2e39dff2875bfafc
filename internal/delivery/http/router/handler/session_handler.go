package handler

import (
	"log/slog"
	"net/http"

	"vitals/internal/delivery/http/response"
	"vitals/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session management endpoints.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListSessions returns the authenticated user's active sessions.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	sessions, err := h.uc.GetActiveSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponses(sessions), "Sessions retrieved successfully")
}

// RevokeSession ends one of the authenticated user's sessions by ID.
func (h *SessionHandler) RevokeSession(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	if err := h.uc.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session revoked successfully")
}

// RevokeAllSessions ends every session the authenticated user has.
func (h *SessionHandler) RevokeAllSessions(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	if err := h.uc.RevokeAllSessions(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All sessions revoked successfully")
}
