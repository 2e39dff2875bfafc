package handler

import (
	"log/slog"
	"net/http"

	"vitals/internal/delivery/http/response"
	"vitals/internal/domain/entity"
	"vitals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConsentHandler holds dependencies for the consent ledger endpoints.
type ConsentHandler struct {
	uc     usecase.ConsentUsecase
	logger *slog.Logger
}

// NewConsentHandler is the constructor for ConsentHandler, injected by Fx.
func NewConsentHandler(uc usecase.ConsentUsecase, logger *slog.Logger) *ConsentHandler {
	return &ConsentHandler{
		uc:     uc,
		logger: logger,
	}
}

// GrantConsent records a new active grant for the authenticated user.
func (h *ConsentHandler) GrantConsent(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var req grantConsentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consent input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.GrantConsent(c.Request().Context(), &usecase.GrantConsentInput{
		UserID:      userID,
		ConsentType: entity.ConsentType(req.ConsentType),
		IPAddress:   c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toConsentResponse(record), "Consent granted successfully")
}

// RevokeConsent withdraws the authenticated user's active grant of the given type.
func (h *ConsentHandler) RevokeConsent(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	consentType := entity.ConsentType(c.Param("type"))

	if err := h.uc.RevokeConsent(c.Request().Context(), &usecase.RevokeConsentInput{
		UserID:      userID,
		ConsentType: consentType,
		IPAddress:   c.RealIP(),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Consent revoked successfully")
}

// ListConsents returns the authenticated user's full consent history.
func (h *ConsentHandler) ListConsents(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	records, err := h.uc.ListConsents(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toConsentResponses(records), "Consents retrieved successfully")
}
