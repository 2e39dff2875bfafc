// Package handler contains the HTTP handlers for the application.
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

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterPatient handles the patient registration request.
func (h *AuthHandler) RegisterPatient(c echo.Context) error {
	var req registerPatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterPatient(c.Request().Context(), &usecase.RegisterPatientInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Age:              req.Age,
		AcceptedConsents: toConsentTypes(req.AcceptedConsents),
		IPAddress:        c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		User:   toUserResponse(output.User),
		Tokens: toTokenPairResponse(output.AccessToken, output.RefreshToken),
	}, "Patient registered successfully")
}

// RegisterProvider handles the provider registration request.
func (h *AuthHandler) RegisterProvider(c echo.Context) error {
	var req registerProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterProvider(c.Request().Context(), &usecase.RegisterProviderInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Specialty:        req.Specialty,
		LicenseNumber:    req.LicenseNumber,
		AcceptedConsents: toConsentTypes(req.AcceptedConsents),
		IPAddress:        c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		User:   toUserResponse(output.User),
		Tokens: toTokenPairResponse(output.AccessToken, output.RefreshToken),
	}, "Provider registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		User:   toUserResponse(output.User),
		Tokens: toTokenPairResponse(output.AccessToken, output.RefreshToken),
	}, "Login successful")
}

// Refresh handles the token rotation request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		toTokenPairResponse(output.AccessToken, output.RefreshToken),
		"Token refreshed successfully")
}

// Logout handles the user logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// LogoutAllDevices ends every session of the authenticated user.
func (h *AuthHandler) LogoutAllDevices(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	if err := h.uc.LogoutAllDevices(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out from all devices")
}

// currentUserID reads the user identity the auth middleware stored on the context.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
