package handler

import (
	"time"

	"vitals/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Request payloads ---

type registerPatientRequest struct {
	Name             string   `json:"name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8"`
	Age              int      `json:"age" validate:"gte=0,lte=150"`
	AcceptedConsents []string `json:"accepted_consents" validate:"required,min=1"`
}

type registerProviderRequest struct {
	Name             string   `json:"name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8"`
	Specialty        string   `json:"specialty" validate:"required"`
	LicenseNumber    string   `json:"license_number" validate:"required"`
	AcceptedConsents []string `json:"accepted_consents" validate:"required,min=1"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type grantConsentRequest struct {
	ConsentType string `json:"consent_type" validate:"required"`
}

// --- Response payloads ---

// userResponse is the public view of an account. The password hash never
// leaves the domain layer.
type userResponse struct {
	ID        uuid.UUID                `json:"id"`
	Email     string                   `json:"email"`
	Name      string                   `json:"name"`
	Role      string                   `json:"role"`
	Patient   *patientProfileResponse  `json:"patient_profile,omitempty"`
	Provider  *providerProfileResponse `json:"provider_profile,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

type patientProfileResponse struct {
	Age int `json:"age"`
}

type providerProfileResponse struct {
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"license_number"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type registerResponse struct {
	User   userResponse      `json:"user"`
	Tokens tokenPairResponse `json:"tokens"`
}

type loginResponse struct {
	User   userResponse      `json:"user"`
	Tokens tokenPairResponse `json:"tokens"`
}

type sessionResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type consentResponse struct {
	ID          uuid.UUID  `json:"id"`
	ConsentType string     `json:"consent_type"`
	Version     string     `json:"version"`
	Granted     bool       `json:"granted"`
	GrantedAt   time.Time  `json:"granted_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
	Method      string     `json:"method"`
}

// --- Mappers ---

func toUserResponse(user *entity.User) userResponse {
	resp := userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}

	if user.PatientProfile != nil {
		resp.Patient = &patientProfileResponse{Age: user.PatientProfile.Age}
	}
	if user.ProviderProfile != nil {
		resp.Provider = &providerProfileResponse{
			Specialty:     user.ProviderProfile.Specialty,
			LicenseNumber: user.ProviderProfile.LicenseNumber,
		}
	}

	return resp
}

func toTokenPairResponse(accessToken, refreshToken string) tokenPairResponse {
	return tokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}
}

func toSessionResponses(sessions []*entity.SessionInfo) []sessionResponse {
	out := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, sessionResponse{
			ID:        session.ID,
			CreatedAt: session.CreatedAt,
			ExpiresAt: session.ExpiresAt,
		})
	}

	return out
}

func toConsentResponse(record *entity.ConsentRecord) consentResponse {
	return consentResponse{
		ID:          record.ID,
		ConsentType: record.ConsentType.String(),
		Version:     record.Version,
		Granted:     record.Granted,
		GrantedAt:   record.GrantedAt,
		RevokedAt:   record.RevokedAt,
		Method:      record.Method,
	}
}

func toConsentResponses(records []*entity.ConsentRecord) []consentResponse {
	out := make([]consentResponse, 0, len(records))
	for _, record := range records {
		out = append(out, toConsentResponse(record))
	}

	return out
}

func toConsentTypes(raw []string) []entity.ConsentType {
	out := make([]entity.ConsentType, 0, len(raw))
	for _, value := range raw {
		out = append(out, entity.ConsentType(value))
	}

	return out
}
