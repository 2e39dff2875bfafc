// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vitals/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterPatientInput defines the data required to register a new patient.
type RegisterPatientInput struct {
	Name             string
	Email            string
	Password         string
	Age              int
	AcceptedConsents []entity.ConsentType
	IPAddress        string
}

// RegisterProviderInput defines the data required to register a new provider.
type RegisterProviderInput struct {
	Name             string
	Email            string
	Password         string
	Specialty        string
	LicenseNumber    string
	AcceptedConsents []entity.ConsentType
	IPAddress        string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the raw refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the raw refresh token whose session should end.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user together with the initial
// token pair, so registration doubles as the first login.
type RegisterOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the replacement token pair after a rotation.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// RegisterPatient creates a patient account. The required consents must be
	// present in the input or registration fails before any write.
	RegisterPatient(ctx context.Context, input *RegisterPatientInput) (*RegisterOutput, error)

	// RegisterProvider creates a provider account with its professional profile.
	RegisterProvider(ctx context.Context, input *RegisterProviderInput) (*RegisterOutput, error)

	// Login verifies credentials and opens a new session. Unknown email and
	// wrong password are indistinguishable in the returned error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh rotates a refresh token: the presented token is consumed and a
	// new pair is issued. A token that was already consumed is rejected.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// Logout ends the session behind the presented refresh token. Logging out
	// an already-ended session is not an error.
	Logout(ctx context.Context, input *LogoutInput) error

	// LogoutAllDevices ends every session the user has.
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error
}
