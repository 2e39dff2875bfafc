// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. It carries the login credential
// and exactly one role-specific profile, created at registration.
type User struct {
	ID              uuid.UUID        // The unique identifier for the account.
	Email           string           // Login identifier; stored lowercased so lookups are case-insensitive.
	Name            string           // Display name.
	PasswordHash    string           // bcrypt hash of the login password.
	Role            Role             // Either RolePatient or RoleProvider.
	PatientProfile  *PatientProfile  // Set when Role is RolePatient, nil otherwise.
	ProviderProfile *ProviderProfile // Set when Role is RoleProvider, nil otherwise.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PatientProfile holds data specific to the patient role.
type PatientProfile struct {
	UserID    uuid.UUID // Foreign key linking this profile to its User.
	Age       int       // Self-reported age, used for wellness baselines.
	UpdatedAt time.Time
}

// ProviderProfile holds data specific to the healthcare-provider role.
type ProviderProfile struct {
	UserID        uuid.UUID // Foreign key linking this profile to its User.
	Specialty     string    // Clinical specialty, e.g. "cardiology".
	LicenseNumber string    // The provider's professional license number.
	UpdatedAt     time.Time
}
