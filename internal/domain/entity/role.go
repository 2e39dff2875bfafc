// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RolePatient indicates a patient account.
	RolePatient Role = "patient"
	// RoleProvider indicates a healthcare-provider account.
	RoleProvider Role = "provider"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleProvider:
		return true
	default:
		return false
	}
}
