// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsentType identifies a data-use policy a user can accept or withdraw.
type ConsentType string

const (
	// ConsentDataProcessing covers processing of personal data; required at registration.
	ConsentDataProcessing ConsentType = "data_processing"
	// ConsentTermsOfService covers acceptance of the terms of service; required at registration.
	ConsentTermsOfService ConsentType = "terms_of_service"
	// ConsentHealthDataSharing covers sharing wellness data with assigned providers; optional.
	ConsentHealthDataSharing ConsentType = "health_data_sharing"
)

// String returns the string representation of the ConsentType.
func (t ConsentType) String() string {
	return string(t)
}

// IsValid checks if the ConsentType is a known value.
func (t ConsentType) IsValid() bool {
	switch t {
	case ConsentDataProcessing, ConsentTermsOfService, ConsentHealthDataSharing:
		return true
	default:
		return false
	}
}

// RequiredConsentTypes are the consent types recorded for every new account.
func RequiredConsentTypes() []ConsentType {
	return []ConsentType{ConsentDataProcessing, ConsentTermsOfService}
}

// ConsentRecord is one versioned acknowledgment of a data-use policy.
// Granting a new record of the same type supersedes the previous active one:
// at most one record per (UserID, ConsentType) has Granted true and RevokedAt nil.
type ConsentRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ConsentType ConsentType
	Version     string     // Policy version the user agreed to.
	Granted     bool
	GrantedAt   time.Time
	RevokedAt   *time.Time // Set when a later grant or an explicit revoke closes this record.
	Method      string     // How consent was collected, e.g. "registration", "settings".
	IPAddress   string     // Client IP at the moment of consent.
}

// Active reports whether this record is the current, uncontested grant.
func (c *ConsentRecord) Active() bool {
	return c.Granted && c.RevokedAt == nil
}
