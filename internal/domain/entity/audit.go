// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction describes the security-relevant operation an audit entry records.
type AuditAction string

const (
	AuditActionRegister       AuditAction = "register"
	AuditActionLogin          AuditAction = "login"
	AuditActionTokenRefresh   AuditAction = "token_refresh"
	AuditActionLogout         AuditAction = "logout"
	AuditActionSessionRevoke  AuditAction = "session_revoke"
	AuditActionConsentGranted AuditAction = "consent_granted"
	AuditActionConsentRevoked AuditAction = "consent_revoked"
	AuditActionPHIAccess      AuditAction = "phi_access"
)

// String returns the string representation of the AuditAction.
func (a AuditAction) String() string {
	return string(a)
}

// AuditEntry is an immutable record of a security-relevant request. Identity
// fields are pointers because unauthenticated actions (e.g. failed logins)
// still produce an entry, attributed only by IP and any email the caller sent.
type AuditEntry struct {
	ID           uuid.UUID
	UserID       *uuid.UUID // Nil when the request carried no valid identity.
	UserEmail    *string
	UserRole     *string
	Action       AuditAction
	ResourceType string // What kind of resource was touched, e.g. "session", "consent".
	ResourceID   *string
	Method       string // HTTP method of the originating request.
	Endpoint     string // Route path pattern, not the raw URL.
	IPAddress    string
	UserAgent    string
	Details      string // Free-form context, never PHI payloads.
	Success      bool
	ErrorMessage *string
	Timestamp    time.Time
}
