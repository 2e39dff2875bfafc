package middleware

import (
	"net/http"

	"vitals/internal/domain/entity"
	"vitals/internal/infra/audit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// auditedRoute describes how a route maps into the audit trail.
type auditedRoute struct {
	action       entity.AuditAction
	resourceType string
}

// auditedRoutes keys are "METHOD path-pattern". Consent routes are absent on
// purpose: the consent service writes its ledger entries inside the same
// transaction as the consent change, so recording them here would duplicate
// them.
var auditedRoutes = map[string]auditedRoute{
	"POST /auth/register":          {action: entity.AuditActionRegister, resourceType: "user"},
	"POST /auth/register/provider": {action: entity.AuditActionRegister, resourceType: "user"},
	"POST /auth/login":             {action: entity.AuditActionLogin, resourceType: "session"},
	"POST /auth/refresh":           {action: entity.AuditActionTokenRefresh, resourceType: "session"},
	"POST /auth/logout":            {action: entity.AuditActionLogout, resourceType: "session"},
	"POST /auth/logout/all":        {action: entity.AuditActionLogout, resourceType: "session"},
	"DELETE /auth/sessions/:id":    {action: entity.AuditActionSessionRevoke, resourceType: "session"},
	"DELETE /auth/sessions":        {action: entity.AuditActionSessionRevoke, resourceType: "session"},
	"GET /me":                      {action: entity.AuditActionPHIAccess, resourceType: "profile"},
}

// AuditMiddleware records security-relevant requests through the async
// audit recorder after the handler has run.
type AuditMiddleware struct {
	recorder audit.Recorder
}

// NewAuditMiddleware creates a new audit middleware
func NewAuditMiddleware(recorder audit.Recorder) *AuditMiddleware {
	return &AuditMiddleware{recorder: recorder}
}

// Record dispatches an audit entry for every request matching the route
// table. The entry is handed to the recorder off the request path, so a slow
// or failing audit store never delays the response.
func (m *AuditMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		route, ok := auditedRoutes[c.Request().Method+" "+c.Path()]
		if !ok {
			return err
		}

		entry := &entity.AuditEntry{
			ID:           uuid.New(),
			Action:       route.action,
			ResourceType: route.resourceType,
			Method:       c.Request().Method,
			Endpoint:     c.Path(),
			IPAddress:    c.RealIP(),
			UserAgent:    c.Request().UserAgent(),
			Success:      err == nil && c.Response().Status < http.StatusBadRequest,
		}

		// Identity is only present once the auth middleware has validated a
		// token; failed logins and registrations stay attributed by IP.
		if userID, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
			entry.UserID = &userID
		}
		if email, ok := c.Get(ContextKeyUserEmail).(string); ok && email != "" {
			entry.UserEmail = &email
		}
		if role, ok := c.Get(ContextKeyUserRole).(string); ok && role != "" {
			entry.UserRole = &role
		}

		if sessionID := c.Param("id"); sessionID != "" {
			entry.ResourceID = &sessionID
		}

		if err != nil {
			msg := err.Error()
			entry.ErrorMessage = &msg
		}

		m.recorder.Record(c.Request().Context(), entry)

		return err
	}
}
