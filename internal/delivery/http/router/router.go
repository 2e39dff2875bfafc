// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitals/internal/delivery/http/middleware"
	"vitals/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SessionHandler *handler.SessionHandler
	ConsentHandler *handler.ConsentHandler
	UserHandler    *handler.UserHandler

	AuthMiddleware      *middleware.AuthMiddleware
	AuditMiddleware     *middleware.AuditMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	MetricsMiddleware   *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.MetricsMiddleware.Observe)
	e.Use(r.params.AuditMiddleware.Record)

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes. The credential-guessing surfaces carry the rate limit.
	authGroup := e.Group("/auth")
	{
		throttled := r.params.RateLimitMiddleware.Limit
		authGroup.POST("/register", r.params.AuthHandler.RegisterPatient, throttled)
		authGroup.POST("/register/provider", r.params.AuthHandler.RegisterProvider, throttled)
		authGroup.POST("/login", r.params.AuthHandler.Login, throttled)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh, throttled)

		// Logout identifies the session by the refresh token itself.
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.POST("/logout/all", r.params.AuthHandler.LogoutAllDevices, r.params.AuthMiddleware.Authenticate)

		// Session management requires a valid access token.
		sessionGroup := authGroup.Group("/sessions", r.params.AuthMiddleware.Authenticate)
		{
			sessionGroup.GET("", r.params.SessionHandler.ListSessions)
			sessionGroup.DELETE("", r.params.SessionHandler.RevokeAllSessions)
			sessionGroup.DELETE("/:id", r.params.SessionHandler.RevokeSession)
		}
	}

	// Profile of the authenticated user
	e.GET("/me", r.params.UserHandler.GetProfile, r.params.AuthMiddleware.Authenticate)

	// Consent ledger of the authenticated user
	consentGroup := e.Group("/consents", r.params.AuthMiddleware.Authenticate)
	{
		consentGroup.GET("", r.params.ConsentHandler.ListConsents)
		consentGroup.POST("", r.params.ConsentHandler.GrantConsent)
		consentGroup.DELETE("/:type", r.params.ConsentHandler.RevokeConsent)
	}
}
