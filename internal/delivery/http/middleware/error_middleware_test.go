package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vitals/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_MapsAppError(t *testing.T) {
	m := NewErrorMiddleware(testSlog())

	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrInvalidCredentials, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestErrorMiddleware_UnwrapsWrappedAppError(t *testing.T) {
	m := NewErrorMiddleware(testSlog())

	c, rec := newErrorTestContext(t)

	wrapped := errors.Wrap(domainerrors.ErrSessionRevoked, "failed to execute refresh transaction")
	m.HandleHTTPError(wrapped, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_REVOKED")
	// The wrapping context stays server-side.
	assert.NotContains(t, rec.Body.String(), "failed to execute")
}

func TestErrorMiddleware_MapsEchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(testSlog())

	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "field validation failed"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_OpaqueInternalError(t *testing.T) {
	m := NewErrorMiddleware(testSlog())

	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("pq: connection reset by peer"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Driver details never reach the client.
	assert.NotContains(t, rec.Body.String(), "pq:")
}
