package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storekit/storefront-api/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque admin session id.
// The admin login handler writes it; this middleware only reads it.
const SessionCookieName = "storefront_session"

// SessionAuthenticator resolves the session cookie through the session
// store. Session expiry is owned by the store, so a hit needs no further
// verification.
type SessionAuthenticator struct {
	sessions ports.SessionStore
}

func NewSessionAuthenticator(sessions ports.SessionStore) *SessionAuthenticator {
	return &SessionAuthenticator{sessions: sessions}
}

func (a *SessionAuthenticator) Authenticate(c echo.Context) (int64, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	adminID, err := a.sessions.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
	}

	return adminID, nil
}
