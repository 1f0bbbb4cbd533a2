package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AdminIDKey is the echo context key under which Require stores the
// authenticated admin id.
const AdminIDKey = "admin_id"

// Authenticator resolves the credentials carried by a request to an admin
// identity, or rejects the request. Implementations must not touch any
// backing store other than their own (token verification is stateless, the
// session variant consults only the session store).
type Authenticator interface {
	Authenticate(c echo.Context) (int64, error)
}

// Require wraps an Authenticator as route middleware. On rejection the
// response short-circuits with 401 and the handler is never invoked.
func Require(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			adminID, err := a.Authenticate(c)
			if err != nil {
				return err
			}
			c.Set(AdminIDKey, adminID)
			return next(c)
		}
	}
}

// TokenAuthenticator validates a Bearer JWT against a shared secret.
// No server-side state is created or consulted.
type TokenAuthenticator struct {
	secret string
}

func NewTokenAuthenticator(secret string) *TokenAuthenticator {
	return &TokenAuthenticator{secret: secret}
}

func (a *TokenAuthenticator) Authenticate(c echo.Context) (int64, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(a.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, echo.NewHTTPError(http.StatusUnauthorized, "token expired")
		}
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if !tkn.Valid {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token payload")
	}

	return int64(uid), nil
}
