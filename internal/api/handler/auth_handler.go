package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storekit/storefront-api/internal/api/metrics"
	"github.com/storekit/storefront-api/internal/core/ports"
)

// AuthHandler issues bearer tokens for the product API.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Login handles POST /api/auth/login.
//
// @Summary      Obtain a bearer token for the product API
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenLoginRequest  true  "Admin credentials"
// @Success      200   {object}  tokenLoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req tokenLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password required")
	}

	admin, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("token", "failure").Inc()
		return err
	}

	token, expiresIn, err := h.authService.IssueToken(admin)
	if err != nil {
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("token", "success").Inc()
	return c.JSON(http.StatusOK, tokenLoginResponse{Token: token, ExpiresIn: expiresIn})
}
