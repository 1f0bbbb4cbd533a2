package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storekit/storefront-api/internal/api/metrics"
	"github.com/storekit/storefront-api/internal/api/middleware"
	"github.com/storekit/storefront-api/internal/core/ports"
)

// AdminHandler serves the session-authenticated admin panel: login/logout
// and user management.
type AdminHandler struct {
	authService  ports.AuthService
	userService  ports.UserService
	sessions     ports.SessionStore
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewAdminHandler(authService ports.AuthService, userService ports.UserService, sessions ports.SessionStore, sessionTTL time.Duration, cookieSecure bool) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		userService:  userService,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

// ShowLogin handles GET /admin/login with a usage hint for humans poking at
// the panel without a client.
func (h *AdminHandler) ShowLogin(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Send POST /admin/login with email & password"})
}

// Login handles POST /admin/login: credential check, then a fresh session.
//
// @Summary      Log in to the admin panel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin credentials"
// @Success      200   {object}  adminLoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	admin, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("session", "failure").Inc()
		return err
	}

	sessionID, err := h.sessions.Create(c.Request().Context(), admin.ID)
	if err != nil {
		return err
	}
	c.SetCookie(h.sessionCookie(sessionID, int(h.sessionTTL.Seconds())))

	metrics.LoginAttemptsTotal.WithLabelValues("session", "success").Inc()
	return c.JSON(http.StatusOK, adminLoginResponse{
		Message: "Login successful",
		Admin:   adminSummary{ID: admin.ID, Name: admin.Name, Email: admin.Email},
	})
}

// Logout handles POST /admin/logout. The session is destroyed
// unconditionally; logging out without one still succeeds.
func (h *AdminHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// ListUsers handles GET /admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        q      query     string  false  "Search term (name or email)"
// @Param        sort   query     string  false  "Sort column (name, email, created_at)"
// @Param        dir    query     string  false  "Sort direction (asc or desc)"
// @Param        page   query     int     false  "Page number (1-based)"
// @Param        limit  query     int     false  "Page size, capped at 100"
// @Success      200    {object}  userListResponse
// @Failure      401    {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	users, total, err := h.userService.List(c.Request().Context(), ports.ListUsersFilter{
		Search: c.QueryParam("q"),
		Sort:   c.QueryParam("sort"),
		Dir:    c.QueryParam("dir"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Data:  users,
		Page:  ports.ClampPage(page),
		Limit: ports.ClampLimit(limit),
		Total: total,
	})
}

// ShowUser handles GET /admin/users/:id.
func (h *AdminHandler) ShowUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /admin/users.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User fields"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		City:  req.City,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{ID: id, Message: "User created successfully"})
}

// UpdateUser handles PUT /admin/users/:id.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	changed, err := h.userService.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		City:  req.City,
	})
	if err != nil {
		return err
	}

	msg := "No changes applied"
	if changed {
		msg = "User updated"
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// DeleteUser handles DELETE /admin/users/:id. Deleting an unknown user is
// reported in the message, not as an error status.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	removed, err := h.userService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	msg := "User not found"
	if removed {
		msg = "User deleted"
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

func (h *AdminHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
