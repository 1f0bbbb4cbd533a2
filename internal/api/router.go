package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/storekit/storefront-api/internal/api/handler"
	"github.com/storekit/storefront-api/internal/api/middleware"
	"github.com/storekit/storefront-api/internal/core/ports"
	"github.com/storekit/storefront-api/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Auth is selected per route group: the product API group carries the token
// authenticator, the admin group the session authenticator; the login routes
// sit outside both groups.
func NewRouter(
	cfg *config.Config,
	log zerolog.Logger,
	authService ports.AuthService,
	productService ports.ProductService,
	userService ports.UserService,
	sessions ports.SessionStore,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Health & metrics (no auth required) ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	adminHandler := handler.NewAdminHandler(authService, userService, sessions, cfg.Session.TTL, cfg.Session.CookieSecure)

	tokenAuth := middleware.NewTokenAuthenticator(cfg.JWTSecret)
	sessionAuth := middleware.NewSessionAuthenticator(sessions)

	// --- Product API (bearer token) ---
	e.POST("/api/auth/login", authHandler.Login)

	products := e.Group("/api/products", middleware.Require(tokenAuth))
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Admin panel (server-side session) ---
	e.GET("/admin/login", adminHandler.ShowLogin)
	e.POST("/admin/login", adminHandler.Login)
	// Logout destroys the session unconditionally, so it needs no auth.
	e.POST("/admin/logout", adminHandler.Logout)

	admin := e.Group("/admin/users", middleware.Require(sessionAuth))
	admin.GET("", adminHandler.ListUsers)
	admin.POST("", adminHandler.CreateUser)
	admin.GET("/:id", adminHandler.ShowUser)
	admin.PUT("/:id", adminHandler.UpdateUser)
	admin.DELETE("/:id", adminHandler.DeleteUser)

	return e
}
