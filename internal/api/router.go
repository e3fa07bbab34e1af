package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/busybee/admin-gateway/internal/api/handler"
	"github.com/busybee/admin-gateway/internal/api/middleware"
	"github.com/busybee/admin-gateway/internal/core/ports"
	"github.com/busybee/admin-gateway/internal/core/service"
)

// RouterConfig carries the session settings the HTTP layer needs.
type RouterConfig struct {
	CookieName string
	SessionTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the session store is in-memory; it is used only by the
// readiness probe.
func NewRouter(upstream ports.UpstreamClient, sessions ports.SessionStore, rdb *redis.Client, log zerolog.Logger, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, sessions, cfg.CookieName)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("busybee_admin"))

	// --- Dependencies ---
	authService := service.NewAuthService(upstream, sessions, cfg.SessionTTL, log)
	categoryService := service.NewCategoryService(upstream, log)
	userService := service.NewUserService(upstream, log)
	workService := service.NewWorkService(upstream, log)

	authHandler := handler.NewAuthHandler(authService, cfg.CookieName, cfg.SessionTTL)
	navHandler := handler.NewNavHandler()
	categoryHandler := handler.NewCategoryHandler(categoryService)
	userHandler := handler.NewUserHandler(userService)
	workHandler := handler.NewWorkHandler(workService)
	healthHandler := handler.NewHealthHandler(rdb)

	// --- Auth routes (no session required) ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout)

	// --- Health probes, metrics, API docs ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated shell ---
	shell := e.Group("/v1", middleware.Guard(sessions, cfg.CookieName))

	shell.GET("/nav", navHandler.Sections)

	shell.GET("/categories", categoryHandler.List)
	shell.POST("/categories", categoryHandler.Create)
	shell.PUT("/categories/:id", categoryHandler.Update)
	shell.DELETE("/categories/:id", categoryHandler.Delete)

	shell.GET("/users", userHandler.List)
	shell.POST("/users", userHandler.Create)
	shell.PUT("/users/:id", userHandler.Update)
	shell.DELETE("/users/:id", userHandler.Delete)
	shell.POST("/users/:id/role", userHandler.ChangeRole)

	shell.GET("/works", workHandler.List)
	shell.POST("/works", workHandler.Create)
	shell.PUT("/works/:id", workHandler.Update)
	shell.DELETE("/works/:id", workHandler.Delete)

	return e
}
