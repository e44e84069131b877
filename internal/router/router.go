package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/atrium-admin-api/internal/config"
	"github.com/noah-isme/atrium-admin-api/internal/handler"
	"github.com/noah-isme/atrium-admin-api/internal/middleware"
	"github.com/noah-isme/atrium-admin-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	DashboardHandler *handler.DashboardHandler
	JWTMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.DashboardHandler != nil {
		dashboard := app.Group("/api/dashboard",
			jwtMiddleware,
			middleware.RateLimit("dashboard", 30, time.Minute),
		)
		deps.DashboardHandler.Register(dashboard)
	}
}
