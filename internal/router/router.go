package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/collegemonitor/monitor-api/internal/config"
	"github.com/collegemonitor/monitor-api/internal/handler"
	"github.com/collegemonitor/monitor-api/internal/middleware"
	"github.com/collegemonitor/monitor-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler      *handler.AuthHandler
	StudentHandler   *handler.StudentHandler
	ActivityHandler  *handler.ActivityHandler
	SyncHandler      *handler.SyncHandler
	DashboardHandler *handler.DashboardHandler
	JWTMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", jwtMiddleware))
	}

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activities", jwtMiddleware))
	}

	if deps.SyncHandler != nil {
		// The configured sync rate limit is requests per hour.
		sync := api.Group("/sync", jwtMiddleware, middleware.RateLimit("sync", cfg.SyncRateLimit, time.Hour))
		deps.SyncHandler.Register(sync)
	}

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api.Group("/dashboard", jwtMiddleware))
	}
}
