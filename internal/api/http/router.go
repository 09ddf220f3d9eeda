package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/acest-fitness/gym-service/internal/api/http/handlers"
	"github.com/acest-fitness/gym-service/internal/auth"
	"github.com/acest-fitness/gym-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Home           *handlers.HomeHandler
	Catalog        *handlers.CatalogHandler
	Fitness        *handlers.FitnessHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	app.Get("/", cfg.Home.Index)

	app.Get("/members", cfg.Catalog.Members)
	app.Get("/membership/:id", cfg.Catalog.Member)
	app.Get("/workouts", cfg.Catalog.Workouts)
	app.Get("/trainers", cfg.Catalog.Trainers)
	app.Get("/classes", cfg.Catalog.Classes)

	app.Get("/bmi", cfg.Fitness.BMI)

	app.Post("/login", cfg.Auth.Login)
	app.Get("/protected", cfg.AuthMiddleware.Handle, auth.RequireIdentity(), cfg.Auth.Protected)
}
