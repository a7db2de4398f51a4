package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/riskcheck-api/internal/config"
	"github.com/noah-isme/riskcheck-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AssessmentHandler *handler.AssessmentHandler
	MetricsHandler    fiber.Handler
	Model             handler.ModelInfo
	// SubmitLimiter guards both submission routes. Nil disables limiting.
	SubmitLimiter fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	if deps.MetricsHandler != nil {
		app.Get("/metrics", deps.MetricsHandler)
	}

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.Model))

	if deps.AssessmentHandler == nil {
		return
	}

	var submit []fiber.Handler
	if deps.SubmitLimiter != nil {
		submit = append(submit, deps.SubmitLimiter)
	}

	deps.AssessmentHandler.Register(api.Group("/assessments"), submit...)
	deps.AssessmentHandler.RegisterPages(app, submit...)
}
