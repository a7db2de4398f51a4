package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/riskcheck-api/internal/config"
	"github.com/noah-isme/riskcheck-api/internal/utils"
)

// ModelInfo summarises the classifier loaded at startup.
type ModelInfo struct {
	Name     string `json:"name"`
	Features int    `json:"features"`
}

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Model       ModelInfo `json:"model"`
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config, model ModelInfo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Model:       model,
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
