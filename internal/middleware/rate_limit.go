package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rs/zerolog"

	"github.com/noah-isme/riskcheck-api/internal/utils"
)

// RateLimit caps submissions per client IP within the window.
func RateLimit(identifier string, max int, window time.Duration, logger zerolog.Logger) fiber.Handler {
	if max <= 0 {
		max = 30
	}
	if window <= 0 {
		window = time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return identifier + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.Warn().
				Str("correlation_id", GetCorrelationID(c)).
				Str("limiter", identifier).
				Msg("submission rate limit reached")
			return utils.SendError(c, fiber.StatusTooManyRequests, "too many submissions, please wait a moment")
		},
	})
}
