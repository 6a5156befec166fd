package middleware

import (
	"time"

	"admission-backend/src/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// ChatRateLimiter allows max requests per minute per client IP. storage may
// be nil for process-local counters. A max of 0 disables limiting.
func ChatRateLimiter(max int, storage fiber.Storage) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "chat:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.Warn().Str("ip", c.IP()).Msg("⚠️ chat rate limit reached")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status":  fiber.StatusTooManyRequests,
				"message": "❌ Too many chat requests. Please try again later.",
			})
		},
		Storage: storage,
	})
}
