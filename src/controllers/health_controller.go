package controllers

import (
	"context"
	"time"

	"admission-backend/src/store"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const healthTimeout = 2 * time.Second

type HealthController struct {
	Store store.DocumentStore
	Redis *redis.Client // optional
}

// Health godoc
// @Summary Readiness check
// @Description Pings the document store and Redis when configured
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (hc *HealthController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	checks := fiber.Map{"store": "ok"}
	healthy := true
	if err := hc.Store.Ping(ctx); err != nil {
		checks["store"] = err.Error()
		healthy = false
	}
	if hc.Redis != nil {
		checks["redis"] = "ok"
		if err := hc.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}
	}

	if !healthy {
		checks["status"] = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(checks)
	}
	checks["status"] = "ok"
	return c.JSON(checks)
}
