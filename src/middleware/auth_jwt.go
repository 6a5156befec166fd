package middleware

import (
	"strings"

	"admission-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT requires a valid bearer token signed with secret.
func AuthJWT(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
		}

		c.Locals("userId", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// Optional returns h when enabled and a pass-through handler otherwise.
func Optional(enabled bool, h fiber.Handler) fiber.Handler {
	if enabled {
		return h
	}
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
