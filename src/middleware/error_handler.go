package middleware

import (
	"errors"

	"admission-backend/src/logger"
	"admission-backend/src/models"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors that escape a handler as ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("❌ unhandled error")
	}
	return c.Status(code).JSON(models.ErrorResponse{Status: code, Message: err.Error()})
}
