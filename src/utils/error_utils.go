package utils

import (
	"errors"

	"admission-backend/src/apperrors"
	"admission-backend/src/logger"
	"admission-backend/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// StatusOf maps an error kind onto an HTTP status.
func StatusOf(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.ErrNotFound:
		return fiber.StatusNotFound
	case apperrors.ErrValidationFailed:
		return fiber.StatusUnprocessableEntity
	case apperrors.ErrBadRequest:
		return fiber.StatusBadRequest
	case apperrors.ErrConflict:
		return fiber.StatusConflict
	}
	return fiber.StatusBadGateway
}

// HandleAppError renders a service error with the status of its kind.
func HandleAppError(c *fiber.Ctx, err error) error {
	status := StatusOf(err)
	if status >= fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Msg("❌ request failed")
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && len(appErr.Details) > 0 {
		return c.Status(status).JSON(fiber.Map{
			"status":  status,
			"message": appErr.Error(),
			"details": appErr.Details,
		})
	}
	return HandleError(c, status, err.Error())
}
