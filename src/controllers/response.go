package controllers

import (
	"admission-backend/src/agents"
	"admission-backend/src/apperrors"
	"admission-backend/src/models"
	"admission-backend/src/services"

	"github.com/gofiber/fiber/v2"
)

// resultStatus maps an agent result kind onto an HTTP status.
func resultStatus(kind agents.Kind) int {
	switch kind {
	case agents.KindOK, agents.KindNothingToProcess:
		return fiber.StatusOK
	case agents.KindNotFound:
		return fiber.StatusNotFound
	case agents.KindValidationFailed:
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusBadGateway
}

func respondResult(c *fiber.Ctx, res agents.Result) error {
	return c.Status(resultStatus(res.Kind)).JSON(models.AgentResponse{
		Kind:   string(res.Kind),
		Result: res.String(),
		Detail: res.Detail,
	})
}

// parseBody decodes and validates the request body into out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.BadRequest("Invalid input format")
	}
	return services.Validate(out)
}
