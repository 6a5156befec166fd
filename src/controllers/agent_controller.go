package controllers

import (
	"errors"

	"admission-backend/src/jobs"
	"admission-backend/src/models"
	"admission-backend/src/services"
	"admission-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AgentController struct {
	Registry   *services.AgentRegistry
	Dispatcher *jobs.Dispatcher
}

// ListAgents godoc
// @Summary List agents
// @Description The agent registry with the task ids each agent has run
// @Tags agents
// @Produce json
// @Success 200 {array} models.Agent
// @Failure 502 {object} models.ErrorResponse
// @Router /agents [get]
func (ac *AgentController) ListAgents(c *fiber.Ctx) error {
	list, err := ac.Registry.List(c.UserContext())
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	if list == nil {
		list = []models.Agent{}
	}
	return c.JSON(list)
}

// EnqueueTask godoc
// @Summary Enqueue background agent run
// @Description Queue an agent run on the background worker. Requires Redis.
// @Tags agents
// @Accept json
// @Produce json
// @Param body body models.TaskRequest true "Task"
// @Success 202 {object} models.TaskResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /agents/tasks [post]
func (ac *AgentController) EnqueueTask(c *fiber.Ctx) error {
	var req models.TaskRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleAppError(c, err)
	}

	info, err := ac.Dispatcher.Enqueue(c.UserContext(), req)
	if errors.Is(err, jobs.ErrQueueUnavailable) {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "❌ "+err.Error())
	}
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(info)
}
