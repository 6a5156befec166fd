package controllers

import (
	"admission-backend/src/agents"
	"admission-backend/src/models"
	"admission-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AdmissionController struct {
	Officer *agents.AdmissionOfficer
}

// GetStatus godoc
// @Summary Admission process status
// @Description Latest admission process snapshot
// @Tags admission
// @Produce json
// @Success 200 {object} models.AdmissionProcessStatus
// @Failure 502 {object} models.ErrorResponse
// @Router /admission/status [get]
func (ac *AdmissionController) GetStatus(c *fiber.Ctx) error {
	status, err := ac.Officer.AdmissionStatus(c.UserContext())
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(status)
}

// Screen godoc
// @Summary Screen applications
// @Description Run the Admission Officer over every submitted application
// @Tags agents
// @Produce json
// @Success 200 {object} models.AgentResponse
// @Failure 502 {object} models.AgentResponse
// @Router /admission/screen [post]
func (ac *AdmissionController) Screen(c *fiber.Ctx) error {
	return respondResult(c, ac.Officer.ScreenApplications(c.UserContext()))
}

// Chat godoc
// @Summary Chat with the admission office
// @Description Free-form question answered by the Admission Officer, optionally about one application
// @Tags agents
// @Accept json
// @Produce json
// @Param body body models.ChatRequest true "Question"
// @Success 200 {object} models.AgentResponse
// @Failure 404 {object} models.AgentResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.AgentResponse
// @Router /chat [post]
func (ac *AdmissionController) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleAppError(c, err)
	}
	return respondResult(c, ac.Officer.Chat(c.UserContext(), req.Content, req.ApplicationID))
}
