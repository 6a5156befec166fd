package controllers

import (
	"admission-backend/src/agents"
	"admission-backend/src/models"
	"admission-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type StudentController struct {
	Counsellor *agents.StudentCounsellor
	Loans      *agents.LoanOfficer
}

// Communicate godoc
// @Summary Message a student
// @Description Run the Student Counsellor to write and deliver a message about an admission stage
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param body body models.CommunicateRequest true "Admission stage"
// @Success 200 {object} models.AgentResponse
// @Failure 404 {object} models.AgentResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.AgentResponse
// @Router /students/{id}/communicate [post]
func (sc *StudentController) Communicate(c *fiber.Ctx) error {
	var req models.CommunicateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleAppError(c, err)
	}
	return respondResult(c, sc.Counsellor.Communicate(c.UserContext(), c.Params("id"), req.Content))
}

// RequestLoan godoc
// @Summary Submit loan request
// @Description Record a loan request for a student and run a Loan Officer evaluation
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param body body models.LoanInput true "Loan request"
// @Success 200 {object} models.AgentResponse
// @Failure 404 {object} models.AgentResponse
// @Failure 422 {object} models.AgentResponse
// @Failure 502 {object} models.AgentResponse
// @Router /students/{id}/loan-request [post]
func (sc *StudentController) RequestLoan(c *fiber.Ctx) error {
	var req models.LoanInput
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	return respondResult(c, sc.Loans.SubmitRequest(c.UserContext(), c.Params("id"), req))
}
