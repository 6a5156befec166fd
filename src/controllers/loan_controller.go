package controllers

import (
	"admission-backend/src/agents"
	"admission-backend/src/models"
	"admission-backend/src/services"
	"admission-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type LoanController struct {
	Loans   *agents.LoanOfficer
	Budgets *services.BudgetService
}

// Evaluate godoc
// @Summary Evaluate loan requests
// @Description Run the Loan Officer over every pending loan request
// @Tags agents
// @Produce json
// @Success 200 {object} models.AgentResponse
// @Failure 502 {object} models.AgentResponse
// @Router /loans/evaluate [post]
func (lc *LoanController) Evaluate(c *fiber.Ctx) error {
	return respondResult(c, lc.Loans.EvaluateRequests(c.UserContext()))
}

// GetBudget godoc
// @Summary Get loan budget
// @Tags budget
// @Produce json
// @Success 200 {object} models.UniversityBudget
// @Failure 404 {object} models.ErrorResponse
// @Router /budget/loan [get]
func (lc *LoanController) GetBudget(c *fiber.Ctx) error {
	budget, err := lc.Budgets.LoanBudget(c.UserContext())
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(budget)
}

// SetBudget godoc
// @Summary Set loan budget
// @Tags budget
// @Accept json
// @Produce json
// @Param body body models.BudgetRequest true "Budget"
// @Success 200 {object} models.UniversityBudget
// @Failure 422 {object} models.ErrorResponse
// @Router /budget/loan [put]
func (lc *LoanController) SetBudget(c *fiber.Ctx) error {
	var req models.BudgetRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleAppError(c, err)
	}

	budget, err := lc.Budgets.SetLoanBudget(c.UserContext(), req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(budget)
}
