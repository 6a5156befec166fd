package controllers

import (
	"admission-backend/src/agents"
	"admission-backend/src/models"
	"admission-backend/src/qrcode"
	"admission-backend/src/services"
	"admission-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ApplicationController struct {
	Officer     *agents.AdmissionOfficer
	Checker     *agents.DocumentChecker
	Shortlister *agents.Shortlister
	Intake      *services.IntakeService
	Apps        *services.ApplicationService
}

// GetApplications godoc
// @Summary List applications
// @Description List every application. Passing page or limit returns a paginated envelope instead of a plain array.
// @Tags applications
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Application
// @Failure 502 {object} models.ErrorResponse
// @Router /applications [get]
func (ac *ApplicationController) GetApplications(c *fiber.Ctx) error {
	var params models.PaginationParams
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	apps, err := ac.Officer.ListApplications(c.UserContext(), params.Status)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	if apps == nil {
		apps = []models.Application{}
	}
	if !params.Paged() {
		return c.JSON(apps)
	}

	params.Clamp()
	start, end := params.Bounds(len(apps))
	return c.JSON(models.NewPaginatedResponse(apps[start:end], int64(len(apps)), params))
}

// GetApplication godoc
// @Summary Get application
// @Description Get one application by id
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.Application
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /applications/{id} [get]
func (ac *ApplicationController) GetApplication(c *fiber.Ctx) error {
	app, err := ac.Officer.GetApplication(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(app)
}

// SubmitApplication godoc
// @Summary Submit admission form
// @Description Create a student, their application and an optional loan request
// @Tags applications
// @Accept json
// @Produce json
// @Param form body models.IntakeRequest true "Admission form"
// @Success 201 {object} models.IntakeResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /applications [post]
func (ac *ApplicationController) SubmitApplication(c *fiber.Ctx) error {
	var req models.IntakeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleAppError(c, err)
	}

	result, err := ac.Intake.Submit(c.UserContext(), req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ChangeStatus godoc
// @Summary Change application status
// @Description Move an application forward, or reject it while it is still open
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body models.StatusChangeRequest true "New status"
// @Success 200 {object} models.Application
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /applications/{id}/status [patch]
func (ac *ApplicationController) ChangeStatus(c *fiber.Ctx) error {
	var req models.StatusChangeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleAppError(c, err)
	}

	app, err := ac.Apps.ChangeStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(app)
}

// IssueFeeSlip godoc
// @Summary Issue fee slip
// @Description Create a fee slip for an admitted application and mark it fee_slip_sent
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body models.FeeSlipRequest true "Fee slip"
// @Success 201 {object} models.FeeSlip
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /applications/{id}/fee-slip [post]
func (ac *ApplicationController) IssueFeeSlip(c *fiber.Ctx) error {
	var req models.FeeSlipRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleAppError(c, err)
	}

	slip, err := ac.Apps.IssueFeeSlip(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(slip)
}

// GetFeeSlipQRCode godoc
// @Summary Fee slip payment QR code
// @Description PNG QR code carrying the fee slip id, application id, amount and due date
// @Tags applications
// @Produce png
// @Param id path string true "Application ID"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /applications/{id}/fee-slip/qrcode [get]
func (ac *ApplicationController) GetFeeSlipQRCode(c *fiber.Ctx) error {
	slip, err := ac.Apps.FeeSlip(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	size := c.QueryInt("size", qrcode.DefaultSize)
	if size > 1024 {
		size = 1024
	}
	png, err := qrcode.FeeSlipPNG(*slip, size)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// VerifyDocuments godoc
// @Summary Verify documents
// @Description Run the Document Checker on one application
// @Tags agents
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.AgentResponse
// @Failure 404 {object} models.AgentResponse
// @Failure 502 {object} models.AgentResponse
// @Router /applications/{id}/verify-documents [post]
func (ac *ApplicationController) VerifyDocuments(c *fiber.Ctx) error {
	return respondResult(c, ac.Checker.VerifyDocuments(c.UserContext(), c.Params("id")))
}

// Shortlist godoc
// @Summary Shortlist application
// @Description Run the Shortlisting agent for one application against the whole cohort
// @Tags agents
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.AgentResponse
// @Failure 404 {object} models.AgentResponse
// @Failure 502 {object} models.AgentResponse
// @Router /applications/{id}/shortlist [post]
func (ac *ApplicationController) Shortlist(c *fiber.Ctx) error {
	return respondResult(c, ac.Shortlister.Shortlist(c.UserContext(), c.Params("id")))
}
