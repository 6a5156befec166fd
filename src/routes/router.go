package routes

import (
	"admission-backend/src/controllers"
	"admission-backend/src/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Controllers groups every HTTP handler set.
type Controllers struct {
	Applications *controllers.ApplicationController
	Students     *controllers.StudentController
	Admission    *controllers.AdmissionController
	Loans        *controllers.LoanController
	Agents       *controllers.AgentController
	Health       *controllers.HealthController
}

// Options holds route-level middleware settings.
type Options struct {
	AuthEnabled bool
	JWTSecret   []byte
	ChatLimiter fiber.Handler
}

func InitRoutes(app *fiber.App, ctl Controllers, opts Options) {
	auth := middleware.Optional(opts.AuthEnabled, middleware.AuthJWT(opts.JWTSecret))
	chatLimiter := opts.ChatLimiter
	if chatLimiter == nil {
		chatLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	// liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ Admission API is running...")
	})
	app.Get("/health", ctl.Health.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	applicationRoutes(app, ctl.Applications, auth)
	studentRoutes(app, ctl.Students, auth)

	admission := app.Group("/admission")
	admission.Get("/status", ctl.Admission.GetStatus)
	admission.Post("/screen", auth, ctl.Admission.Screen)
	app.Post("/chat", chatLimiter, auth, ctl.Admission.Chat)

	app.Post("/loans/evaluate", auth, ctl.Loans.Evaluate)
	budget := app.Group("/budget")
	budget.Get("/loan", ctl.Loans.GetBudget)
	budget.Put("/loan", auth, ctl.Loans.SetBudget)

	agents := app.Group("/agents")
	agents.Get("/", ctl.Agents.ListAgents)
	agents.Post("/tasks", auth, ctl.Agents.EnqueueTask)
}

func applicationRoutes(app *fiber.App, ctl *controllers.ApplicationController, auth fiber.Handler) {
	applications := app.Group("/applications")
	applications.Get("/", ctl.GetApplications)
	applications.Get("/:id", ctl.GetApplication)
	applications.Post("/", auth, ctl.SubmitApplication)
	applications.Patch("/:id/status", auth, ctl.ChangeStatus)
	applications.Post("/:id/fee-slip", auth, ctl.IssueFeeSlip)
	applications.Get("/:id/fee-slip/qrcode", ctl.GetFeeSlipQRCode)
	applications.Post("/:id/verify-documents", auth, ctl.VerifyDocuments)
	applications.Post("/:id/shortlist", auth, ctl.Shortlist)
}

func studentRoutes(app *fiber.App, ctl *controllers.StudentController, auth fiber.Handler) {
	students := app.Group("/students")
	students.Post("/:id/communicate", auth, ctl.Communicate)
	students.Post("/:id/loan-request", auth, ctl.RequestLoan)
}
