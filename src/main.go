package main

import (
	"admission-backend/src/agents"
	"admission-backend/src/jobs"
	"admission-backend/src/services"

	"go.uber.org/fx"
)

// @title Admission Agents API
// @version 1.0
// @description Admission workflow backend: intake, document checks, shortlisting, loans and student messaging.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	fx.New(
		fx.Provide(
			loadConfig,
			newDocumentStore,
			newRedisClient,
			newAsynqClient,
			newGenerator,
			newMailer,

			services.NewRepositories,
			services.NewIntakeService,
			services.NewApplicationService,
			services.NewStatusService,
			services.NewBudgetService,
			services.NewAgentRegistry,

			newAgentDeps,
			agents.NewAdmissionOfficer,
			agents.NewDocumentChecker,
			agents.NewShortlister,
			agents.NewLoanOfficer,
			agents.NewStudentCounsellor,

			jobs.NewDispatcher,
			newJobHandlers,
			newFiberApp,
		),
		fx.Invoke(
			bootstrapData,
			registerRoutes,
			startWorker,
			startScheduler,
			startServer,
		),
	).Run()
}
