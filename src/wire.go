package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "admission-backend/src/docs"

	"admission-backend/src/agents"
	"admission-backend/src/config"
	"admission-backend/src/controllers"
	"admission-backend/src/database"
	"admission-backend/src/jobs"
	"admission-backend/src/llm"
	"admission-backend/src/logger"
	"admission-backend/src/mailer"
	"admission-backend/src/middleware"
	"admission-backend/src/routes"
	"admission-backend/src/scheduler"
	"admission-backend/src/seeder"
	"admission-backend/src/services"
	"admission-backend/src/store"
	"admission-backend/src/utils"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const startupTimeout = 30 * time.Second

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return nil, err
	}
	logger.Configure(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})
	return cfg, nil
}

func newDocumentStore(lc fx.Lifecycle, cfg *config.Config) (store.DocumentStore, error) {
	if cfg.Store.Backend == "memory" {
		logger.Warn().Msg("⚠️ using the in-memory store, data is lost on restart")
		return store.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	client, err := database.ConnectMongoDB(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return database.DisconnectMongoDB(ctx, client)
		},
	})
	return store.NewMongoStore(client.Database(cfg.Mongo.Database)), nil
}

// newRedisClient returns nil when Redis is not configured or unreachable.
func newRedisClient(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled() {
		logger.Warn().Msg("⚠️ REDIS_URI not set, background tasks are disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	rdb, err := database.ConnectRedis(ctx, cfg.Redis.URI, cfg.Redis.Password)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Redis not available, background tasks are disabled")
		return nil
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func newAsynqClient(rdb *redis.Client) *asynq.Client {
	return database.NewAsynqClient(rdb)
}

func newGenerator(cfg *config.Config) (llm.Generator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	return llm.NewGemini(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
}

// newMailer returns a nil Sender when SMTP is not configured so the
// counsellor falls back to portal delivery.
func newMailer(cfg *config.Config) (mailer.Sender, error) {
	if !cfg.SMTPEnabled() {
		logger.Warn().Msg("⚠️ SMTP not configured, counsellor messages go to the portal only")
		return nil, nil
	}
	sender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		User: cfg.SMTP.User,
		Pass: cfg.SMTP.Pass,
		From: cfg.SMTP.From,
	})
	if err != nil {
		return nil, err
	}
	return sender, nil
}

func newAgentDeps(repos *services.Repositories, gen llm.Generator, registry *services.AgentRegistry) agents.Deps {
	return agents.Deps{Repos: repos, Generator: gen, Tasks: registry}
}

func newJobHandlers(officer *agents.AdmissionOfficer, checker *agents.DocumentChecker, shortlister *agents.Shortlister, loans *agents.LoanOfficer) *jobs.Handlers {
	return &jobs.Handlers{Officer: officer, Checker: checker, Shortlister: shortlister, Loans: loans}
}

func newFiberApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "admission-backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))
	return app
}

type bootstrapDeps struct {
	fx.In

	Config   *config.Config
	Store    store.DocumentStore
	Repos    *services.Repositories
	Intake   *services.IntakeService
	Registry *services.AgentRegistry
	Budgets  *services.BudgetService
	Status   *services.StatusService
}

// bootstrapData creates the collections, seeds the agent registry and the
// loan budget, and stores a first status snapshot.
func bootstrapData(lc fx.Lifecycle, d bootstrapDeps) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.InitCollections(ctx, d.Store); err != nil {
				return fmt.Errorf("init collections: %w", err)
			}
			if err := d.Registry.Seed(ctx); err != nil {
				return fmt.Errorf("seed agents: %w", err)
			}
			if err := d.Budgets.EnsureLoanBudget(ctx, d.Config.Budget.LoanInitial); err != nil {
				return fmt.Errorf("seed loan budget: %w", err)
			}
			if d.Config.Seed.Demo {
				if _, err := seeder.SeedDemoApplications(ctx, d.Repos, d.Intake); err != nil {
					return err
				}
			}
			if _, err := d.Status.Refresh(ctx); err != nil {
				logger.Warn().Err(err).Msg("⚠️ initial status snapshot failed")
			}
			return nil
		},
	})
}

type routeDeps struct {
	fx.In

	App         *fiber.App
	Config      *config.Config
	Store       store.DocumentStore
	Redis       *redis.Client `optional:"true"`
	Officer     *agents.AdmissionOfficer
	Checker     *agents.DocumentChecker
	Shortlister *agents.Shortlister
	Loans       *agents.LoanOfficer
	Counsellor  *agents.StudentCounsellor
	Intake      *services.IntakeService
	Apps        *services.ApplicationService
	Budgets     *services.BudgetService
	Registry    *services.AgentRegistry
	Dispatcher  *jobs.Dispatcher
}

func registerRoutes(d routeDeps) {
	var limiterStorage fiber.Storage
	if d.Redis != nil {
		limiterStorage = utils.NewRedisStorage(d.Redis, "admission:limiter:")
	}

	routes.InitRoutes(d.App, routes.Controllers{
		Applications: &controllers.ApplicationController{
			Officer:     d.Officer,
			Checker:     d.Checker,
			Shortlister: d.Shortlister,
			Intake:      d.Intake,
			Apps:        d.Apps,
		},
		Students:  &controllers.StudentController{Counsellor: d.Counsellor, Loans: d.Loans},
		Admission: &controllers.AdmissionController{Officer: d.Officer},
		Loans:     &controllers.LoanController{Loans: d.Loans, Budgets: d.Budgets},
		Agents:    &controllers.AgentController{Registry: d.Registry, Dispatcher: d.Dispatcher},
		Health:    &controllers.HealthController{Store: d.Store, Redis: d.Redis},
	}, routes.Options{
		AuthEnabled: d.Config.Auth.Enabled,
		JWTSecret:   []byte(d.Config.Auth.JWTSecret),
		ChatLimiter: middleware.ChatRateLimiter(d.Config.Chat.RateLimit, limiterStorage),
	})
}

func startWorker(lc fx.Lifecycle, cfg *config.Config, rdb *redis.Client, h *jobs.Handlers) {
	if rdb == nil {
		return
	}
	w := jobs.NewWorker(rdb, cfg.Worker.Concurrency, h)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return w.Start()
		},
		OnStop: func(context.Context) error {
			w.Shutdown()
			return nil
		},
	})
}

func startScheduler(lc fx.Lifecycle, cfg *config.Config, status *services.StatusService) error {
	if strings.TrimSpace(cfg.Scheduler.StatusRefresh) == "" {
		return nil
	}
	s, err := scheduler.New(cfg.Scheduler.StatusRefresh, status)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
	return nil
}

func startServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, shutdowner fx.Shutdowner) {
	addr := ":" + cfg.Server.Port
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				logger.Info().Str("addr", addr).Msg("✅ Server is running")
				if err := app.Listen(addr); err != nil {
					logger.Error().Err(err).Msg("❌ server stopped")
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down the server ...")
			return app.ShutdownWithContext(ctx)
		},
	})
}
