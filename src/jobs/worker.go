package jobs

import (
	"context"
	"fmt"

	"admission-backend/src/agents"
	"admission-backend/src/logger"

	"github.com/bytedance/sonic"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Handlers runs agent operations for queued tasks.
type Handlers struct {
	Officer     *agents.AdmissionOfficer
	Checker     *agents.DocumentChecker
	Shortlister *agents.Shortlister
	Loans       *agents.LoanOfficer
}

// Register binds every agent task type on mux.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeScreen, func(ctx context.Context, t *asynq.Task) error {
		return run(ctx, t, func(ctx context.Context, _ ApplicationPayload) agents.Result {
			return h.Officer.ScreenApplications(ctx)
		})
	})
	mux.HandleFunc(TypeShortlist, func(ctx context.Context, t *asynq.Task) error {
		return run(ctx, t, func(ctx context.Context, p ApplicationPayload) agents.Result {
			return h.Shortlister.Shortlist(ctx, p.ApplicationID)
		})
	})
	mux.HandleFunc(TypeVerifyDocuments, func(ctx context.Context, t *asynq.Task) error {
		return run(ctx, t, func(ctx context.Context, p ApplicationPayload) agents.Result {
			return h.Checker.VerifyDocuments(ctx, p.ApplicationID)
		})
	})
	mux.HandleFunc(TypeEvaluateLoans, func(ctx context.Context, t *asynq.Task) error {
		return run(ctx, t, func(ctx context.Context, _ ApplicationPayload) agents.Result {
			return h.Loans.EvaluateRequests(ctx)
		})
	})
}

// run decodes the payload, tags the context with the asynq task id and
// stores the agent result on the task. Failed runs are never retried.
func run(ctx context.Context, t *asynq.Task, fn func(context.Context, ApplicationPayload) agents.Result) error {
	var payload ApplicationPayload
	if len(t.Payload()) > 0 {
		if err := sonic.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error().Err(err).Str("type", t.Type()).Msg("❌ Payload decode error")
			return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
		}
	}

	if id, ok := asynq.GetTaskID(ctx); ok {
		ctx = agents.WithTaskID(ctx, id)
	}

	res := fn(ctx, payload)

	if w := t.ResultWriter(); w != nil {
		body, err := sonic.Marshal(res)
		if err == nil {
			_, err = w.Write(body)
		}
		if err != nil {
			logger.Warn().Err(err).Str("type", t.Type()).Msg("⚠️ could not store task result")
		}
	}

	if res.Failed() {
		logger.Error().Str("type", t.Type()).Str("kind", string(res.Kind)).Msg("❌ agent task failed: " + res.Detail)
		return fmt.Errorf("%s: %w", res.String(), asynq.SkipRetry)
	}
	logger.Info().Str("type", t.Type()).Str("kind", string(res.Kind)).Msg("✅ agent task done")
	return nil
}

// Worker processes agent tasks in-process on the shared Redis connection.
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewWorker(rdb *redis.Client, concurrency int, h *Handlers) *Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	mux := asynq.NewServeMux()
	h.Register(mux)

	srv := asynq.NewServerFromRedisClient(rdb, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{"default": 1},
		LogLevel:    asynq.WarnLevel,
	})
	return &Worker{srv: srv, mux: mux}
}

// Start begins processing without blocking.
func (w *Worker) Start() error {
	if err := w.srv.Start(w.mux); err != nil {
		return fmt.Errorf("start asynq worker: %w", err)
	}
	logger.Info().Msg("✅ Asynq worker started")
	return nil
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
	logger.Info().Msg("Asynq worker stopped")
}
