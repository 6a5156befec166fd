// Package agents holds the five domain agents. Each operation reads the
// store, renders a prompt, asks the generation service and hands the raw
// text back as a Result. Operations never return Go errors or panic.
package agents

import (
	"context"
	"fmt"

	"admission-backend/src/llm"
	"admission-backend/src/logger"
	"admission-backend/src/models"
	"admission-backend/src/services"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TaskRecorder receives the id of every agent run.
type TaskRecorder interface {
	AssignTask(ctx context.Context, role models.AgentRole, taskID string) error
}

// Deps are shared by every agent.
type Deps struct {
	Repos     *services.Repositories
	Generator llm.Generator
	Tasks     TaskRecorder // optional
}

type taskIDKey struct{}

// WithTaskID attaches a run id to ctx. Runs without one get a fresh uuid.
func WithTaskID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, taskIDKey{}, id)
}

// TaskIDFrom returns the run id attached to ctx, if any.
func TaskIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(taskIDKey{}).(string)
	return id, ok && id != ""
}

type base struct {
	Deps
	role models.AgentRole
}

func (b *base) log(op string) zerolog.Logger {
	return logger.Get().With().Str("agent", string(b.role)).Str("op", op).Logger()
}

// begin records the run against the agent registry. Recording failures are
// logged and never fail the run.
func (b *base) begin(ctx context.Context, op string) zerolog.Logger {
	taskID, ok := TaskIDFrom(ctx)
	if !ok {
		taskID = uuid.NewString()
	}
	l := b.log(op).With().Str("task_id", taskID).Logger()
	l.Info().Msg("agent run started")
	if b.Tasks != nil {
		if err := b.Tasks.AssignTask(ctx, b.role, taskID); err != nil {
			l.Warn().Err(err).Msg("⚠️ could not record agent task")
		}
	}
	return l
}

// recoverInto turns a panic inside an operation into an upstream failure.
func (b *base) recoverInto(op string, res *Result) {
	if r := recover(); r != nil {
		l := b.log(op)
		l.Error().Interface("panic", r).Msg("❌ agent operation panicked")
		*res = UpstreamUnavailable(fmt.Sprintf("%s failed: %v", op, r))
	}
}

// generate calls the generation service and wraps failures.
func (b *base) generate(ctx context.Context, l zerolog.Logger, prompt string) Result {
	text, err := b.Generator.Generate(ctx, prompt)
	if err != nil {
		l.Error().Err(err).Msg("❌ generation service call failed")
		return UpstreamUnavailable("generation service: " + err.Error())
	}
	l.Info().Int("chars", len(text)).Msg("✅ agent run finished")
	return OK(text)
}

// storeFailure logs and wraps a store-side error.
func storeFailure(l zerolog.Logger, err error, notFound string) Result {
	res := fromError(err, notFound)
	if res.Kind == KindUpstreamUnavailable {
		l.Error().Err(err).Msg("❌ store access failed")
	} else {
		l.Warn().Err(err).Str("kind", string(res.Kind)).Msg("⚠️ agent run stopped")
	}
	return res
}
