package jobs

import (
	"context"
	"errors"
	"time"

	"admission-backend/src/logger"
	"admission-backend/src/models"
	"admission-backend/src/services"

	"github.com/hibiken/asynq"
)

// ErrQueueUnavailable is returned when no Redis is configured.
var ErrQueueUnavailable = errors.New("background queue is not configured")

const resultRetention = 24 * time.Hour

// Dispatcher enqueues agent runs. A nil client disables it.
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

func (d *Dispatcher) Enabled() bool {
	return d != nil && d.client != nil
}

func (d *Dispatcher) Enqueue(ctx context.Context, req models.TaskRequest) (*models.TaskResponse, error) {
	if err := services.Validate(req); err != nil {
		return nil, err
	}
	if !d.Enabled() {
		return nil, ErrQueueUnavailable
	}

	task, err := NewAgentTask(req)
	if err != nil {
		return nil, err
	}
	info, err := d.client.EnqueueContext(ctx, task, asynq.MaxRetry(0), asynq.Retention(resultRetention))
	if err != nil {
		return nil, err
	}

	logger.Info().Str("task_id", info.ID).Str("type", info.Type).Msg("✅ agent task enqueued")
	return &models.TaskResponse{TaskID: info.ID, Type: info.Type, Queue: info.Queue}, nil
}
