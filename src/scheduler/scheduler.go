// Package scheduler runs periodic maintenance jobs on robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"admission-backend/src/logger"
	"admission-backend/src/models"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = time.Minute

// StatusRefresher recomputes and stores the admission status snapshot.
type StatusRefresher interface {
	Refresh(ctx context.Context) (*models.AdmissionProcessStatus, error)
}

type Scheduler struct {
	cron *cron.Cron
}

// New registers the status refresh job on spec, a cron expression or a
// descriptor such as "@every 5m".
func New(spec string, status StatusRefresher) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() {
		RefreshStatus(status)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule status refresh %q: %w", spec, err)
	}
	logger.Info().Str("schedule", spec).Msg("✅ status refresh scheduled")
	return &Scheduler{cron: c}, nil
}

// RefreshStatus runs one refresh and logs the outcome.
func RefreshStatus(status StatusRefresher) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := status.Refresh(ctx); err != nil {
		logger.Error().Err(err).Msg("❌ status refresh failed")
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
