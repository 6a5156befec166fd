package services

import (
	"context"
	"errors"
	"sync"

	"admission-backend/src/apperrors"
	"admission-backend/src/logger"
	"admission-backend/src/models"
)

// AgentRegistry keeps one Agent record per role and tracks the tasks each
// has run.
type AgentRegistry struct {
	repos *Repositories
	// serializes read-modify-write of assigned_tasks within this process
	mu sync.Mutex
}

func NewAgentRegistry(repos *Repositories) *AgentRegistry {
	return &AgentRegistry{repos: repos}
}

// Seed creates the missing role records. Existing records are left alone.
func (r *AgentRegistry) Seed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := 0
	for _, role := range models.AgentRoles {
		ok, err := r.repos.Agents.Exists(ctx, string(role))
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		agent := &models.Agent{ID: string(role), Name: role.DisplayName(), Role: role, Active: true}
		if err := r.repos.Agents.Save(ctx, agent); err != nil {
			return err
		}
		created++
	}
	if created > 0 {
		logger.Info().Int("created", created).Msg("✅ agent registry seeded")
	}
	return nil
}

// List returns every registered agent.
func (r *AgentRegistry) List(ctx context.Context) ([]models.Agent, error) {
	return r.repos.Agents.All(ctx)
}

// AssignTask appends taskID to the role's assigned tasks, creating the
// record when it is missing.
func (r *AgentRegistry) AssignTask(ctx context.Context, role models.AgentRole, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	agent, err := r.repos.Agents.Get(ctx, string(role))
	if errors.Is(err, apperrors.ErrNotFound) {
		agent = &models.Agent{ID: string(role), Name: role.DisplayName(), Role: role, Active: true}
	} else if err != nil {
		return err
	}
	agent.AssignedTasks = append(agent.AssignedTasks, taskID)
	return r.repos.Agents.Save(ctx, agent)
}
