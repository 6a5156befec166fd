package agents

import (
	"context"

	"admission-backend/src/models"
)

// Shortlister judges one application against the whole cohort.
type Shortlister struct {
	base
}

func NewShortlister(deps Deps) *Shortlister {
	return &Shortlister{base: base{Deps: deps, role: models.RoleShortlistingAgent}}
}

// Shortlist reads every application and asks the model whether the target
// should be shortlisted.
func (s *Shortlister) Shortlist(ctx context.Context, applicationID string) (res Result) {
	const op = "shortlist"
	defer s.recoverInto(op, &res)

	if applicationID == "" {
		return ValidationFailed("application id is required")
	}
	l := s.begin(ctx, op)
	l = l.With().Str("application_id", applicationID).Logger()

	apps, err := s.Repos.Applications.All(ctx)
	if err != nil {
		return storeFailure(l, err, "")
	}
	if len(apps) == 0 {
		l.Warn().Msg("⚠️ " + MsgNoApplicationsToShortlist)
		return NothingToProcess(MsgNoApplicationsToShortlist)
	}

	var target *models.Application
	for i := range apps {
		if apps[i].ID == applicationID {
			target = &apps[i]
			break
		}
	}
	if target == nil {
		l.Warn().Msg("⚠️ " + MsgApplicationNotFound)
		return NotFound(MsgApplicationNotFound)
	}

	prompt, err := render(shortlistPrompt, struct {
		TargetID     string
		Target       *models.Application
		Applications []models.Application
	}{applicationID, target, apps})
	if err != nil {
		return UpstreamUnavailable("render prompt: " + err.Error())
	}
	return s.generate(ctx, l, prompt)
}
