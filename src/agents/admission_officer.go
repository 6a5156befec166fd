package agents

import (
	"context"
	"errors"
	"strings"
	"time"

	"admission-backend/src/apperrors"
	"admission-backend/src/models"
	"admission-backend/src/services"
	"admission-backend/src/store"
)

// AdmissionOfficer screens submitted applications and answers chat
// questions.
type AdmissionOfficer struct {
	base
	status *services.StatusService
	now    func() time.Time
}

func NewAdmissionOfficer(deps Deps, status *services.StatusService) *AdmissionOfficer {
	return &AdmissionOfficer{
		base:   base{Deps: deps, role: models.RoleAdmissionOfficer},
		status: status,
		now:    time.Now,
	}
}

// ScreenApplications asks the model to screen every submitted application.
// Screened applications move to under_review.
func (a *AdmissionOfficer) ScreenApplications(ctx context.Context) (res Result) {
	const op = "screen applications"
	defer a.recoverInto(op, &res)
	l := a.begin(ctx, op)

	apps, err := a.Repos.Applications.Find(ctx, store.Filter{"status": models.StatusSubmitted})
	if err != nil {
		return storeFailure(l, err, "")
	}
	if len(apps) == 0 {
		l.Warn().Msg("⚠️ " + MsgNoApplicationsToScreen)
		return NothingToProcess(MsgNoApplicationsToScreen)
	}

	prompt, err := render(screeningPrompt, struct{ Applications []models.Application }{apps})
	if err != nil {
		return UpstreamUnavailable("render prompt: " + err.Error())
	}
	res = a.generate(ctx, l, prompt)
	if res.Failed() {
		return res
	}

	now := a.now().UTC()
	// Re-read each record so changes made during the model call are kept.
	moved := make([]*models.Application, 0, len(apps))
	for i := range apps {
		app, err := a.Repos.Applications.Get(ctx, apps[i].ID)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return storeFailure(l, err, "")
		}
		if app.Status.CanTransitionTo(models.StatusUnderReview) {
			app.Status = models.StatusUnderReview
			app.UpdatedOn = now
			moved = append(moved, app)
		}
	}
	if err := a.Repos.Applications.Save(ctx, moved...); err != nil {
		return storeFailure(l, err, "")
	}
	return res
}

// ListApplications returns every application, optionally by status.
func (a *AdmissionOfficer) ListApplications(ctx context.Context, status string) ([]models.Application, error) {
	var filter store.Filter
	if status != "" {
		filter = store.Filter{"status": status}
	}
	return a.Repos.Applications.Find(ctx, filter)
}

// GetApplication returns one application or a NotFound error carrying the
// not-found sentinel.
func (a *AdmissionOfficer) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	app, err := a.Repos.Applications.Get(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NotFound(MsgApplicationNotFound)
	}
	return app, err
}

// AdmissionStatus returns the current process snapshot.
func (a *AdmissionOfficer) AdmissionStatus(ctx context.Context) (*models.AdmissionProcessStatus, error) {
	return a.status.Current(ctx)
}

// Chat answers a free-form question. applicationID is optional context.
func (a *AdmissionOfficer) Chat(ctx context.Context, content, applicationID string) (res Result) {
	const op = "chat"
	defer a.recoverInto(op, &res)

	if strings.TrimSpace(content) == "" {
		return ValidationFailed("content is required")
	}
	l := a.begin(ctx, op)

	var app *models.Application
	if applicationID != "" {
		var err error
		app, err = a.Repos.Applications.Get(ctx, applicationID)
		if err != nil {
			return storeFailure(l, err, MsgApplicationNotFound)
		}
	}
	snapshot, err := a.status.Current(ctx)
	if err != nil {
		return storeFailure(l, err, "")
	}

	prompt, err := render(chatPrompt, struct {
		Status      *models.AdmissionProcessStatus
		Application *models.Application
		Question    string
	}{snapshot, app, content})
	if err != nil {
		return UpstreamUnavailable("render prompt: " + err.Error())
	}
	return a.generate(ctx, l, prompt)
}
