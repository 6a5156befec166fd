package agents

import (
	"context"
	"time"

	"admission-backend/src/models"
)

// DocumentChecker verifies that an application carries every required
// document.
type DocumentChecker struct {
	base
	now func() time.Time
}

func NewDocumentChecker(deps Deps) *DocumentChecker {
	return &DocumentChecker{
		base: base{Deps: deps, role: models.RoleDocumentChecker},
		now:  time.Now,
	}
}

// VerifyDocuments computes the local document status, advances a complete
// application to documents_verified and asks the model for a report.
func (d *DocumentChecker) VerifyDocuments(ctx context.Context, applicationID string) (res Result) {
	const op = "verify documents"
	defer d.recoverInto(op, &res)

	if applicationID == "" {
		return ValidationFailed("application id is required")
	}
	l := d.begin(ctx, op)
	l = l.With().Str("application_id", applicationID).Logger()

	app, err := d.Repos.Applications.Get(ctx, applicationID)
	if err != nil {
		return storeFailure(l, err, MsgApplicationNotFound)
	}

	submitted := app.DocumentsByType()
	status := models.ComputeDocumentStatus(submitted)

	name := app.StudentName
	if name == "" {
		name = "with ID " + app.StudentID
	}
	prompt, err := render(documentPrompt, struct {
		ApplicationID string
		StudentName   string
		Documents     map[string]models.Document
		Status        map[string]models.DocumentState
	}{app.ID, name, submitted, status})
	if err != nil {
		return UpstreamUnavailable("render prompt: " + err.Error())
	}

	res = d.generate(ctx, l, prompt)
	if res.Failed() || !models.DocumentsComplete(status) {
		return res
	}

	// The transition is written only once the report exists, against a
	// fresh read of the record.
	app, err = d.Repos.Applications.Get(ctx, applicationID)
	if err != nil {
		return storeFailure(l, err, MsgApplicationNotFound)
	}
	if app.Status.CanTransitionTo(models.StatusDocumentsVerified) {
		app.Status = models.StatusDocumentsVerified
		app.UpdatedOn = d.now().UTC()
		if err := d.Repos.Applications.Save(ctx, app); err != nil {
			return storeFailure(l, err, "")
		}
		l.Info().Msg("✅ application documents complete")
		res.Detail = "application moved to " + string(models.StatusDocumentsVerified)
	}
	return res
}
