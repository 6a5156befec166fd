package services

import (
	"context"
	"fmt"
	"time"

	"admission-backend/src/apperrors"
	"admission-backend/src/logger"
	"admission-backend/src/models"
	"admission-backend/src/store"

	"github.com/google/uuid"
)

// ApplicationService handles application lifecycle changes made by staff.
type ApplicationService struct {
	repos *Repositories
	now   func() time.Time
}

func NewApplicationService(repos *Repositories) *ApplicationService {
	return &ApplicationService{repos: repos, now: time.Now}
}

// ChangeStatus moves an application forward. Backward moves and moves out
// of a terminal state fail with ValidationFailed.
func (s *ApplicationService) ChangeStatus(ctx context.Context, id string, next models.ApplicationStatus) (*models.Application, error) {
	if !next.Valid() {
		return nil, apperrors.Validation(fmt.Sprintf("unknown application status %q", next))
	}
	app, err := s.repos.Applications.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !app.Status.CanTransitionTo(next) {
		return nil, apperrors.Validation(fmt.Sprintf("cannot move application from %s to %s", app.Status, next)).
			WithDetails(map[string]interface{}{"from": app.Status, "to": next})
	}

	app.Status = next
	app.UpdatedOn = s.now().UTC()
	if err := s.repos.Applications.Save(ctx, app); err != nil {
		return nil, err
	}
	logger.Info().Str("application_id", id).Str("status", string(next)).Msg("✅ application status changed")
	return app, nil
}

// IssueFeeSlip creates a fee slip for an admitted application and marks the
// application fee_slip_sent.
func (s *ApplicationService) IssueFeeSlip(ctx context.Context, applicationID string, req models.FeeSlipRequest) (*models.FeeSlip, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	app, err := s.repos.Applications.Get(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.StatusAdmitted {
		return nil, apperrors.Validation(fmt.Sprintf("fee slips are issued for admitted applications, this one is %s", app.Status))
	}

	now := s.now().UTC()
	slip := &models.FeeSlip{
		ID:            uuid.NewString(),
		StudentID:     app.StudentID,
		ApplicationID: app.ID,
		Amount:        req.Amount,
		GeneratedDate: now,
		DueDate:       req.DueDate,
	}
	if err := s.repos.FeeSlips.Save(ctx, slip); err != nil {
		return nil, err
	}

	app.Status = models.StatusFeeSlipSent
	app.UpdatedOn = now
	if err := s.repos.Applications.Save(ctx, app); err != nil {
		return nil, err
	}
	logger.Info().Str("application_id", app.ID).Str("fee_slip_id", slip.ID).Msg("✅ fee slip issued")
	return slip, nil
}

// FeeSlip returns the fee slip issued for an application.
func (s *ApplicationService) FeeSlip(ctx context.Context, applicationID string) (*models.FeeSlip, error) {
	slips, err := s.repos.FeeSlips.Find(ctx, store.Filter{"application_id": applicationID})
	if err != nil {
		return nil, err
	}
	if len(slips) == 0 {
		return nil, apperrors.NotFound("fee slip not found")
	}
	return &slips[0], nil
}
