package services

import (
	"context"
	"errors"
	"time"

	"admission-backend/src/apperrors"
	"admission-backend/src/logger"
	"admission-backend/src/models"
)

// StatusService derives the AdmissionProcessStatus snapshot from the
// application, fee slip and loan collections.
type StatusService struct {
	repos *Repositories
	now   func() time.Time
}

func NewStatusService(repos *Repositories) *StatusService {
	return &StatusService{repos: repos, now: time.Now}
}

// Compute counts the current state without storing it.
func (s *StatusService) Compute(ctx context.Context) (*models.AdmissionProcessStatus, error) {
	apps, err := s.repos.Applications.All(ctx)
	if err != nil {
		return nil, err
	}
	slips, err := s.repos.FeeSlips.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	loans, err := s.repos.Loans.All(ctx)
	if err != nil {
		return nil, err
	}

	st := &models.AdmissionProcessStatus{
		TotalApplications: len(apps),
		FeeSlipsSent:      slips,
		LastUpdated:       s.now().UTC(),
	}
	for _, app := range apps {
		if app.Status.Reached(models.StatusDocumentsVerified) {
			st.VerifiedDocuments++
		}
		if app.Status.Reached(models.StatusShortlisted) {
			st.ShortlistedCandidates++
		}
		if app.Status.Reached(models.StatusAdmitted) {
			st.AdmittedStudents++
		}
	}
	for _, loan := range loans {
		if loan.Status != models.LoanRequested {
			st.LoansProcessed++
		}
	}
	return st, nil
}

// Refresh recomputes the snapshot and stores it.
func (s *StatusService) Refresh(ctx context.Context) (*models.AdmissionProcessStatus, error) {
	st, err := s.Compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Status.Save(ctx, st); err != nil {
		return nil, err
	}
	logger.Debug().Int("total_applications", st.TotalApplications).Msg("admission status snapshot refreshed")
	return st, nil
}

// Current recomputes the snapshot so reads never lag behind writes. The
// stored snapshot is served only when the recount cannot be saved.
func (s *StatusService) Current(ctx context.Context) (*models.AdmissionProcessStatus, error) {
	st, err := s.Refresh(ctx)
	if err == nil {
		return st, nil
	}
	stored, getErr := s.repos.Status.Get(ctx, models.AdmissionStatusID)
	if getErr != nil {
		if errors.Is(getErr, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, getErr
	}
	logger.Warn().Err(err).Msg("⚠️ serving stored admission status snapshot")
	return stored, nil
}
