package services

import (
	"context"
	"errors"
	"time"

	"admission-backend/src/apperrors"
	"admission-backend/src/logger"
	"admission-backend/src/models"
	"admission-backend/src/store"
)

// BudgetService reads and sets university budget lines.
type BudgetService struct {
	repos *Repositories
	now   func() time.Time
}

func NewBudgetService(repos *Repositories) *BudgetService {
	return &BudgetService{repos: repos, now: time.Now}
}

// LoanBudget returns the first budget record of type loan.
func (s *BudgetService) LoanBudget(ctx context.Context) (*models.UniversityBudget, error) {
	budgets, err := s.repos.Budgets.Find(ctx, store.Filter{"type": models.BudgetTypeLoan})
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, apperrors.NotFound("loan budget is not configured")
	}
	return &budgets[0], nil
}

// SetLoanBudget overwrites the loan budget record.
func (s *BudgetService) SetLoanBudget(ctx context.Context, req models.BudgetRequest) (*models.UniversityBudget, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	b := &models.UniversityBudget{
		ID:              models.BudgetTypeLoan,
		Type:            models.BudgetTypeLoan,
		TotalBudget:     req.TotalBudget,
		RemainingBudget: req.RemainingBudget,
		UpdatedOn:       s.now().UTC(),
	}
	if err := s.repos.Budgets.Save(ctx, b); err != nil {
		return nil, err
	}
	logger.Info().Float64("remaining_budget", b.RemainingBudget).Msg("✅ loan budget updated")
	return b, nil
}

// EnsureLoanBudget seeds the loan budget with initial when none exists.
// A non-positive initial leaves the collection untouched.
func (s *BudgetService) EnsureLoanBudget(ctx context.Context, initial float64) error {
	if initial <= 0 {
		return nil
	}
	_, err := s.LoanBudget(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	_, err = s.SetLoanBudget(ctx, models.BudgetRequest{TotalBudget: initial, RemainingBudget: initial})
	return err
}
