package agents

import (
	"context"
	"errors"
	"strconv"
	"time"

	"admission-backend/src/apperrors"
	"admission-backend/src/models"
	"admission-backend/src/services"
	"admission-backend/src/store"
)

// LoanOfficer records loan requests and evaluates pending ones against the
// loan budget.
type LoanOfficer struct {
	base
	budgets *services.BudgetService
	now     func() time.Time
}

func NewLoanOfficer(deps Deps, budgets *services.BudgetService) *LoanOfficer {
	return &LoanOfficer{
		base:    base{Deps: deps, role: models.RoleLoanOfficer},
		budgets: budgets,
		now:     time.Now,
	}
}

// SubmitRequest stores a loan request for an existing student, then runs
// an evaluation round. The new request id is reported in Detail.
func (o *LoanOfficer) SubmitRequest(ctx context.Context, studentID string, in models.LoanInput) (res Result) {
	const op = "submit loan request"
	defer o.recoverInto(op, &res)

	if err := services.Validate(in); err != nil {
		return ValidationFailed(err.Error())
	}
	l := o.log(op).With().Str("student_id", studentID).Logger()

	if _, err := o.Repos.Students.Get(ctx, studentID); err != nil {
		return storeFailure(l, err, MsgStudentNotFound)
	}
	loan := services.NewLoanRequest(studentID, in, o.now().UTC())
	if err := o.Repos.Loans.Save(ctx, loan); err != nil {
		return storeFailure(l, err, "")
	}
	l.Info().Str("loan_id", loan.ID).Msg("✅ loan request recorded")

	res = o.EvaluateRequests(ctx)
	recorded := "loan request " + loan.ID + " recorded"
	if res.Detail == "" {
		res.Detail = recorded
	} else {
		res.Detail = recorded + "; " + res.Detail
	}
	return res
}

// EvaluateRequests reads pending requests, then the loan budget, and asks
// the model for decisions. Evaluated requests move to under_process with
// the response as evaluation notes.
func (o *LoanOfficer) EvaluateRequests(ctx context.Context) (res Result) {
	const op = "evaluate loans"
	defer o.recoverInto(op, &res)
	l := o.begin(ctx, op)

	requests, err := o.Repos.Loans.Find(ctx, store.Filter{"status": models.LoanRequested})
	if err != nil {
		return storeFailure(l, err, "")
	}
	budget, err := o.budgets.LoanBudget(ctx)
	if err != nil {
		res = storeFailure(l, err, MsgLoanBudgetMissing)
		if res.Kind == KindNotFound {
			return NothingToProcess(MsgLoanBudgetMissing)
		}
		return res
	}
	if len(requests) == 0 {
		l.Warn().Msg("⚠️ " + MsgNoLoanRequests)
		return NothingToProcess(MsgNoLoanRequests)
	}

	prompt, err := render(loanPrompt, struct {
		RemainingBudget string
		Requests        []models.LoanRequest
	}{strconv.FormatFloat(budget.RemainingBudget, 'f', -1, 64), requests})
	if err != nil {
		return UpstreamUnavailable("render prompt: " + err.Error())
	}
	res = o.generate(ctx, l, prompt)
	if res.Failed() {
		return res
	}

	now := o.now().UTC()
	// Only requests still pending after the model call are updated.
	evaluated := make([]*models.LoanRequest, 0, len(requests))
	for i := range requests {
		loan, err := o.Repos.Loans.Get(ctx, requests[i].ID)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return storeFailure(l, err, "")
		}
		if loan.Status != models.LoanRequested {
			continue
		}
		loan.Status = models.LoanUnderProcess
		loan.EvaluatedBy = string(models.RoleLoanOfficer)
		loan.EvaluationNotes = res.Text
		loan.DecisionDate = &now
		evaluated = append(evaluated, loan)
	}
	if err := o.Repos.Loans.Save(ctx, evaluated...); err != nil {
		return storeFailure(l, err, "")
	}
	return res
}
