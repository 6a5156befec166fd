package services_test

import (
	"context"
	"testing"
	"time"

	"admission-backend/src/apperrors"
	"admission-backend/src/models"
	"admission-backend/src/services"
	"admission-backend/src/store"
	"admission-backend/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepos(t *testing.T) (*services.Repositories, store.DocumentStore) {
	t.Helper()
	s := store.NewMemoryStore()
	require.NoError(t, store.InitCollections(context.Background(), s))
	return services.NewRepositories(s), s
}

func seedApplication(t *testing.T, repos *services.Repositories, id string, status models.ApplicationStatus) {
	t.Helper()
	require.NoError(t, repos.Applications.Save(context.Background(), &models.Application{
		ID:        id,
		StudentID: "stu-" + id,
		Status:    status,
		UpdatedOn: time.Now(),
	}))
}

func TestRepositoryRejectsInvalidRecords(t *testing.T) {
	repos, s := newRepos(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		record *models.Application
	}{
		{"missing student", &models.Application{ID: "a1", Status: models.StatusSubmitted}},
		{"unknown status", &models.Application{ID: "a1", StudentID: "s1", Status: "archived"}},
		{"marks out of range", &models.Application{ID: "a1", StudentID: "s1", Status: models.StatusSubmitted, Marks12: 140}},
		{"document without type", &models.Application{ID: "a1", StudentID: "s1", Status: models.StatusSubmitted, Documents: []models.Document{{Name: "x"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repos.Applications.Save(ctx, tt.record)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}

	all, err := s.GetAll(ctx, store.Applications)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected records never reach the store")
}

func TestRepositoryGetAndFind(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	seedApplication(t, repos, "a1", models.StatusSubmitted)
	seedApplication(t, repos, "a2", models.StatusRejected)

	got, err := repos.Applications.Get(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)

	_, err = repos.Applications.Get(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	submitted, err := repos.Applications.Find(ctx, store.Filter{"status": models.StatusSubmitted})
	require.NoError(t, err)
	require.Len(t, submitted, 1)
	assert.Equal(t, "a1", submitted[0].ID)

	n, err := repos.Applications.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRepositoryWrapsStoreFailures(t *testing.T) {
	failing := &testutil.FailingStore{DocumentStore: store.NewMemoryStore(), FailReads: true, FailWrites: true}
	repos := services.NewRepositories(failing)
	ctx := context.Background()

	_, err := repos.Students.Get(ctx, "s1")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, testutil.ErrStoreDown)

	err = repos.Students.Save(ctx, &models.Student{ID: "s1", Name: "Asha"})
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestIntakeSubmit(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	intake := services.NewIntakeService(repos)

	res, err := intake.Submit(ctx, models.IntakeRequest{
		Name:      "Meera Nair",
		Email:     "meera@example.com",
		Marks10:   92,
		Marks12:   89,
		Documents: []models.DocumentInput{{Type: models.DocPhoto}},
		Loan:      &models.LoanInput{AmountRequested: 75000, Purpose: "tuition"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.LoanRequestID)

	student, err := repos.Students.Get(ctx, res.StudentID)
	require.NoError(t, err)
	assert.Equal(t, []string{res.ApplicationID}, student.Applications)

	app, err := repos.Applications.Get(ctx, res.ApplicationID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, app.Status)
	assert.Equal(t, "Meera Nair", app.StudentName)
	require.Len(t, app.Documents, 1)
	assert.Equal(t, models.DocPhoto, app.Documents[0].Name)

	loan, err := repos.Loans.Get(ctx, res.LoanRequestID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanRequested, loan.Status)
	assert.Equal(t, res.StudentID, loan.StudentID)
}

func TestIntakeRejectsInvalidForm(t *testing.T) {
	repos, _ := newRepos(t)
	intake := services.NewIntakeService(repos)

	_, err := intake.Submit(context.Background(), models.IntakeRequest{Email: "not-an-email"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details, "name")
	assert.Contains(t, appErr.Details, "email")
}

func TestChangeStatus(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	apps := services.NewApplicationService(repos)
	seedApplication(t, repos, "a1", models.StatusSubmitted)

	got, err := apps.ChangeStatus(ctx, "a1", models.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, got.Status)

	_, err = apps.ChangeStatus(ctx, "a1", models.StatusUnderReview)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = apps.ChangeStatus(ctx, "a1", models.StatusRejected)
	require.NoError(t, err)

	_, err = apps.ChangeStatus(ctx, "missing", models.StatusAdmitted)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = apps.ChangeStatus(ctx, "a1", "archived")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestIssueFeeSlip(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	apps := services.NewApplicationService(repos)
	seedApplication(t, repos, "admitted", models.StatusAdmitted)
	seedApplication(t, repos, "pending", models.StatusShortlisted)

	_, err := apps.IssueFeeSlip(ctx, "pending", models.FeeSlipRequest{Amount: 1000})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = apps.IssueFeeSlip(ctx, "admitted", models.FeeSlipRequest{Amount: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	slip, err := apps.IssueFeeSlip(ctx, "admitted", models.FeeSlipRequest{Amount: 120000})
	require.NoError(t, err)
	assert.Equal(t, "stu-admitted", slip.StudentID)
	assert.False(t, slip.IsPaid)

	app, err := repos.Applications.Get(ctx, "admitted")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFeeSlipSent, app.Status)
}

func TestStatusServiceCounts(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	seedApplication(t, repos, "a1", models.StatusSubmitted)
	seedApplication(t, repos, "a2", models.StatusDocumentsVerified)
	seedApplication(t, repos, "a3", models.StatusShortlisted)
	seedApplication(t, repos, "a4", models.StatusAdmitted)
	seedApplication(t, repos, "a5", models.StatusRejected)
	require.NoError(t, repos.FeeSlips.Save(ctx, &models.FeeSlip{ID: "f1", StudentID: "s", ApplicationID: "a4", Amount: 10}))
	require.NoError(t, repos.Loans.Save(ctx,
		&models.LoanRequest{ID: "l1", StudentID: "s", AmountRequested: 5, Purpose: "books", Status: models.LoanRequested},
		&models.LoanRequest{ID: "l2", StudentID: "s", AmountRequested: 5, Purpose: "books", Status: models.LoanApproved},
	))

	svc := services.NewStatusService(repos)
	st, err := svc.Current(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, st.TotalApplications)
	assert.Equal(t, 3, st.VerifiedDocuments)
	assert.Equal(t, 2, st.ShortlistedCandidates)
	assert.Equal(t, 1, st.AdmittedStudents)
	assert.Equal(t, 1, st.FeeSlipsSent)
	assert.Equal(t, 1, st.LoansProcessed)

	stored, err := repos.Status.Get(ctx, models.AdmissionStatusID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.TotalApplications)
}

func TestStatusServiceReflectsLaterWrites(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	svc := services.NewStatusService(repos)
	seedApplication(t, repos, "a1", models.StatusSubmitted)

	st, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalApplications)

	seedApplication(t, repos, "a2", models.StatusShortlisted)
	require.NoError(t, repos.FeeSlips.Save(ctx, &models.FeeSlip{ID: "f1", StudentID: "s", ApplicationID: "a2", Amount: 10}))

	st, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalApplications)
	assert.Equal(t, 1, st.ShortlistedCandidates)
	assert.Equal(t, 1, st.FeeSlipsSent)
}

func TestStatusServiceFallsBackToStoredSnapshot(t *testing.T) {
	repos, s := newRepos(t)
	ctx := context.Background()
	seedApplication(t, repos, "a1", models.StatusSubmitted)
	_, err := services.NewStatusService(repos).Refresh(ctx)
	require.NoError(t, err)

	failing := &testutil.FailingStore{DocumentStore: s, FailWrites: true}
	svc := services.NewStatusService(services.NewRepositories(failing))
	seedApplication(t, repos, "a2", models.StatusSubmitted)

	st, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalApplications)
}

func TestBudgetService(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	budgets := services.NewBudgetService(repos)

	_, err := budgets.LoanBudget(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, budgets.EnsureLoanBudget(ctx, 0))
	_, err = budgets.LoanBudget(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, budgets.EnsureLoanBudget(ctx, 500000))
	b, err := budgets.LoanBudget(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, b.RemainingBudget)

	_, err = budgets.SetLoanBudget(ctx, models.BudgetRequest{TotalBudget: 100, RemainingBudget: 200})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = budgets.SetLoanBudget(ctx, models.BudgetRequest{TotalBudget: 900000, RemainingBudget: 400000})
	require.NoError(t, err)
	require.NoError(t, budgets.EnsureLoanBudget(ctx, 500000))
	b, err = budgets.LoanBudget(ctx)
	require.NoError(t, err)
	assert.Equal(t, 400000.0, b.RemainingBudget, "an existing budget is never reseeded")
}

func TestAgentRegistry(t *testing.T) {
	repos, _ := newRepos(t)
	ctx := context.Background()
	registry := services.NewAgentRegistry(repos)

	require.NoError(t, registry.Seed(ctx))
	require.NoError(t, registry.AssignTask(ctx, models.RoleLoanOfficer, "task-1"))
	require.NoError(t, registry.Seed(ctx))
	require.NoError(t, registry.AssignTask(ctx, models.RoleLoanOfficer, "task-2"))

	agents, err := registry.List(ctx)
	require.NoError(t, err)
	require.Len(t, agents, len(models.AgentRoles))

	loanOfficer, err := repos.Agents.Get(ctx, string(models.RoleLoanOfficer))
	require.NoError(t, err)
	assert.Equal(t, "Student Loan Officer", loanOfficer.Name)
	assert.True(t, loanOfficer.Active)
	assert.Equal(t, []string{"task-1", "task-2"}, loanOfficer.AssignedTasks)
}
