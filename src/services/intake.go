package services

import (
	"context"
	"time"

	"admission-backend/src/logger"
	"admission-backend/src/models"

	"github.com/google/uuid"
)

// IntakeService records admission-form submissions.
type IntakeService struct {
	repos *Repositories
	now   func() time.Time
}

func NewIntakeService(repos *Repositories) *IntakeService {
	return &IntakeService{repos: repos, now: time.Now}
}

// Submit stores a new student, their application and an optional loan
// request. Each record gets a fresh uuid.
func (s *IntakeService) Submit(ctx context.Context, req models.IntakeRequest) (*models.IntakeResult, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	now := s.now().UTC()

	studentID := uuid.NewString()
	appID := uuid.NewString()

	docs := make([]models.Document, 0, len(req.Documents))
	for _, d := range req.Documents {
		name := d.Name
		if name == "" {
			name = d.Type
		}
		docs = append(docs, models.Document{Name: name, Type: d.Type, UploadedDate: now})
	}

	student := &models.Student{
		ID:           studentID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Applications: []string{appID},
	}
	app := &models.Application{
		ID:               appID,
		StudentID:        studentID,
		StudentName:      req.Name,
		SubmissionDate:   now,
		Status:           models.StatusSubmitted,
		Documents:        docs,
		Marks10:          req.Marks10,
		Marks12:          req.Marks12,
		AadharNo:         req.AadharNo,
		IncomeCategory:   req.IncomeCategory,
		Extracurriculars: req.Extracurriculars,
		Notes:            req.Notes,
		UpdatedOn:        now,
	}

	if err := s.repos.Students.Save(ctx, student); err != nil {
		return nil, err
	}
	if err := s.repos.Applications.Save(ctx, app); err != nil {
		return nil, err
	}

	result := &models.IntakeResult{StudentID: studentID, ApplicationID: appID}
	if req.Loan != nil {
		loan := NewLoanRequest(studentID, *req.Loan, now)
		if err := s.repos.Loans.Save(ctx, loan); err != nil {
			return nil, err
		}
		result.LoanRequestID = loan.ID
	}

	logger.Info().
		Str("student_id", studentID).
		Str("application_id", appID).
		Bool("loan", req.Loan != nil).
		Msg("✅ admission form submitted")
	return result, nil
}

// NewLoanRequest builds a requested-status loan record for studentID.
func NewLoanRequest(studentID string, in models.LoanInput, now time.Time) *models.LoanRequest {
	return &models.LoanRequest{
		ID:              uuid.NewString(),
		StudentID:       studentID,
		AmountRequested: in.AmountRequested,
		Purpose:         in.Purpose,
		Status:          models.LoanRequested,
		SubmittedOn:     now,
	}
}
