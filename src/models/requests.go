package models

import "time"

// IntakeRequest is the admission form: a student, their application and an
// optional loan request.
type IntakeRequest struct {
	Name             string          `json:"name" validate:"required"`
	Email            string          `json:"email" validate:"omitempty,email"`
	Phone            string          `json:"phone"`
	Marks10          float64         `json:"marks_10" validate:"gte=0,lte=100"`
	Marks12          float64         `json:"marks_12" validate:"gte=0,lte=100"`
	AadharNo         string          `json:"aadhar_no"`
	IncomeCategory   string          `json:"income_category"`
	Extracurriculars string          `json:"extracurriculars"`
	Notes            string          `json:"notes"`
	Documents        []DocumentInput `json:"documents" validate:"dive"`
	Loan             *LoanInput      `json:"loan,omitempty"`
}

// DocumentInput is one document declared on the form.
type DocumentInput struct {
	Name string `json:"name"`
	Type string `json:"type" validate:"required"`
}

// LoanInput is the body of a loan request.
type LoanInput struct {
	AmountRequested float64 `json:"amount_requested" validate:"gt=0"`
	Purpose         string  `json:"purpose" validate:"required"`
}

// IntakeResult carries the ids created by an intake.
type IntakeResult struct {
	StudentID     string `json:"student_id"`
	ApplicationID string `json:"application_id"`
	LoanRequestID string `json:"loan_request_id,omitempty"`
}

// CommunicateRequest carries the admission stage to tell the student about.
type CommunicateRequest struct {
	Content string `json:"content" validate:"required"`
}

// ChatRequest is a free-form question, optionally about one application.
type ChatRequest struct {
	Content       string `json:"content" validate:"required"`
	ApplicationID string `json:"application_id,omitempty"`
}

// StatusChangeRequest moves an application to a new status.
type StatusChangeRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
}

// FeeSlipRequest issues a fee slip for an admitted application.
type FeeSlipRequest struct {
	Amount  float64    `json:"amount" validate:"gt=0"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// BudgetRequest sets the loan budget.
type BudgetRequest struct {
	TotalBudget     float64 `json:"total_budget" validate:"gte=0"`
	RemainingBudget float64 `json:"remaining_budget" validate:"gte=0,ltefield=TotalBudget"`
}

// TaskRequest enqueues a background agent run.
type TaskRequest struct {
	Type          string `json:"type" validate:"required,oneof=screen shortlist verify_documents evaluate_loans"`
	ApplicationID string `json:"application_id,omitempty" validate:"required_if=Type shortlist,required_if=Type verify_documents"`
}

// TaskResponse reports an enqueued background run.
type TaskResponse struct {
	TaskID string `json:"task_id"`
	Type   string `json:"type"`
	Queue  string `json:"queue"`
}
