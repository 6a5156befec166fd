package models

import "time"

// LoanStatus is the lifecycle state of a loan request.
type LoanStatus string

const (
	LoanRequested    LoanStatus = "requested"
	LoanUnderProcess LoanStatus = "under_process"
	LoanApproved     LoanStatus = "approved"
	LoanRejected     LoanStatus = "rejected"
	LoanDisbursed    LoanStatus = "disbursed"
)

// LoanRequest is a student's request for financial support.
type LoanRequest struct {
	ID              string     `bson:"id" json:"id" validate:"required"`
	StudentID       string     `bson:"student_id" json:"student_id" validate:"required"`
	AmountRequested float64    `bson:"amount_requested" json:"amount_requested" validate:"gt=0"`
	Purpose         string     `bson:"purpose" json:"purpose" validate:"required"`
	Status          LoanStatus `bson:"status" json:"status" validate:"required,oneof=requested under_process approved rejected disbursed"`
	EvaluationNotes string     `bson:"evaluation_notes,omitempty" json:"evaluation_notes,omitempty"`
	EvaluatedBy     string     `bson:"evaluated_by,omitempty" json:"evaluated_by,omitempty"`
	ApprovedAmount  float64    `bson:"approved_amount,omitempty" json:"approved_amount,omitempty" validate:"gte=0"`
	SubmittedOn     time.Time  `bson:"submitted_on" json:"submitted_on"`
	DecisionDate    *time.Time `bson:"decision_date,omitempty" json:"decision_date,omitempty"`
}

// BudgetTypeLoan is the budget record consulted by loan evaluation.
const BudgetTypeLoan = "loan"

// UniversityBudget holds one budget line, keyed by Type.
type UniversityBudget struct {
	ID              string    `bson:"id" json:"id" validate:"required"`
	Type            string    `bson:"type" json:"type" validate:"required"`
	TotalBudget     float64   `bson:"total_budget" json:"total_budget" validate:"gte=0"`
	RemainingBudget float64   `bson:"remaining_budget" json:"remaining_budget" validate:"gte=0,ltefield=TotalBudget"`
	UpdatedOn       time.Time `bson:"updated_on" json:"updated_on"`
}
