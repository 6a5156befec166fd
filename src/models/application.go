package models

import "time"

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusSubmitted         ApplicationStatus = "submitted"
	StatusUnderReview       ApplicationStatus = "under_review"
	StatusDocumentsVerified ApplicationStatus = "documents_verified"
	StatusShortlisted       ApplicationStatus = "shortlisted"
	StatusRejected          ApplicationStatus = "rejected"
	StatusAdmitted          ApplicationStatus = "admitted"
	StatusFeeSlipSent       ApplicationStatus = "fee_slip_sent"
)

// statusRank orders the forward path. Rejected sits outside it.
var statusRank = map[ApplicationStatus]int{
	StatusSubmitted:         0,
	StatusUnderReview:       1,
	StatusDocumentsVerified: 2,
	StatusShortlisted:       3,
	StatusAdmitted:          4,
	StatusFeeSlipSent:       5,
}

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	if s == StatusRejected {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether no further transition is possible.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusRejected || s == StatusFeeSlipSent
}

// CanTransitionTo allows forward moves along the status ordering and
// rejection from any non-terminal state.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() || s == next {
		return false
	}
	if next == StatusRejected {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// Reached reports whether s is target or further along the forward path.
// A rejected application has reached nothing.
func (s ApplicationStatus) Reached(target ApplicationStatus) bool {
	if s == StatusRejected || !s.Valid() {
		return false
	}
	return statusRank[s] >= statusRank[target]
}

// Application is one admission application. Intake fields are stored flat
// next to the lifecycle fields.
type Application struct {
	ID             string            `bson:"id" json:"id" validate:"required"`
	StudentID      string            `bson:"student_id" json:"student_id" validate:"required"`
	StudentName    string            `bson:"student_name,omitempty" json:"student_name,omitempty"`
	SubmissionDate time.Time         `bson:"submission_date" json:"submission_date"`
	Status         ApplicationStatus `bson:"status" json:"status" validate:"required,oneof=submitted under_review documents_verified shortlisted rejected admitted fee_slip_sent"`
	Documents      []Document        `bson:"documents,omitempty" json:"documents,omitempty" validate:"dive"`
	Eligible       bool              `bson:"eligible" json:"eligible"`
	ShortlistedBy  string            `bson:"shortlisted_by,omitempty" json:"shortlisted_by,omitempty"`
	UpdatedOn      time.Time         `bson:"updated_on" json:"updated_on"`

	Marks10          float64 `bson:"marks_10" json:"marks_10" validate:"gte=0,lte=100"`
	Marks12          float64 `bson:"marks_12" json:"marks_12" validate:"gte=0,lte=100"`
	AadharNo         string  `bson:"aadhar_no,omitempty" json:"aadhar_no,omitempty"`
	IncomeCategory   string  `bson:"income_category,omitempty" json:"income_category,omitempty"`
	Extracurriculars string  `bson:"extracurriculars,omitempty" json:"extracurriculars,omitempty"`
	Notes            string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// DocumentsByType indexes the submitted documents by type. A later document
// of the same type replaces an earlier one.
func (a Application) DocumentsByType() map[string]Document {
	out := make(map[string]Document, len(a.Documents))
	for _, d := range a.Documents {
		out[d.Type] = d
	}
	return out
}
