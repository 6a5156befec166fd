package models

import "time"

// FeeSlip is issued once an application is admitted.
type FeeSlip struct {
	ID            string     `bson:"id" json:"id" validate:"required"`
	StudentID     string     `bson:"student_id" json:"student_id" validate:"required"`
	ApplicationID string     `bson:"application_id" json:"application_id" validate:"required"`
	Amount        float64    `bson:"amount" json:"amount" validate:"gt=0"`
	GeneratedDate time.Time  `bson:"generated_date" json:"generated_date"`
	DueDate       *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	IsPaid        bool       `bson:"is_paid" json:"is_paid"`
}

// Medium is the channel a message went out on.
type Medium string

const (
	MediumEmail  Medium = "email"
	MediumSMS    Medium = "sms"
	MediumPortal Medium = "portal"
)

// CommunicationLog records one message sent to a student.
type CommunicationLog struct {
	ID               string    `bson:"id" json:"id" validate:"required"`
	StudentID        string    `bson:"student_id" json:"student_id" validate:"required"`
	Message          string    `bson:"message" json:"message" validate:"required"`
	Stage            string    `bson:"stage,omitempty" json:"stage,omitempty"`
	SentBy           string    `bson:"sent_by" json:"sent_by"`
	Timestamp        time.Time `bson:"timestamp" json:"timestamp"`
	Medium           Medium    `bson:"medium" json:"medium" validate:"required,oneof=email sms portal"`
	ResponseRequired bool      `bson:"response_required" json:"response_required"`
	ResponseReceived bool      `bson:"response_received" json:"response_received"`
}

// AdmissionStatusID is the id of the stored snapshot.
const AdmissionStatusID = "current"

// AdmissionProcessStatus is a derived snapshot of the admission pipeline.
type AdmissionProcessStatus struct {
	TotalApplications     int       `bson:"total_applications" json:"total_applications"`
	VerifiedDocuments     int       `bson:"verified_documents" json:"verified_documents"`
	ShortlistedCandidates int       `bson:"shortlisted_candidates" json:"shortlisted_candidates"`
	AdmittedStudents      int       `bson:"admitted_students" json:"admitted_students"`
	FeeSlipsSent          int       `bson:"fee_slips_sent" json:"fee_slips_sent"`
	LoansProcessed        int       `bson:"loans_processed" json:"loans_processed"`
	LastUpdated           time.Time `bson:"last_updated" json:"last_updated"`
}
