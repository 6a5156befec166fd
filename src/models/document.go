package models

import "time"

// Required document types for a complete application.
const (
	DocIdentityProof     = "identity_proof"
	DocTranscripts       = "transcripts"
	DocResidenceProof    = "residence_proof"
	DocPhoto             = "photo"
	DocIncomeCertificate = "income_certificate"
)

// RequiredDocuments is the fixed set checked for completeness, in display order.
var RequiredDocuments = []string{
	DocIdentityProof,
	DocTranscripts,
	DocResidenceProof,
	DocPhoto,
	DocIncomeCertificate,
}

// DocumentState is the local verdict for one required document.
type DocumentState string

const (
	DocumentValid   DocumentState = "valid"
	DocumentMissing DocumentState = "missing"
)

// Document is a file submitted with an application. Type is open-ended.
type Document struct {
	Name         string    `bson:"name" json:"name"`
	Type         string    `bson:"type" json:"type" validate:"required"`
	UploadedDate time.Time `bson:"uploaded_date" json:"uploaded_date"`
	IsValid      bool      `bson:"is_valid" json:"is_valid"`
	Remarks      string    `bson:"remarks,omitempty" json:"remarks,omitempty"`
}

// ComputeDocumentStatus marks each required type valid when present in
// submitted and missing otherwise. Extra submitted types are ignored.
func ComputeDocumentStatus(submitted map[string]Document) map[string]DocumentState {
	status := make(map[string]DocumentState, len(RequiredDocuments))
	for _, doc := range RequiredDocuments {
		if _, ok := submitted[doc]; ok {
			status[doc] = DocumentValid
		} else {
			status[doc] = DocumentMissing
		}
	}
	return status
}

// DocumentsComplete reports whether every required document is valid.
func DocumentsComplete(status map[string]DocumentState) bool {
	for _, doc := range RequiredDocuments {
		if status[doc] != DocumentValid {
			return false
		}
	}
	return true
}
