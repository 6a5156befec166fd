package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDocumentStatus(t *testing.T) {
	submitted := map[string]Document{
		DocIdentityProof: {Name: "aadhar.pdf", Type: DocIdentityProof},
		DocPhoto:         {Name: "me.jpg", Type: DocPhoto},
	}

	status := ComputeDocumentStatus(submitted)

	assert.Equal(t, map[string]DocumentState{
		DocIdentityProof:     DocumentValid,
		DocPhoto:             DocumentValid,
		DocTranscripts:       DocumentMissing,
		DocResidenceProof:    DocumentMissing,
		DocIncomeCertificate: DocumentMissing,
	}, status)
	assert.False(t, DocumentsComplete(status))
}

func TestComputeDocumentStatusCompleteAndExtras(t *testing.T) {
	submitted := map[string]Document{"recommendation_letter": {}}
	for _, doc := range RequiredDocuments {
		submitted[doc] = Document{Type: doc}
	}

	status := ComputeDocumentStatus(submitted)

	assert.Len(t, status, len(RequiredDocuments))
	assert.True(t, DocumentsComplete(status))
	assert.True(t, DocumentsComplete(ComputeDocumentStatus(Application{Documents: []Document{
		{Type: DocIdentityProof}, {Type: DocTranscripts}, {Type: DocResidenceProof}, {Type: DocPhoto}, {Type: DocIncomeCertificate},
	}}.DocumentsByType())))
	assert.False(t, DocumentsComplete(ComputeDocumentStatus(nil)))
}

func TestApplicationStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusSubmitted, StatusUnderReview, true},
		{StatusSubmitted, StatusDocumentsVerified, true},
		{StatusDocumentsVerified, StatusShortlisted, true},
		{StatusShortlisted, StatusAdmitted, true},
		{StatusAdmitted, StatusFeeSlipSent, true},
		{StatusShortlisted, StatusUnderReview, false},
		{StatusAdmitted, StatusSubmitted, false},
		{StatusSubmitted, StatusSubmitted, false},
		{StatusUnderReview, StatusRejected, true},
		{StatusAdmitted, StatusRejected, true},
		{StatusRejected, StatusSubmitted, false},
		{StatusRejected, StatusAdmitted, false},
		{StatusFeeSlipSent, StatusRejected, false},
		{StatusSubmitted, "archived", false},
		{"archived", StatusSubmitted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	submitted := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	app := Application{
		ID:             "app-1",
		StudentID:      "stu-1",
		StudentName:    "Asha",
		SubmissionDate: submitted,
		Status:         StatusSubmitted,
		Documents:      []Document{{Name: "id.pdf", Type: DocIdentityProof, UploadedDate: submitted}},
		Marks10:        88.5,
		Marks12:        91,
		UpdatedOn:      submitted,
	}

	meta, err := ToMetadata(app)
	require.NoError(t, err)
	assert.Equal(t, "submitted", meta["status"])
	assert.Equal(t, "stu-1", meta["student_id"])
	assert.IsType(t, time.Time{}, meta["submission_date"])
	assert.IsType(t, []interface{}{}, meta["documents"])
	_, hasNotes := meta["notes"]
	assert.False(t, hasNotes, "omitempty fields stay out of the attribute map")

	var back Application
	require.NoError(t, FromMetadata(meta, &back))
	assert.Equal(t, app.ID, back.ID)
	assert.Equal(t, app.Status, back.Status)
	assert.Equal(t, app.Marks12, back.Marks12)
	assert.True(t, submitted.Equal(back.SubmissionDate))
	require.Len(t, back.Documents, 1)
	assert.Equal(t, DocIdentityProof, back.Documents[0].Type)
}

func TestFromMetadataAcceptsLooseNumbers(t *testing.T) {
	var loan LoanRequest
	require.NoError(t, FromMetadata(map[string]interface{}{
		"id":               "loan-1",
		"student_id":       "stu-1",
		"amount_requested": 50000,
		"status":           "requested",
	}, &loan))
	assert.Equal(t, 50000.0, loan.AmountRequested)
	assert.Equal(t, LoanRequested, loan.Status)

	var empty Student
	assert.NoError(t, FromMetadata(nil, &empty))
}

func TestStudentHistoryHelpers(t *testing.T) {
	s := Student{ID: "s1", Name: "Ravi"}
	s.AddApplication("a1")
	s.AddApplication("a1")
	s.AddCommunication("log-1")
	s.AddCommunication("log-2")

	assert.Equal(t, []string{"a1"}, s.Applications)
	assert.Equal(t, []string{"log-1", "log-2"}, s.CommunicationHistory)
}

func TestPagination(t *testing.T) {
	p := PaginationParams{Page: 2, Limit: 3}
	start, end := p.Bounds(7)
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	start, end = PaginationParams{Page: 5, Limit: 3}.Bounds(7)
	assert.Equal(t, 7, start)
	assert.Equal(t, 7, end)

	var q PaginationParams
	assert.False(t, q.Paged())
	q.Limit = 1000
	q.Clamp()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, maxPageLimit, q.Limit)

	resp := NewPaginatedResponse([]int{4, 5, 6}, 7, p)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrevious)
}

func TestAgentRoleDisplayName(t *testing.T) {
	assert.Equal(t, "Student Loan Officer", RoleLoanOfficer.DisplayName())
	assert.Equal(t, "custom", AgentRole("custom").DisplayName())
	assert.Len(t, AgentRoles, 5)
}
