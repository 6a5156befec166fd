// Package seeder fills an empty store with sample admission forms for
// local development.
package seeder

import (
	"context"
	"fmt"

	"admission-backend/src/logger"
	"admission-backend/src/models"
	"admission-backend/src/services"
)

// SampleForms are submitted by SeedDemoApplications.
var SampleForms = []models.IntakeRequest{
	{
		Name:           "Ananya Sharma",
		Email:          "ananya.sharma@example.com",
		Phone:          "+91-9800000001",
		Marks10:        94,
		Marks12:        91.5,
		IncomeCategory: "below_2_lakh",
		Documents: []models.DocumentInput{
			{Type: models.DocIdentityProof},
			{Type: models.DocTranscripts},
			{Type: models.DocResidenceProof},
			{Type: models.DocPhoto},
			{Type: models.DocIncomeCertificate},
		},
		Loan: &models.LoanInput{AmountRequested: 150000, Purpose: "tuition fees"},
	},
	{
		Name:             "Rahul Verma",
		Email:            "rahul.verma@example.com",
		Marks10:          81,
		Marks12:          77,
		IncomeCategory:   "2_to_5_lakh",
		Extracurriculars: "state-level football",
		Documents: []models.DocumentInput{
			{Type: models.DocIdentityProof},
			{Type: models.DocPhoto},
		},
	},
	{
		Name:    "Meera Iyer",
		Email:   "meera.iyer@example.com",
		Marks10: 88,
		Marks12: 90,
		Notes:   "applied for the scholarship track",
		Documents: []models.DocumentInput{
			{Type: models.DocIdentityProof},
			{Type: models.DocTranscripts},
			{Type: models.DocPhoto},
		},
	},
}

// SeedDemoApplications submits SampleForms when no application exists yet.
// It returns how many forms were submitted.
func SeedDemoApplications(ctx context.Context, repos *services.Repositories, intake *services.IntakeService) (int, error) {
	existing, err := repos.Applications.Count(ctx, nil)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		logger.Info().Int("applications", existing).Msg("⚠️ applications already present, skipping demo seed")
		return 0, nil
	}

	for i, form := range SampleForms {
		if _, err := intake.Submit(ctx, form); err != nil {
			return i, fmt.Errorf("seed %s: %w", form.Name, err)
		}
	}
	logger.Info().Int("applications", len(SampleForms)).Msg("✅ demo applications seeded")
	return len(SampleForms), nil
}
