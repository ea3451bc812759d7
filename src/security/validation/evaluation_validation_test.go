// backend/src/security/validation/evaluation_validation_test.go
package validation

import (
	"testing"

	"github.com/username/propfolio/backend/src/models"
)

func validBasicInput() models.EvaluationInput {
	return models.EvaluationInput{
		PurchasePriceCents:       30_000_000,
		ExpectedMonthlyRentCents: 150_000,
		EquityCents:              6_000_000,
		InterestRatePct:          3,
		LoanTermYears:            25,
		MonthlyOtherCostsCents:   20_000,
	}
}

func TestValidateEvaluationInput(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.EvaluationInput)
		wantErr bool
	}{
		{"valid", func(i *models.EvaluationInput) {}, false},
		{"zero price", func(i *models.EvaluationInput) { i.PurchasePriceCents = 0 }, true},
		{"negative price", func(i *models.EvaluationInput) { i.PurchasePriceCents = -1 }, true},
		{"negative rent", func(i *models.EvaluationInput) { i.ExpectedMonthlyRentCents = -1 }, true},
		{"negative equity", func(i *models.EvaluationInput) { i.EquityCents = -1 }, true},
		{"negative interest", func(i *models.EvaluationInput) { i.InterestRatePct = -0.5 }, true},
		{"interest above cap", func(i *models.EvaluationInput) { i.InterestRatePct = 101 }, true},
		{"zero interest ok", func(i *models.EvaluationInput) { i.InterestRatePct = 0 }, false},
		{"zero term", func(i *models.EvaluationInput) { i.LoanTermYears = 0 }, true},
		{"term above cap", func(i *models.EvaluationInput) { i.LoanTermYears = 101 }, true},
		{"negative other costs", func(i *models.EvaluationInput) { i.MonthlyOtherCostsCents = -1 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validBasicInput()
			tc.mutate(&input)
			err := ValidateEvaluationInput(input)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func validAdvancedInput() models.AdvancedEvaluationInput {
	return models.AdvancedEvaluationInput{
		PurchasePrice:       500_000,
		MonthlyRent:         2_000,
		Equity:              100_000,
		InterestRatePct:     2,
		AcquisitionCostRate: 0.05,
		VacancyRate:         0.05,
		PropertyMgmtRate:    0.05,
		LoanType:            models.LoanTypeAnnuity,
		LoanTermYears:       10,
	}
}

func TestValidateAdvancedInput(t *testing.T) {
	badFraction := models.Fraction(1.5)
	negativeFraction := models.Fraction(-0.1)

	cases := []struct {
		name    string
		mutate  func(*models.AdvancedEvaluationInput)
		wantErr bool
	}{
		{"valid", func(i *models.AdvancedEvaluationInput) {}, false},
		{"zero price", func(i *models.AdvancedEvaluationInput) { i.PurchasePrice = 0 }, true},
		{"negative rent", func(i *models.AdvancedEvaluationInput) { i.MonthlyRent = -1 }, true},
		{"negative equity", func(i *models.AdvancedEvaluationInput) { i.Equity = -1 }, true},
		{"interest above cap", func(i *models.AdvancedEvaluationInput) { i.InterestRatePct = 150 }, true},
		{"acquisition rate above one", func(i *models.AdvancedEvaluationInput) { i.AcquisitionCostRate = badFraction }, true},
		{"vacancy rate negative", func(i *models.AdvancedEvaluationInput) { i.VacancyRate = negativeFraction }, true},
		{"maintenance rate above one", func(i *models.AdvancedEvaluationInput) { i.MaintenanceRate = &badFraction }, true},
		{"maintenance rate nil ok", func(i *models.AdvancedEvaluationInput) { i.MaintenanceRate = nil }, false},
		{"tax rate above one", func(i *models.AdvancedEvaluationInput) { i.MarginalTaxRate = &badFraction }, true},
		{"unknown loan type", func(i *models.AdvancedEvaluationInput) { i.LoanType = "balloon" }, true},
		{"empty loan type ok", func(i *models.AdvancedEvaluationInput) { i.LoanType = "" }, false},
		{"interest-only ok", func(i *models.AdvancedEvaluationInput) { i.LoanType = models.LoanTypeInterestOnly }, false},
		{"zero term ok", func(i *models.AdvancedEvaluationInput) { i.LoanTermYears = 0 }, false},
		{"negative term", func(i *models.AdvancedEvaluationInput) { i.LoanTermYears = -1 }, true},
		{"term above cap", func(i *models.AdvancedEvaluationInput) { i.LoanTermYears = 101 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validAdvancedInput()
			tc.mutate(&input)
			err := ValidateAdvancedInput(input)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateLoanData(t *testing.T) {
	cases := []struct {
		name    string
		loan    models.PropertyLoanData
		wantErr bool
	}{
		{"valid", models.PropertyLoanData{LoanPrincipalCents: 30_000_000, InterestRatePct: 2, AmortizationRatePct: 1}, false},
		{"all zero ok", models.PropertyLoanData{}, false},
		{"negative principal", models.PropertyLoanData{LoanPrincipalCents: -1}, true},
		{"interest above cap", models.PropertyLoanData{InterestRatePct: 101}, true},
		{"negative amortization", models.PropertyLoanData{AmortizationRatePct: -1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLoanData(tc.loan)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
