package processors

import (
	"testing"
	"time"

	"github.com/username/propfolio/backend/src/models"
)

func TestCalculateMonthlyPayments(t *testing.T) {
	// 300k loan at 2% interest, 1% amortization.
	loan := models.PropertyLoanData{
		LoanPrincipalCents:  30_000_000,
		InterestRatePct:     2,
		AmortizationRatePct: 1,
	}

	payments := NewLoanProcessor().CalculateMonthlyPayments(loan)

	if !almostEqual(payments.MonthlyInterestPayment, 500) {
		t.Errorf("interest = %v, want 500", payments.MonthlyInterestPayment)
	}
	if !almostEqual(payments.MonthlyAmortizationPayment, 250) {
		t.Errorf("amortization = %v, want 250", payments.MonthlyAmortizationPayment)
	}
	if !almostEqual(payments.TotalMonthlyPayment, 750) {
		t.Errorf("total = %v, want 750", payments.TotalMonthlyPayment)
	}
}

func TestCalculateMonthlyPaymentsMissingParams(t *testing.T) {
	cases := []struct {
		name string
		loan models.PropertyLoanData
	}{
		{"no principal", models.PropertyLoanData{InterestRatePct: 2, AmortizationRatePct: 1}},
		{"no interest rate", models.PropertyLoanData{LoanPrincipalCents: 30_000_000, AmortizationRatePct: 1}},
		{"no amortization rate", models.PropertyLoanData{LoanPrincipalCents: 30_000_000, InterestRatePct: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payments := NewLoanProcessor().CalculateMonthlyPayments(tc.loan)
			if payments.TotalMonthlyPayment != 0 {
				t.Errorf("total = %v, want 0", payments.TotalMonthlyPayment)
			}
		})
	}
}

func TestGenerateNext12MonthsExpenses(t *testing.T) {
	loan := models.PropertyLoanData{
		LoanPrincipalCents:  30_000_000,
		InterestRatePct:     2,
		AmortizationRatePct: 1,
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	expenses := NewLoanProcessor().GenerateNext12MonthsExpenses("prop-1", loan, start)

	// Thirteen months inclusive (Jan through next Jan), two records each.
	if len(expenses) != 26 {
		t.Fatalf("expected 26 expenses, got %d", len(expenses))
	}

	first, second := expenses[0], expenses[1]
	if first.Category != models.ExpenseCategoryLoanInterest {
		t.Errorf("first category = %s, want %s", first.Category, models.ExpenseCategoryLoanInterest)
	}
	if first.AmountCents != 50_000 {
		t.Errorf("interest amount = %d, want 50000", first.AmountCents)
	}
	if second.Category != models.ExpenseCategoryLoanAmortization {
		t.Errorf("second category = %s, want %s", second.Category, models.ExpenseCategoryLoanAmortization)
	}
	if second.AmountCents != 25_000 {
		t.Errorf("amortization amount = %d, want 25000", second.AmountCents)
	}
	if !first.Date.Equal(start) {
		t.Errorf("first date = %v, want %v", first.Date, start)
	}

	last := expenses[len(expenses)-1]
	wantLast := start.AddDate(1, 0, 0)
	if !last.Date.Equal(wantLast) {
		t.Errorf("last date = %v, want %v", last.Date, wantLast)
	}
	for _, e := range expenses {
		if e.PropertyID != "prop-1" {
			t.Errorf("property id = %s, want prop-1", e.PropertyID)
		}
	}
}

func TestGenerateExpensesSingleMonth(t *testing.T) {
	loan := models.PropertyLoanData{
		LoanPrincipalCents:  30_000_000,
		InterestRatePct:     2,
		AmortizationRatePct: 1,
	}
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	expenses := NewLoanProcessor().GenerateExpenses("prop-1", loan, day, day)

	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
}

func TestGenerateExpensesNoPayments(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	expenses := NewLoanProcessor().GenerateExpenses("prop-1", models.PropertyLoanData{}, start, start.AddDate(1, 0, 0))
	if expenses != nil {
		t.Errorf("expected nil expenses, got %d records", len(expenses))
	}
}
