package models

import "time"

// ExpenseCategory classifies generated loan expense records.
type ExpenseCategory string

const (
	ExpenseCategoryLoanInterest     ExpenseCategory = "LOAN_INTEREST"
	ExpenseCategoryLoanAmortization ExpenseCategory = "LOAN_AMORTIZATION"
)

// PropertyLoanData describes a property loan by its principal and the two
// annual rates used for the Swiss-style interest/amortization split.
type PropertyLoanData struct {
	LoanPrincipalCents  Cents   `json:"loanPrincipalCents"`
	InterestRatePct     Percent `json:"interestRatePct"`
	AmortizationRatePct Percent `json:"amortizationRatePct"`
}

// LoanPaymentBreakdown is the monthly payment split for a property loan,
// in whole francs.
type LoanPaymentBreakdown struct {
	MonthlyInterestPayment     float64 `json:"monthlyInterestPayment"`
	MonthlyAmortizationPayment float64 `json:"monthlyAmortizationPayment"`
	TotalMonthlyPayment        float64 `json:"totalMonthlyPayment"`
}

// LoanExpense is one generated expense record for a property loan.
type LoanExpense struct {
	PropertyID  string          `json:"propertyId"`
	Date        time.Time       `json:"date"`
	AmountCents Cents           `json:"amountCents"`
	Category    ExpenseCategory `json:"category"`
	Note        string          `json:"note"`
}
