package processors

import (
	"math"
	"time"

	"github.com/username/propfolio/backend/src/models"
	"github.com/username/propfolio/backend/src/utils"
)

// LoanProcessor splits a property loan into its monthly interest and
// amortization payments and expands them into dated expense records.
type LoanProcessor struct{}

func NewLoanProcessor() *LoanProcessor {
	return &LoanProcessor{}
}

// CalculateMonthlyPayments returns the monthly interest/amortization split
// in whole francs. If any of the three loan parameters is missing, the
// breakdown is all zeroes.
func (p *LoanProcessor) CalculateMonthlyPayments(loan models.PropertyLoanData) models.LoanPaymentBreakdown {
	if loan.LoanPrincipalCents == 0 || loan.InterestRatePct == 0 || loan.AmortizationRatePct == 0 {
		return models.LoanPaymentBreakdown{}
	}

	principal := loan.LoanPrincipalCents.Francs()
	monthlyInterest := utils.RoundFloat(principal*monthlyRate(loan.InterestRatePct), 2)
	monthlyAmortization := utils.RoundFloat(principal*monthlyRate(loan.AmortizationRatePct), 2)

	return models.LoanPaymentBreakdown{
		MonthlyInterestPayment:     monthlyInterest,
		MonthlyAmortizationPayment: monthlyAmortization,
		TotalMonthlyPayment:        monthlyInterest + monthlyAmortization,
	}
}

// GenerateExpenses expands the monthly payment split into one interest and
// one amortization expense record per month from start through end,
// inclusive. Returns nothing when the loan has no payments.
func (p *LoanProcessor) GenerateExpenses(propertyID string, loan models.PropertyLoanData, start, end time.Time) []models.LoanExpense {
	payments := p.CalculateMonthlyPayments(loan)
	if payments.TotalMonthlyPayment == 0 {
		return nil
	}

	var expenses []models.LoanExpense
	for date := start; !date.After(end); date = date.AddDate(0, 1, 0) {
		if payments.MonthlyInterestPayment > 0 {
			expenses = append(expenses, models.LoanExpense{
				PropertyID:  propertyID,
				Date:        date,
				AmountCents: models.Cents(math.Round(payments.MonthlyInterestPayment * 100)),
				Category:    models.ExpenseCategoryLoanInterest,
				Note:        "Monthly loan interest payment",
			})
		}
		if payments.MonthlyAmortizationPayment > 0 {
			expenses = append(expenses, models.LoanExpense{
				PropertyID:  propertyID,
				Date:        date,
				AmountCents: models.Cents(math.Round(payments.MonthlyAmortizationPayment * 100)),
				Category:    models.ExpenseCategoryLoanAmortization,
				Note:        "Monthly loan amortization payment",
			})
		}
	}
	return expenses
}

// GenerateNext12MonthsExpenses generates the loan expenses for the year
// following start.
func (p *LoanProcessor) GenerateNext12MonthsExpenses(propertyID string, loan models.PropertyLoanData, start time.Time) []models.LoanExpense {
	return p.GenerateExpenses(propertyID, loan, start, start.AddDate(1, 0, 0))
}
