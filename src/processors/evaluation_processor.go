package processors

import (
	"math"

	"github.com/username/propfolio/backend/src/models"
)

// EvaluationProcessor runs the basic, cents-based investment evaluation.
type EvaluationProcessor struct{}

func NewEvaluationProcessor() *EvaluationProcessor {
	return &EvaluationProcessor{}
}

// Evaluate turns a basic property/loan input into yields, monthly cashflow,
// a buy/don't-buy recommendation and a ten-year amortization forecast.
// Inputs are assumed validated by the caller; a zero purchase price or term
// propagates through the arithmetic unchecked.
func (p *EvaluationProcessor) Evaluate(input models.EvaluationInput) models.EvaluationOutput {
	otherCosts := input.MonthlyOtherCostsCents
	equity := input.EquityCents

	// Equity above the purchase price means no loan, not a negative one.
	loanPrincipal := input.PurchasePriceCents - equity
	if loanPrincipal < 0 {
		loanPrincipal = 0
	}

	annualRent := input.ExpectedMonthlyRentCents * 12
	grossYieldPct := float64(annualRent) / float64(input.PurchasePriceCents) * 100

	// Net yield approximates with the first month's interest only, ignoring
	// the amortization part of the debt service. Deliberate simplification.
	firstMonthInterest := models.Cents(math.Round(float64(loanPrincipal) * monthlyRate(input.InterestRatePct)))
	approxMonthlyNet := input.ExpectedMonthlyRentCents - otherCosts - firstMonthInterest
	netYieldPct := float64(approxMonthlyNet*12) / float64(input.PurchasePriceCents) * 100

	// Cashflow subtracts interest only, not principal repayment.
	monthlyCashflow := input.ExpectedMonthlyRentCents - otherCosts - firstMonthInterest

	recommendation := models.RecommendationRed
	if monthlyCashflow >= 0 && netYieldPct >= 2.5 {
		recommendation = models.RecommendationGreen
	}

	return models.EvaluationOutput{
		GrossYieldPct:        grossYieldPct,
		NetYieldPct:          netYieldPct,
		MonthlyCashflowCents: monthlyCashflow,
		Recommendation:       recommendation,
		Forecast:             BuildYearlyForecast(loanPrincipal, input.InterestRatePct, input.LoanTermYears, equity),
	}
}
