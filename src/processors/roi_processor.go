package processors

import (
	"github.com/username/propfolio/backend/src/models"
)

// ROIProcessor computes the standalone ROI metrics shown on the property
// detail view, directly from already-known property/loan/rent figures.
// Independent of the evaluators.
type ROIProcessor struct{}

func NewROIProcessor() *ROIProcessor {
	return &ROIProcessor{}
}

// Calculate returns the ratio bundle for a property. Ratios here are
// fractions rather than percentages; every division by a zero or negative
// denominator yields 0, never NaN or Inf.
func (p *ROIProcessor) Calculate(input models.ROIInput) models.ROIOutput {
	annualRent := input.MonthlyRent * 12
	annualExpenses := input.MonthlyExpenses * 12
	netOperatingIncome := annualRent - annualExpenses

	cashOnCashReturn := 0.0
	if input.Equity > 0 {
		cashOnCashReturn = netOperatingIncome / input.Equity
	}
	capRate := 0.0
	if input.MarketValue > 0 {
		capRate = netOperatingIncome / input.MarketValue
	}
	totalROI := 0.0
	if input.Equity > 0 {
		appreciation := input.MarketValue - input.PurchasePrice
		totalROI = (netOperatingIncome + appreciation) / input.Equity
	}
	pricePerSqm := 0.0
	if input.PropertySizeSqm > 0 {
		pricePerSqm = input.PurchasePrice / input.PropertySizeSqm
	}
	grossYield := 0.0
	if input.PurchasePrice > 0 {
		grossYield = annualRent / input.PurchasePrice
	}
	netYield := 0.0
	if input.PurchasePrice > 0 {
		netYield = netOperatingIncome / input.PurchasePrice
	}
	ltvRatio := 0.0
	if input.MarketValue > 0 {
		ltvRatio = input.LoanPrincipal / input.MarketValue
	}

	monthlyDebtService := 0.0
	if input.LoanPrincipal > 0 {
		monthlyDebtService = input.LoanPrincipal*monthlyRate(input.InterestRatePct) +
			input.LoanPrincipal*monthlyRate(input.AmortizationRatePct)
	}
	annualDebtService := monthlyDebtService * 12
	dscr := 0.0
	if annualDebtService > 0 {
		dscr = netOperatingIncome / annualDebtService
	}

	paybackPeriodYears := 0.0
	if netOperatingIncome > 0 {
		paybackPeriodYears = input.Equity / netOperatingIncome
	}

	return models.ROIOutput{
		CashOnCashReturn:   cashOnCashReturn,
		CapRate:            capRate,
		TotalROI:           totalROI,
		PricePerSqm:        pricePerSqm,
		MonthlyRent:        input.MonthlyRent,
		MonthlyExpenses:    input.MonthlyExpenses,
		GrossYield:         grossYield,
		NetYield:           netYield,
		LTVRatio:           ltvRatio,
		DSCR:               dscr,
		PaybackPeriodYears: paybackPeriodYears,
	}
}
