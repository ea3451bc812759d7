package processors

import (
	"math"

	"github.com/username/propfolio/backend/src/models"
)

// AdvancedProcessor runs the whole-franc evaluation with acquisition costs,
// vacancy, maintenance, management fees, loan type, appreciation, tax and
// one-time costs.
type AdvancedProcessor struct{}

func NewAdvancedProcessor() *AdvancedProcessor {
	return &AdvancedProcessor{}
}

const defaultMaintenanceRate = models.Fraction(0.01)

// Evaluate computes the full advanced breakdown. Every ratio with a
// potentially zero denominator returns 0 instead of NaN or Inf; that is the
// one contract this processor upholds, everything else is unvalidated
// arithmetic on the caller's numbers.
func (p *AdvancedProcessor) Evaluate(input models.AdvancedEvaluationInput) models.AdvancedEvaluationOutput {
	maintenanceRate := defaultMaintenanceRate
	if input.MaintenanceRate != nil {
		maintenanceRate = *input.MaintenanceRate
	}
	loanType := input.LoanType
	if loanType == "" {
		loanType = models.LoanTypeAnnuity
	}
	loanTermYears := input.LoanTermYears
	if loanTermYears == 0 {
		loanTermYears = 10
	}
	// input.RateResetYears is accepted but takes no part in the calculation.

	acquisitionCosts := input.PurchasePrice * float64(input.AcquisitionCostRate)

	financedBase := input.PurchasePrice
	if input.FinanceCosts {
		financedBase = input.PurchasePrice + acquisitionCosts + input.OneTimeCosts
	}
	loanAmount := math.Max(0, financedBase-input.Equity)

	grossAnnualRent := input.MonthlyRent * 12
	economicVacancy := grossAnnualRent * float64(input.VacancyRate)
	effectiveGrossIncome := grossAnnualRent - economicVacancy

	maintenanceAnnual := input.PurchasePrice * float64(maintenanceRate)
	propertyMgmtAnnual := grossAnnualRent * float64(input.PropertyMgmtRate)
	totalAnnualOpex := maintenanceAnnual + propertyMgmtAnnual + input.InsuranceAndTaxesAnnual + input.OtherAnnualOpex

	// Flat first-year interest approximation, not schedule-derived.
	interestAnnual := loanAmount * (float64(input.InterestRatePct) / 100)
	repaymentAnnual := 0.0
	if loanType == models.LoanTypeAnnuity && loanAmount > 0 {
		monthlyAnnuity := float64(AnnuityPaymentCents(models.FrancsToCents(loanAmount), input.InterestRatePct, loanTermYears*12)) / 100
		annualAnnuity := monthlyAnnuity * 12
		repaymentAnnual = math.Max(0, annualAnnuity-interestAnnual)
	}

	netOperatingIncome := effectiveGrossIncome - totalAnnualOpex
	cashflowAnnual := netOperatingIncome - interestAnnual - repaymentAnnual

	taxAnnual := 0.0
	cashflowAfterTax := cashflowAnnual
	if input.MarginalTaxRate != nil && *input.MarginalTaxRate > 0 {
		taxableIncome := math.Max(0, netOperatingIncome-interestAnnual-input.DepreciationAnnual)
		taxAnnual = taxableIncome * float64(*input.MarginalTaxRate)
		cashflowAfterTax = cashflowAnnual - taxAnnual
	}

	marketValueY1 := input.PurchasePrice * (1 + float64(input.AppreciationRate))
	totalInvestment := input.Equity + acquisitionCosts + input.OneTimeCosts

	grossYieldPct := grossAnnualRent / input.PurchasePrice * 100
	netYieldPct := netOperatingIncome / input.PurchasePrice * 100
	monthlyCashflowCents := cashflowAfterTax * 100 / 12

	cashOnCashReturn := 0.0
	if totalInvestment > 0 {
		cashOnCashReturn = cashflowAfterTax / totalInvestment * 100
	}
	capRate := 0.0
	if marketValueY1 > 0 {
		capRate = netOperatingIncome / marketValueY1 * 100
	}
	totalROI := 0.0
	if totalInvestment > 0 {
		totalROI = (cashflowAfterTax + (marketValueY1 - input.PurchasePrice)) / totalInvestment * 100
	}
	pricePerSqm := 0.0
	if input.PropertySizeSqm > 0 {
		pricePerSqm = input.PurchasePrice / input.PropertySizeSqm
	}
	ltvRatio := 0.0
	if marketValueY1 > 0 {
		ltvRatio = loanAmount / marketValueY1 * 100
	}
	annualDebtService := interestAnnual + repaymentAnnual
	dscr := 0.0
	if annualDebtService > 0 {
		dscr = netOperatingIncome / annualDebtService
	}
	paybackPeriodYears := 0.0
	if cashflowAfterTax > 0 {
		paybackPeriodYears = totalInvestment / cashflowAfterTax
	}

	recommendation := models.RecommendationRed
	if cashOnCashReturn > 6 && dscr > 1.1 && cashflowAfterTax > 0 && netYieldPct > 2 {
		recommendation = models.RecommendationGreen
	}

	return models.AdvancedEvaluationOutput{
		GrossYieldPct:        grossYieldPct,
		NetYieldPct:          netYieldPct,
		MonthlyCashflowCents: monthlyCashflowCents,

		CashOnCashReturn:   cashOnCashReturn,
		CapRate:            capRate,
		TotalROI:           totalROI,
		PricePerSqm:        pricePerSqm,
		LTVRatio:           ltvRatio,
		DSCR:               dscr,
		PaybackPeriodYears: paybackPeriodYears,

		AcquisitionCosts:     acquisitionCosts,
		FinancedBase:         financedBase,
		LoanAmount:           loanAmount,
		GrossAnnualRent:      grossAnnualRent,
		EconomicVacancy:      economicVacancy,
		EffectiveGrossIncome: effectiveGrossIncome,
		MaintenanceAnnual:    maintenanceAnnual,
		PropertyMgmtAnnual:   propertyMgmtAnnual,
		InterestAnnual:       interestAnnual,
		RepaymentAnnual:      repaymentAnnual,
		TotalAnnualOpex:      totalAnnualOpex,
		NetOperatingIncome:   netOperatingIncome,
		CashflowAnnual:       cashflowAnnual,
		CashflowAfterTax:     cashflowAfterTax,
		TaxAnnual:            taxAnnual,
		MarketValueY1:        marketValueY1,

		Recommendation: recommendation,
	}
}
