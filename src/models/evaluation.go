package models

// Recommendation is the buy/don't-buy verdict of an evaluation.
type Recommendation string

const (
	RecommendationGreen Recommendation = "GREEN"
	// RecommendationYellow is no longer produced; kept because older stored
	// evaluations may still carry it.
	RecommendationYellow Recommendation = "YELLOW"
	RecommendationRed    Recommendation = "RED"
)

// LoanType selects how the advanced evaluator models debt service.
type LoanType string

const (
	LoanTypeAnnuity      LoanType = "annuity"
	LoanTypeInterestOnly LoanType = "interestOnly"
)

// EvaluationInput is the cents-based input of the basic evaluator.
type EvaluationInput struct {
	PurchasePriceCents       Cents   `json:"purchasePriceCents"`
	ExpectedMonthlyRentCents Cents   `json:"expectedMonthlyRentCents"`
	EquityCents              Cents   `json:"equityCents"`       // 0 means fully financed
	InterestRatePct          Percent `json:"interestRatePct"`   // annual
	LoanTermYears            int     `json:"loanTermYears"`
	MonthlyOtherCostsCents   Cents   `json:"monthlyOtherCostsCents"`
}

// ForecastPoint is one year of the amortization forecast.
type ForecastPoint struct {
	Year                   int   `json:"year"`
	RemainingPrincipalCents Cents `json:"remainingPrincipalCents"`
	InterestPaidCents      Cents `json:"interestPaidCents"`
	PrincipalPaidCents     Cents `json:"principalPaidCents"`
	NetWorthCents          Cents `json:"netWorthCents"`
}

// EvaluationOutput is the result of the basic evaluator.
type EvaluationOutput struct {
	GrossYieldPct        float64         `json:"grossYieldPct"`
	NetYieldPct          float64         `json:"netYieldPct"`
	MonthlyCashflowCents Cents           `json:"monthlyCashflowCents"`
	Recommendation       Recommendation  `json:"recommendation"`
	Forecast             []ForecastPoint `json:"forecast"`
}

// AdvancedEvaluationInput is the whole-franc input of the advanced
// evaluator. Pointer fields distinguish "not provided" from an explicit
// zero where the default is non-zero or where presence changes behavior.
type AdvancedEvaluationInput struct {
	PurchasePrice   float64 `json:"purchasePrice"`
	MonthlyRent     float64 `json:"monthlyRent"`
	Equity          float64 `json:"equity"`
	InterestRatePct Percent `json:"interestRatePct"` // annual, percent
	PropertySizeSqm float64 `json:"propertySizeSqm"`

	AcquisitionCostRate     Fraction  `json:"acquisitionCostRate"`
	VacancyRate             Fraction  `json:"vacancyRate"`
	MaintenanceRate         *Fraction `json:"maintenanceRate"` // nil -> 0.01
	PropertyMgmtRate        Fraction  `json:"propertyMgmtRate"`
	InsuranceAndTaxesAnnual float64   `json:"insuranceAndTaxesAnnual"`
	LoanType                LoanType  `json:"loanType"`      // "" -> annuity
	LoanTermYears           int       `json:"loanTermYears"` // 0 -> 10
	RateResetYears          *int      `json:"rateResetYears"` // accepted, not used in the calculation
	AppreciationRate        Fraction  `json:"appreciationRate"`
	MarginalTaxRate         *Fraction `json:"marginalTaxRate"` // nil -> no tax modeling
	DepreciationAnnual      float64   `json:"depreciationAnnual"`
	OtherAnnualOpex         float64   `json:"otherAnnualOpex"`
	OneTimeCosts            float64   `json:"oneTimeCosts"`
	FinanceCosts            bool      `json:"financeCosts"` // roll acquisition/one-time costs into the loan
}

// AdvancedEvaluationOutput is the result of the advanced evaluator. All
// monetary breakdown figures are whole francs; MonthlyCashflowCents keeps
// the cents convention of the basic output for call-site compatibility and
// is intentionally not rounded.
type AdvancedEvaluationOutput struct {
	GrossYieldPct        float64 `json:"grossYieldPct"`
	NetYieldPct          float64 `json:"netYieldPct"`
	MonthlyCashflowCents float64 `json:"monthlyCashflowCents"`

	CashOnCashReturn  float64 `json:"cashOnCashReturn"`
	CapRate           float64 `json:"capRate"`
	TotalROI          float64 `json:"totalROI"`
	PricePerSqm       float64 `json:"pricePerSqm"`
	LTVRatio          float64 `json:"ltvRatio"`
	DSCR              float64 `json:"dscr"`
	PaybackPeriodYears float64 `json:"paybackPeriodYears"`

	AcquisitionCosts    float64 `json:"acquisitionCosts"`
	FinancedBase        float64 `json:"financedBase"`
	LoanAmount          float64 `json:"loanAmount"`
	GrossAnnualRent     float64 `json:"grossAnnualRent"`
	EconomicVacancy     float64 `json:"economicVacancy"`
	EffectiveGrossIncome float64 `json:"effectiveGrossIncome"`
	MaintenanceAnnual   float64 `json:"maintenanceAnnual"`
	PropertyMgmtAnnual  float64 `json:"propertyMgmtAnnual"`
	InterestAnnual      float64 `json:"interestAnnual"`
	RepaymentAnnual     float64 `json:"repaymentAnnual"`
	TotalAnnualOpex     float64 `json:"totalAnnualOpex"`
	NetOperatingIncome  float64 `json:"netOperatingIncome"`
	CashflowAnnual      float64 `json:"cashflowAnnual"`
	CashflowAfterTax    float64 `json:"cashflowAfterTax"`
	TaxAnnual           float64 `json:"taxAnnual"`
	MarketValueY1       float64 `json:"marketValueY1"`

	Recommendation Recommendation `json:"recommendation"`
}

// ROIInput feeds the standalone ROI metrics calculation used by the
// property detail view. All amounts are whole francs.
type ROIInput struct {
	PurchasePrice       float64 `json:"purchasePrice"`
	MarketValue         float64 `json:"marketValue"`
	Equity              float64 `json:"equity"`
	LoanPrincipal       float64 `json:"loanPrincipal"`
	InterestRatePct     Percent `json:"interestRatePct"`
	AmortizationRatePct Percent `json:"amortizationRatePct"`
	MonthlyRent         float64 `json:"monthlyRent"`
	MonthlyExpenses     float64 `json:"monthlyExpenses"`
	PropertySizeSqm     float64 `json:"propertySizeSqm"`
}

// ROIOutput carries the standalone ROI metrics. Unlike the evaluators the
// ratios here are fractions, not percentages; the property detail view
// formats them itself.
type ROIOutput struct {
	CashOnCashReturn   float64 `json:"cashOnCashReturn"`
	CapRate            float64 `json:"capRate"`
	TotalROI           float64 `json:"totalROI"`
	PricePerSqm        float64 `json:"pricePerSqm"`
	MonthlyRent        float64 `json:"monthlyRent"`
	MonthlyExpenses    float64 `json:"monthlyExpenses"`
	GrossYield         float64 `json:"grossYield"`
	NetYield           float64 `json:"netYield"`
	LTVRatio           float64 `json:"ltvRatio"`
	DSCR               float64 `json:"dscr"`
	PaybackPeriodYears float64 `json:"paybackPeriodYears"`
}

// StoredEvaluation is a persisted evaluation row.
type StoredEvaluation struct {
	ID                       string         `json:"id"`
	CreatedAt                string         `json:"createdAt"`
	CalculationMethod        string         `json:"calculationMethod"`
	PurchasePriceCents       Cents          `json:"purchasePriceCents"`
	ExpectedMonthlyRentCents Cents          `json:"expectedMonthlyRentCents"`
	EquityCents              *Cents         `json:"equityCents"`
	InterestRatePct          Percent        `json:"interestRatePct"`
	LoanTermYears            int            `json:"loanTermYears"`
	MonthlyOtherCostsCents   Cents          `json:"monthlyOtherCostsCents"`
	GrossYieldPct            float64        `json:"grossYieldPct"`
	NetYieldPct              float64        `json:"netYieldPct"`
	MonthlyCashflowCents     Cents          `json:"monthlyCashflowCents"`
	Recommendation           Recommendation `json:"recommendation"`
	ResultJSON               string         `json:"resultJson"`
}
