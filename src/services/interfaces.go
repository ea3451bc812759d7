package services

import (
	"errors"

	"github.com/username/propfolio/backend/src/models"
)

var (
	ErrEvaluationNotFound       = errors.New("evaluation not found")
	ErrInvalidCalculationMethod = errors.New("invalid calculation method")
)

// EvaluationRequest is the JSON body of the evaluation endpoint. Newer
// clients send whole-franc fields (purchasePrice, expectedMonthlyRent, ...);
// older ones send the cents variants. Whole-franc fields win when both are
// present.
type EvaluationRequest struct {
	CalculationMethod string `json:"calculationMethod"` // "basic" (default) or "advanced"
	SaveCalculation   bool   `json:"saveCalculation"`

	PurchasePrice            float64  `json:"purchasePrice"`
	ExpectedMonthlyRent      float64  `json:"expectedMonthlyRent"`
	Equity                   *float64 `json:"equity"`
	InterestRate             *float64 `json:"interestRate"`
	OperatingMonthlyExpenses float64  `json:"operatingMonthlyExpenses"`

	PurchasePriceCents       models.Cents  `json:"purchasePriceCents"`
	ExpectedMonthlyRentCents models.Cents  `json:"expectedMonthlyRentCents"`
	EquityCents              *models.Cents `json:"equityCents"`
	InterestRatePct          float64       `json:"interestRatePct"`
	MonthlyOtherCostsCents   models.Cents  `json:"monthlyOtherCostsCents"`

	LoanTermYears int `json:"loanTermYears"`

	// Advanced-method fields.
	PropertySizeSqm         float64          `json:"propertySizeSqm"`
	AcquisitionCostRate     models.Fraction  `json:"acquisitionCostRate"`
	VacancyRate             models.Fraction  `json:"vacancyRate"`
	MaintenanceRate         *models.Fraction `json:"maintenanceRate"`
	PropertyMgmtRate        models.Fraction  `json:"propertyMgmtRate"`
	InsuranceAndTaxesAnnual float64          `json:"insuranceAndTaxesAnnual"`
	LoanType                models.LoanType  `json:"loanType"`
	RateResetYears          *int             `json:"rateResetYears"`
	AppreciationRate        models.Fraction  `json:"appreciationRate"`
	MarginalTaxRate         *models.Fraction `json:"marginalTaxRate"`
	DepreciationAnnual      float64          `json:"depreciationAnnual"`
	OtherAnnualOpex         float64          `json:"otherAnnualOpex"`
	OneTimeCosts            float64          `json:"oneTimeCosts"`
	FinanceCosts            bool             `json:"financeCosts"`
}

// AdvancedMetrics is the ratio block returned for advanced evaluations.
type AdvancedMetrics struct {
	CashOnCashReturn   float64 `json:"cashOnCashReturn"`
	CapRate            float64 `json:"capRate"`
	TotalROI           float64 `json:"totalROI"`
	PricePerSqm        float64 `json:"pricePerSqm"`
	LTVRatio           float64 `json:"ltvRatio"`
	DSCR               float64 `json:"dscr"`
	PaybackPeriodYears float64 `json:"paybackPeriodYears"`
}

// DetailedBreakdown lists every intermediate annual quantity, in whole
// francs. For basic evaluations most advanced-only fields are zero.
type DetailedBreakdown struct {
	AcquisitionCosts     float64 `json:"acquisitionCosts"`
	FinancedBase         float64 `json:"financedBase"`
	LoanAmount           float64 `json:"loanAmount"`
	GrossAnnualRent      float64 `json:"grossAnnualRent"`
	EconomicVacancy      float64 `json:"economicVacancy"`
	EffectiveGrossIncome float64 `json:"effectiveGrossIncome"`
	MaintenanceAnnual    float64 `json:"maintenanceAnnual"`
	PropertyMgmtAnnual   float64 `json:"propertyMgmtAnnual"`
	InterestAnnual       float64 `json:"interestAnnual"`
	RepaymentAnnual      float64 `json:"repaymentAnnual"`
	TotalAnnualOpex      float64 `json:"totalAnnualOpex"`
	NetOperatingIncome   float64 `json:"netOperatingIncome"`
	CashflowAnnual       float64 `json:"cashflowAnnual"`
	CashflowAfterTax     float64 `json:"cashflowAfterTax"`
	TaxAnnual            float64 `json:"taxAnnual"`
	MarketValueY1        float64 `json:"marketValueY1"`
}

// EvaluationResult is the response envelope of the evaluation endpoint,
// common to both calculation methods.
type EvaluationResult struct {
	GrossYieldPct        float64               `json:"grossYieldPct"`
	NetYieldPct          float64               `json:"netYieldPct"`
	MonthlyCashflowCents float64               `json:"monthlyCashflowCents"`
	Recommendation       models.Recommendation `json:"recommendation"`
	Forecast             []models.ForecastPoint `json:"forecast,omitempty"`
	AdvancedMetrics      *AdvancedMetrics      `json:"advancedMetrics,omitempty"`
	DetailedBreakdown    DetailedBreakdown     `json:"detailedBreakdown"`
}

// EvaluationService defines the interface for running and persisting
// investment evaluations.
type EvaluationService interface {
	Evaluate(req EvaluationRequest) (*EvaluationResult, error)
	ListEvaluations() ([]models.StoredEvaluation, error)
	GetEvaluation(id string) (*models.StoredEvaluation, error)
	DeleteEvaluation(id string) error
	DeleteAllEvaluations() error
}
