// backend/src/services/evaluation_service.go
package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/username/propfolio/backend/src/cache"
	"github.com/username/propfolio/backend/src/database"
	"github.com/username/propfolio/backend/src/logger"
	"github.com/username/propfolio/backend/src/models"
	"github.com/username/propfolio/backend/src/processors"
)

const (
	// Cached list of stored evaluations, invalidated on every write.
	ckEvaluationList = "res_evaluation_list"

	defaultBasicLoanTermYears = 25
	defaultPropertySizeSqm    = 100
)

type evaluationServiceImpl struct {
	evaluator   processors.Evaluator
	advanced    processors.AdvancedEvaluator
	resultCache cache.Cache
}

func NewEvaluationService(
	evaluator processors.Evaluator,
	advanced processors.AdvancedEvaluator,
	resultCache cache.Cache,
) EvaluationService {
	return &evaluationServiceImpl{
		evaluator:   evaluator,
		advanced:    advanced,
		resultCache: resultCache,
	}
}

func (s *evaluationServiceImpl) Evaluate(req EvaluationRequest) (*EvaluationResult, error) {
	startTime := time.Now()
	method := req.CalculationMethod
	if method == "" {
		method = "basic"
	}

	var result *EvaluationResult
	switch method {
	case "basic":
		result = s.evaluateBasic(req)
	case "advanced":
		result = s.evaluateAdvanced(req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCalculationMethod, method)
	}

	if req.SaveCalculation {
		if err := s.saveEvaluation(req, method, result); err != nil {
			return nil, err
		}
		s.resultCache.Delete(ckEvaluationList)
	}

	logger.L.Info("Evaluation complete", "method", method, "saved", req.SaveCalculation, "duration", time.Since(startTime))
	return result, nil
}

func (s *evaluationServiceImpl) evaluateBasic(req EvaluationRequest) *EvaluationResult {
	input := ResolveBasicInput(req)
	output := s.evaluator.Evaluate(input)

	// The basic engine reports yields, cashflow and the forecast; the
	// breakdown block is reconstructed here in whole francs so both
	// calculation methods return the same envelope.
	price := input.PurchasePriceCents.Francs()
	monthlyRent := input.ExpectedMonthlyRentCents.Francs()
	equity := input.EquityCents.Francs()
	monthlyOtherCosts := input.MonthlyOtherCostsCents.Francs()

	loanAmount := math.Max(price-equity, 0)
	annualRent := monthlyRent * 12
	annualOtherCosts := monthlyOtherCosts * 12
	annualInterest := loanAmount * (float64(input.InterestRatePct) / 100)
	cashflowAnnual := output.MonthlyCashflowCents.Francs() * 12

	return &EvaluationResult{
		GrossYieldPct:        output.GrossYieldPct,
		NetYieldPct:          output.NetYieldPct,
		MonthlyCashflowCents: float64(output.MonthlyCashflowCents),
		Recommendation:       output.Recommendation,
		Forecast:             output.Forecast,
		DetailedBreakdown: DetailedBreakdown{
			FinancedBase:         price,
			LoanAmount:           loanAmount,
			GrossAnnualRent:      annualRent,
			EffectiveGrossIncome: annualRent,
			InterestAnnual:       annualInterest,
			TotalAnnualOpex:      annualOtherCosts,
			NetOperatingIncome:   annualRent - annualOtherCosts,
			CashflowAnnual:       cashflowAnnual,
			CashflowAfterTax:     cashflowAnnual,
			MarketValueY1:        price,
		},
	}
}

func (s *evaluationServiceImpl) evaluateAdvanced(req EvaluationRequest) *EvaluationResult {
	input := ResolveAdvancedInput(req)
	output := s.advanced.Evaluate(input)

	return &EvaluationResult{
		GrossYieldPct:        output.GrossYieldPct,
		NetYieldPct:          output.NetYieldPct,
		MonthlyCashflowCents: output.MonthlyCashflowCents,
		Recommendation:       output.Recommendation,
		AdvancedMetrics: &AdvancedMetrics{
			CashOnCashReturn:   output.CashOnCashReturn,
			CapRate:            output.CapRate,
			TotalROI:           output.TotalROI,
			PricePerSqm:        output.PricePerSqm,
			LTVRatio:           output.LTVRatio,
			DSCR:               output.DSCR,
			PaybackPeriodYears: output.PaybackPeriodYears,
		},
		DetailedBreakdown: DetailedBreakdown{
			AcquisitionCosts:     output.AcquisitionCosts,
			FinancedBase:         output.FinancedBase,
			LoanAmount:           output.LoanAmount,
			GrossAnnualRent:      output.GrossAnnualRent,
			EconomicVacancy:      output.EconomicVacancy,
			EffectiveGrossIncome: output.EffectiveGrossIncome,
			MaintenanceAnnual:    output.MaintenanceAnnual,
			PropertyMgmtAnnual:   output.PropertyMgmtAnnual,
			InterestAnnual:       output.InterestAnnual,
			RepaymentAnnual:      output.RepaymentAnnual,
			TotalAnnualOpex:      output.TotalAnnualOpex,
			NetOperatingIncome:   output.NetOperatingIncome,
			CashflowAnnual:       output.CashflowAnnual,
			CashflowAfterTax:     output.CashflowAfterTax,
			TaxAnnual:            output.TaxAnnual,
			MarketValueY1:        output.MarketValueY1,
		},
	}
}

// ResolveBasicInput maps the request onto the cents-based engine input,
// preferring whole-franc fields over their cents twins.
func ResolveBasicInput(req EvaluationRequest) models.EvaluationInput {
	purchasePriceCents := req.PurchasePriceCents
	if req.PurchasePrice != 0 {
		purchasePriceCents = models.FrancsToCents(req.PurchasePrice)
	}
	rentCents := req.ExpectedMonthlyRentCents
	if req.ExpectedMonthlyRent != 0 {
		rentCents = models.FrancsToCents(req.ExpectedMonthlyRent)
	}
	var equityCents models.Cents
	if req.Equity != nil {
		equityCents = models.FrancsToCents(*req.Equity)
	} else if req.EquityCents != nil {
		equityCents = *req.EquityCents
	}
	interestRate := models.Percent(req.InterestRatePct)
	if req.InterestRate != nil {
		interestRate = models.Percent(*req.InterestRate)
	}
	loanTermYears := req.LoanTermYears
	if loanTermYears == 0 {
		loanTermYears = defaultBasicLoanTermYears
	}
	otherCostsCents := req.MonthlyOtherCostsCents
	if req.OperatingMonthlyExpenses != 0 {
		otherCostsCents = models.FrancsToCents(req.OperatingMonthlyExpenses)
	}

	return models.EvaluationInput{
		PurchasePriceCents:       purchasePriceCents,
		ExpectedMonthlyRentCents: rentCents,
		EquityCents:              equityCents,
		InterestRatePct:          interestRate,
		LoanTermYears:            loanTermYears,
		MonthlyOtherCostsCents:   otherCostsCents,
	}
}

// ResolveAdvancedInput maps the request onto the whole-franc engine input.
func ResolveAdvancedInput(req EvaluationRequest) models.AdvancedEvaluationInput {
	purchasePrice := req.PurchasePrice
	if purchasePrice == 0 {
		purchasePrice = req.PurchasePriceCents.Francs()
	}
	monthlyRent := req.ExpectedMonthlyRent
	if monthlyRent == 0 {
		monthlyRent = req.ExpectedMonthlyRentCents.Francs()
	}
	var equity float64
	if req.Equity != nil {
		equity = *req.Equity
	} else if req.EquityCents != nil {
		equity = req.EquityCents.Francs()
	}
	interestRate := models.Percent(req.InterestRatePct)
	if req.InterestRate != nil {
		interestRate = models.Percent(*req.InterestRate)
	}
	propertySizeSqm := req.PropertySizeSqm
	if propertySizeSqm == 0 {
		propertySizeSqm = defaultPropertySizeSqm
	}

	return models.AdvancedEvaluationInput{
		PurchasePrice:   purchasePrice,
		MonthlyRent:     monthlyRent,
		Equity:          equity,
		InterestRatePct: interestRate,
		PropertySizeSqm: propertySizeSqm,

		AcquisitionCostRate:     req.AcquisitionCostRate,
		VacancyRate:             req.VacancyRate,
		MaintenanceRate:         req.MaintenanceRate,
		PropertyMgmtRate:        req.PropertyMgmtRate,
		InsuranceAndTaxesAnnual: req.InsuranceAndTaxesAnnual,
		LoanType:                req.LoanType,
		LoanTermYears:           req.LoanTermYears,
		RateResetYears:          req.RateResetYears,
		AppreciationRate:        req.AppreciationRate,
		MarginalTaxRate:         req.MarginalTaxRate,
		DepreciationAnnual:      req.DepreciationAnnual,
		OtherAnnualOpex:         req.OtherAnnualOpex,
		OneTimeCosts:            req.OneTimeCosts,
		FinanceCosts:            req.FinanceCosts,
	}
}

func (s *evaluationServiceImpl) saveEvaluation(req EvaluationRequest, method string, result *EvaluationResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error marshaling evaluation result: %w", err)
	}

	// Store the resolved cents values, regardless of which field variant
	// the client used.
	basicInput := ResolveBasicInput(req)
	var equityCents *models.Cents
	if req.Equity != nil || req.EquityCents != nil {
		equityCents = &basicInput.EquityCents
	}

	id := uuid.NewString()
	_, err = database.DB.Exec(`INSERT INTO evaluations (
		id, calculation_method, purchase_price_cents, expected_monthly_rent_cents,
		equity_cents, interest_rate_pct, loan_term_years, monthly_other_costs_cents,
		gross_yield_pct, net_yield_pct, monthly_cashflow_cents, recommendation, result_json
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, method, basicInput.PurchasePriceCents, basicInput.ExpectedMonthlyRentCents,
		equityCents, float64(basicInput.InterestRatePct), basicInput.LoanTermYears, basicInput.MonthlyOtherCostsCents,
		result.GrossYieldPct, result.NetYieldPct, int64(math.Round(result.MonthlyCashflowCents)),
		string(result.Recommendation), string(resultJSON))
	if err != nil {
		return fmt.Errorf("error inserting evaluation: %w", err)
	}

	logger.L.Info("Evaluation saved", "id", id, "method", method, "recommendation", result.Recommendation)
	return nil
}

func (s *evaluationServiceImpl) ListEvaluations() ([]models.StoredEvaluation, error) {
	if cached, found := s.resultCache.Get(ckEvaluationList); found {
		var evaluations []models.StoredEvaluation
		if err := json.Unmarshal([]byte(cached), &evaluations); err == nil {
			logger.L.Debug("Cache hit for evaluation list")
			return evaluations, nil
		}
		// A corrupt cache entry is not fatal; fall through to the database.
		s.resultCache.Delete(ckEvaluationList)
	}

	logger.L.Info("Cache miss for evaluation list, fetching from DB")
	rows, err := database.DB.Query(`SELECT id, created_at, calculation_method,
		purchase_price_cents, expected_monthly_rent_cents, equity_cents,
		interest_rate_pct, loan_term_years, monthly_other_costs_cents,
		gross_yield_pct, net_yield_pct, monthly_cashflow_cents, recommendation, result_json
		FROM evaluations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []models.StoredEvaluation
	for rows.Next() {
		ev, scanErr := scanEvaluation(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("error scanning evaluation row: %w", scanErr)
		}
		evaluations = append(evaluations, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over evaluation rows: %w", err)
	}

	if serialized, err := json.Marshal(evaluations); err == nil {
		s.resultCache.Set(ckEvaluationList, string(serialized))
	}
	logger.L.Info("DB fetch complete.", "evaluationCount", len(evaluations))
	return evaluations, nil
}

func (s *evaluationServiceImpl) GetEvaluation(id string) (*models.StoredEvaluation, error) {
	row := database.DB.QueryRow(`SELECT id, created_at, calculation_method,
		purchase_price_cents, expected_monthly_rent_cents, equity_cents,
		interest_rate_pct, loan_term_years, monthly_other_costs_cents,
		gross_yield_pct, net_yield_pct, monthly_cashflow_cents, recommendation, result_json
		FROM evaluations WHERE id = ?`, id)

	ev, err := scanEvaluation(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("error fetching evaluation %s: %w", id, err)
	}
	return &ev, nil
}

func (s *evaluationServiceImpl) DeleteEvaluation(id string) error {
	res, err := database.DB.Exec(`DELETE FROM evaluations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting evaluation %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result for evaluation %s: %w", id, err)
	}
	if affected == 0 {
		return ErrEvaluationNotFound
	}
	s.resultCache.Delete(ckEvaluationList)
	logger.L.Info("Evaluation deleted", "id", id)
	return nil
}

func (s *evaluationServiceImpl) DeleteAllEvaluations() error {
	if _, err := database.DB.Exec(`DELETE FROM evaluations`); err != nil {
		return fmt.Errorf("error deleting evaluations: %w", err)
	}
	s.resultCache.Delete(ckEvaluationList)
	logger.L.Info("All evaluations deleted")
	return nil
}

// scanEvaluation reads one evaluation row through the given scan function,
// shared between the list query and the single-row lookup.
func scanEvaluation(scan func(dest ...any) error) (models.StoredEvaluation, error) {
	var ev models.StoredEvaluation
	var equityCents sql.NullInt64
	var grossYield, netYield sql.NullFloat64
	var monthlyCashflow sql.NullInt64
	var recommendation, resultJSON sql.NullString

	err := scan(&ev.ID, &ev.CreatedAt, &ev.CalculationMethod,
		&ev.PurchasePriceCents, &ev.ExpectedMonthlyRentCents, &equityCents,
		&ev.InterestRatePct, &ev.LoanTermYears, &ev.MonthlyOtherCostsCents,
		&grossYield, &netYield, &monthlyCashflow, &recommendation, &resultJSON)
	if err != nil {
		return models.StoredEvaluation{}, err
	}

	if equityCents.Valid {
		c := models.Cents(equityCents.Int64)
		ev.EquityCents = &c
	}
	ev.GrossYieldPct = grossYield.Float64
	ev.NetYieldPct = netYield.Float64
	ev.MonthlyCashflowCents = models.Cents(monthlyCashflow.Int64)
	ev.Recommendation = models.Recommendation(recommendation.String)
	ev.ResultJSON = resultJSON.String
	return ev, nil
}
