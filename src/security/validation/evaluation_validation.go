// backend/src/security/validation/evaluation_validation.go
package validation

import (
	"fmt"

	"github.com/username/propfolio/backend/src/models"
)

// The engine itself performs no validation; requests are checked here,
// before invocation, so malformed numbers never reach the arithmetic.
const (
	MaxInterestRatePct = 100
	MaxLoanTermYears   = 100
)

// ValidateEvaluationInput checks a basic evaluation input.
func ValidateEvaluationInput(input models.EvaluationInput) error {
	if input.PurchasePriceCents <= 0 {
		return fmt.Errorf("purchase price must be positive")
	}
	if input.ExpectedMonthlyRentCents < 0 {
		return fmt.Errorf("expected monthly rent must not be negative")
	}
	if input.EquityCents < 0 {
		return fmt.Errorf("equity must not be negative")
	}
	if input.InterestRatePct < 0 || input.InterestRatePct > MaxInterestRatePct {
		return fmt.Errorf("interest rate must be between 0 and %d percent", MaxInterestRatePct)
	}
	if input.LoanTermYears <= 0 || input.LoanTermYears > MaxLoanTermYears {
		return fmt.Errorf("loan term must be between 1 and %d years", MaxLoanTermYears)
	}
	if input.MonthlyOtherCostsCents < 0 {
		return fmt.Errorf("monthly other costs must not be negative")
	}
	return nil
}

// ValidateAdvancedInput checks an advanced evaluation input. Rate fields
// other than the interest rate are fractions in [0,1].
func ValidateAdvancedInput(input models.AdvancedEvaluationInput) error {
	if input.PurchasePrice <= 0 {
		return fmt.Errorf("purchase price must be positive")
	}
	if input.MonthlyRent < 0 {
		return fmt.Errorf("monthly rent must not be negative")
	}
	if input.Equity < 0 {
		return fmt.Errorf("equity must not be negative")
	}
	if input.InterestRatePct < 0 || input.InterestRatePct > MaxInterestRatePct {
		return fmt.Errorf("interest rate must be between 0 and %d percent", MaxInterestRatePct)
	}
	if err := validateFraction("acquisition cost rate", input.AcquisitionCostRate); err != nil {
		return err
	}
	if err := validateFraction("vacancy rate", input.VacancyRate); err != nil {
		return err
	}
	if input.MaintenanceRate != nil {
		if err := validateFraction("maintenance rate", *input.MaintenanceRate); err != nil {
			return err
		}
	}
	if err := validateFraction("property management rate", input.PropertyMgmtRate); err != nil {
		return err
	}
	if input.MarginalTaxRate != nil {
		if err := validateFraction("marginal tax rate", *input.MarginalTaxRate); err != nil {
			return err
		}
	}
	if input.LoanType != "" && input.LoanType != models.LoanTypeAnnuity && input.LoanType != models.LoanTypeInterestOnly {
		return fmt.Errorf("loan type must be %q or %q", models.LoanTypeAnnuity, models.LoanTypeInterestOnly)
	}
	if input.LoanTermYears < 0 || input.LoanTermYears > MaxLoanTermYears {
		return fmt.Errorf("loan term must be between 0 and %d years", MaxLoanTermYears)
	}
	return nil
}

// ValidateLoanData checks the loan parameters of the payment-schedule
// endpoint.
func ValidateLoanData(loan models.PropertyLoanData) error {
	if loan.LoanPrincipalCents < 0 {
		return fmt.Errorf("loan principal must not be negative")
	}
	if loan.InterestRatePct < 0 || loan.InterestRatePct > MaxInterestRatePct {
		return fmt.Errorf("interest rate must be between 0 and %d percent", MaxInterestRatePct)
	}
	if loan.AmortizationRatePct < 0 || loan.AmortizationRatePct > MaxInterestRatePct {
		return fmt.Errorf("amortization rate must be between 0 and %d percent", MaxInterestRatePct)
	}
	return nil
}

func validateFraction(name string, f models.Fraction) error {
	if f < 0 || f > 1 {
		return fmt.Errorf("%s must be a fraction between 0 and 1", name)
	}
	return nil
}
