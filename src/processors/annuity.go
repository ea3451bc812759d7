package processors

import (
	"math"

	"github.com/username/propfolio/backend/src/models"
)

// monthlyRate converts an annual percent rate to a monthly fraction.
// No validation happens here; absurd rates are the caller's problem.
func monthlyRate(annualRate models.Percent) float64 {
	return float64(annualRate) / 100 / 12
}

// AnnuityPaymentCents computes the fixed monthly payment that fully
// amortizes principal over the given number of months at the given annual
// rate. The result is rounded to the nearest integer unit of the principal
// passed in, so callers working in whole francs can pass a franc-scaled
// principal instead.
func AnnuityPaymentCents(principal models.Cents, annualRate models.Percent, months int) models.Cents {
	r := monthlyRate(annualRate)
	if r == 0 {
		return models.Cents(math.Round(float64(principal) / float64(months)))
	}
	payment := float64(principal) * r / (1 - math.Pow(1+r, -float64(months)))
	return models.Cents(math.Round(payment))
}
