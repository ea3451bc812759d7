package processors

import (
	"math"

	"github.com/username/propfolio/backend/src/models"
	"github.com/username/propfolio/backend/src/utils"
)

// BuildYearlyForecast produces a year-by-year amortization breakdown for a
// loan, capped at ten years of projection. The monthly debt service is the
// full-term annuity payment computed once up front, not recomputed per
// year; when the loan term is shorter than ten years the schedule simply
// stops at the term.
func BuildYearlyForecast(loanPrincipal models.Cents, annualRate models.Percent, termYears int, equity models.Cents) []models.ForecastPoint {
	months := termYears * 12
	debtService := AnnuityPaymentCents(loanPrincipal, annualRate, months)

	var forecast []models.ForecastPoint
	remaining := loanPrincipal
	for year := 1; year <= utils.MinInt(10, termYears); year++ {
		var interestPaid, principalPaid models.Cents
		for m := 0; m < 12; m++ {
			if remaining <= 0 {
				break
			}
			interest := models.Cents(math.Round(float64(remaining) * monthlyRate(annualRate)))
			// Never amortize below zero even when the fixed payment would.
			principal := debtService - interest
			if principal > remaining {
				principal = remaining
			}
			interestPaid += interest
			principalPaid += principal
			remaining -= principal
		}
		remainingClamped := remaining
		if remainingClamped < 0 {
			remainingClamped = 0
		}
		forecast = append(forecast, models.ForecastPoint{
			Year:                    year,
			RemainingPrincipalCents: remainingClamped,
			InterestPaidCents:       interestPaid,
			PrincipalPaidCents:      principalPaid,
			NetWorthCents:           equity + (loanPrincipal - remaining),
		})
	}
	return forecast
}
