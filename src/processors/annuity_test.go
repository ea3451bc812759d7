package processors

import (
	"math"
	"testing"

	"github.com/username/propfolio/backend/src/models"
)

// almostEqual compares floats with a tolerance. Shared by the processor
// tests in this package.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnnuityPaymentZeroInterest(t *testing.T) {
	got := AnnuityPaymentCents(1_200_000, 0, 12)
	if got != 100_000 {
		t.Errorf("expected 100000, got %d", got)
	}

	// Rounded, not truncated.
	got = AnnuityPaymentCents(1000, 0, 3)
	if got != 333 {
		t.Errorf("expected 333, got %d", got)
	}
}

func TestAnnuityPaymentCoversPrincipal(t *testing.T) {
	cases := []struct {
		name      string
		principal models.Cents
		rate      models.Percent
		months    int
	}{
		{"25y mortgage", 24_000_000, 3, 300},
		{"10y loan", 10_000_000, 5, 120},
		{"small 2y loan", 50_000, 1.5, 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payment := AnnuityPaymentCents(tc.principal, tc.rate, tc.months)
			if payment <= 0 {
				t.Fatalf("expected positive payment, got %d", payment)
			}
			total := payment * models.Cents(tc.months)
			if total < tc.principal {
				t.Errorf("total payments %d do not cover principal %d", total, tc.principal)
			}
		})
	}
}

func TestAnnuityPaymentExceedsInterestOnly(t *testing.T) {
	// The fixed payment must always beat the first month's interest,
	// otherwise the loan would never amortize.
	principal := models.Cents(24_000_000)
	rate := models.Percent(3)
	payment := AnnuityPaymentCents(principal, rate, 300)

	firstMonthInterest := models.Cents(math.Round(float64(principal) * monthlyRate(rate)))
	if payment <= firstMonthInterest {
		t.Errorf("payment %d does not exceed first month interest %d", payment, firstMonthInterest)
	}
}
