package models

import "math"

// Cents is a monetary amount in minor currency units (rappen). The basic
// evaluation path and everything persisted is expressed in Cents to avoid
// floating-point drift in stored amounts.
type Cents int64

// Percent is an annual rate expressed in percent, e.g. 3.5 means 3.5%/year.
// Used for interest and amortization rates throughout.
type Percent float64

// Fraction is a rate expressed as a fraction of one, e.g. 0.03 means 3%.
// All advanced-calculation rate inputs except the interest rate use this
// convention. The asymmetry with Percent is deliberate and matches what
// callers send; do not unify the two.
type Fraction float64

// Francs converts a cent amount to whole currency units.
func (c Cents) Francs() float64 {
	return float64(c) / 100
}

// FrancsToCents converts a whole-currency amount to cents, rounding to the
// nearest cent.
func FrancsToCents(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}
