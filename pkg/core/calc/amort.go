package calc

import (
	"math"
)

// Payment returns the level periodic payment that fully amortizes principal
// over periods at the given periodic rate (the standard annuity formula).
// A zero rate degenerates to straight-line repayment, avoiding the 0/0 in
// the closed form; periods is floored at 1.
func Payment(rate float64, periods int, principal float64) float64 {
	if periods < 1 {
		periods = 1
	}
	if rate == 0 {
		return principal / float64(periods)
	}
	return principal * rate / (1 - math.Pow(1+rate, -float64(periods)))
}
