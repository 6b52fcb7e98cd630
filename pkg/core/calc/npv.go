package calc

import (
	"math"
)

// rateDomainFloor is the lowest periodic rate at which discounting is still
// meaningful. At or below it the discount base 1+rate collapses toward zero
// and NPV is reported as +Inf rather than computed.
const rateDomainFloor = -0.999999

// expClamp bounds the discount exponent fed into math.Exp. It is derived from
// the float64 overflow threshold instead of hard-coded: exp(x) overflows for
// x > ln(MaxFloat64) ~ 709.78, so we stay one integer inside it on both sides.
var expClamp = math.Log(math.MaxFloat64) - 1

// NPV evaluates the net present value of cashflows at a periodic rate.
//
// It is total over the full real domain of rate: it never panics and always
// returns a value, possibly +Inf or -Inf. The discount factor (1+rate)^t is
// computed in log space as exp(t*log1p(rate)) so that long horizons and
// extreme rates cannot overflow mid-evaluation:
//   - exponent above +expClamp: the discount factor is effectively infinite,
//     the period contributes nothing and evaluation continues.
//   - exponent below -expClamp: the discount factor is effectively zero, the
//     term itself blows up, and evaluation short-circuits to +Inf or -Inf
//     depending on the sign of that period's cash flow.
func NPV(rate float64, cashflows []float64) float64 {
	if rate <= rateDomainFloor {
		return math.Inf(1)
	}

	lr := math.Log1p(rate)
	total := 0.0
	for t, cf := range cashflows {
		expArg := float64(t) * lr
		if expArg > expClamp {
			// Denominator overflows; term ~ 0.
			continue
		}
		if expArg < -expClamp {
			// Denominator underflows to 0; term ~ +/-Inf. Unstable, clamp.
			if cf > 0 {
				return math.Inf(1)
			}
			return math.Inf(-1)
		}
		total += cf / math.Exp(expArg)
	}
	return total
}
