package calc

import (
	"math"
)

// irrGrid is the probe grid scanned for a sign change of NPV. It is dense
// near zero (where real-world deal IRRs live) and sparse toward the extremes
// of the search domain [-0.95, 5.0].
var irrGrid = []float64{
	-0.95, -0.8, -0.6, -0.4, -0.2, -0.1, -0.05, -0.02,
	0.0, 0.01, 0.02, 0.05, 0.1, 0.2, 0.35, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0,
}

const (
	irrMaxIterations = 80
	irrNPVTolerance  = 1e-6
)

// IRR returns the periodic internal rate of return of cashflows.
//
// Newton-Raphson can diverge or oscillate on series with multiple sign
// changes or heavy leverage, so this solver brackets a root by scanning
// irrGrid for the first adjacent pair with opposite NPV signs and then runs
// plain bisection inside the bracket. Guaranteed to terminate: the search is
// bounded by the grid plus at most irrMaxIterations bisection steps.
//
// When no bracket exists in the finite region of the grid (flat or monotonic
// NPV, e.g. an all-positive series), IRR returns 0.0 as an explicit
// "no solution found" sentinel rather than an error. Callers treating an
// exact 0.0 as meaningful should cross-check it.
func IRR(cashflows []float64) float64 {
	// With no cash flows NPV is identically zero and every grid point would
	// look like a root; report the sentinel instead of the first grid value.
	if len(cashflows) == 0 {
		return 0.0
	}

	vals := make([]float64, len(irrGrid))
	for i, r := range irrGrid {
		vals[i] = NPV(r, cashflows)
	}

	// Find the first bracket where NPV changes sign. Pairs touching a
	// non-finite evaluation are skipped; a grid point landing exactly on a
	// root is returned as-is.
	var a, b, fa float64
	found := false
	for i := 0; i < len(irrGrid)-1; i++ {
		lo, hi := vals[i], vals[i+1]
		if !isFinite(lo) || !isFinite(hi) {
			continue
		}
		if lo == 0 {
			return irrGrid[i]
		}
		if hi == 0 {
			return irrGrid[i+1]
		}
		if (lo > 0 && hi < 0) || (lo < 0 && hi > 0) {
			a, b, fa = irrGrid[i], irrGrid[i+1], lo
			found = true
			break
		}
	}
	if !found {
		return 0.0
	}

	for i := 0; i < irrMaxIterations; i++ {
		mid := (a + b) / 2
		fm := NPV(mid, cashflows)
		if !isFinite(fm) {
			// Nudge back toward the finite endpoint once.
			mid = (mid + a) / 2
			fm = NPV(mid, cashflows)
		}
		if math.Abs(fm) < irrNPVTolerance {
			return mid
		}
		if (fa > 0 && fm < 0) || (fa < 0 && fm > 0) {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return (a + b) / 2
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
