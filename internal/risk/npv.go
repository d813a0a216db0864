// Package risk provides IRR/NPV, matrix-level insight aggregation, and
// the severity bucketing used to grade matrix cells.
package risk

import "math"

const (
	irrLowerBound = -0.99
	irrUpperBound = 10.0
	irrScanStep   = 0.01
	irrBisections = 80
	irrTolerance  = 1e-7
)

// NPV is the discounted sum of a signed cash-flow series: sum of
// CF_t / (1+rate)^t with t starting at 0.
func NPV(cashFlows []float64, rate float64) float64 {
	discount := 1.0
	total := 0.0
	for _, cf := range cashFlows {
		total += cf / discount
		discount *= 1 + rate
	}
	return total
}

// IRR finds the rate at which NPV crosses zero, searching the bounded
// domain [-99%, +1000%]. ok=false means no sign change exists in that
// domain; the search never diverges.
func IRR(cashFlows []float64) (float64, bool) {
	if len(cashFlows) < 2 {
		return 0, false
	}

	lo, hi, found := irrBracket(cashFlows)
	if !found {
		return 0, false
	}

	fLo := NPV(cashFlows, lo)
	for i := 0; i < irrBisections; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(cashFlows, mid)
		if math.Abs(fMid) < irrTolerance {
			return mid, true
		}
		if (fLo < 0) == (fMid < 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}

// irrBracket scans the domain for the first sign change of NPV.
func irrBracket(cashFlows []float64) (lo, hi float64, found bool) {
	prevRate := irrLowerBound
	prevNPV := NPV(cashFlows, prevRate)
	for rate := irrLowerBound + irrScanStep; rate <= irrUpperBound; rate += irrScanStep {
		cur := NPV(cashFlows, rate)
		if prevNPV == 0 {
			return prevRate, prevRate, true
		}
		if (prevNPV < 0) != (cur < 0) {
			return prevRate, rate, true
		}
		prevRate, prevNPV = rate, cur
	}
	return 0, 0, false
}
