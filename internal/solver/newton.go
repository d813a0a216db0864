// Package solver finds the annual return required to grow an initial
// investment, plus optional annual contributions, to a target future
// value. Rates passed in are fractions (0.10 = 10%); required-return
// results are percentages, matching how they are displayed.
package solver

import "math"

const (
	initialGuess  = 0.10
	tolerance     = 1e-6
	maxIterations = 100

	// zeroRateEps guards the removable singularity of the contribution
	// growth term at r = 0. Mid-iteration estimates can approach zero
	// even when the inputs look benign, so the limit values are
	// substituted inside the iteration, not just at the entry points.
	zeroRateEps = 1e-9
)

// FutureValueWithReturn computes P(1+r)^n + C[(1+r)^n - 1]/r.
// A zero horizon returns P exactly; a zero rate uses the limiting value
// of the growth term (P + C*n), never a division by zero.
func FutureValueWithReturn(principal, contribution, rate float64, years int) float64 {
	if years <= 0 {
		return principal
	}
	n := float64(years)
	return principal*math.Pow(1+rate, n) + contribution*growthFactor(rate, n)
}

// RequiredReturn solves the contribution-free case in closed form:
// r = (T/P)^(1/n) - 1, as a percentage. Undefined inputs (non-positive
// principal with a positive target, or no horizon) return +Inf as a
// deliberate sentinel rather than panicking.
func RequiredReturn(initial, target float64, years int) float64 {
	if years <= 0 {
		return math.Inf(1)
	}
	if initial >= target {
		return 0
	}
	if initial <= 0 {
		return math.Inf(1)
	}
	return (math.Pow(target/initial, 1/float64(years)) - 1) * 100
}

// RequiredReturnWithContributions solves for the annual rate r such that
// P(1+r)^n + C[(1+r)^n - 1]/r = T, as a percentage.
//
// The principal-only case defers to the closed form. If principal plus
// raw contributions already meets the target, the answer is 0. Otherwise
// Newton-Raphson iterates from a fixed guess using the analytic
// derivative; on non-convergence the last estimate is returned as a
// degraded-precision result, not an error.
func RequiredReturnWithContributions(initial, contribution, target float64, years int) float64 {
	if years <= 0 {
		return math.Inf(1)
	}
	if contribution == 0 {
		return RequiredReturn(initial, target, years)
	}
	n := float64(years)
	if initial+contribution*n >= target {
		return 0
	}
	if initial <= 0 && contribution <= 0 {
		return math.Inf(1)
	}

	r := initialGuess
	for i := 0; i < maxIterations; i++ {
		f := initial*math.Pow(1+r, n) + contribution*growthFactor(r, n) - target
		fPrime := initial*n*math.Pow(1+r, n-1) + contribution*growthFactorDerivative(r, n)
		if math.Abs(fPrime) < zeroRateEps {
			break
		}
		next := r - f/fPrime
		// Keep 1+r positive so the power terms stay defined.
		if next <= -1 {
			next = -0.999
		}
		delta := next - r
		r = next
		if math.Abs(delta) < tolerance {
			break
		}
	}
	return r * 100
}

// AdditionalContributionNeeded returns the extra annual contribution
// required to reach the target at the given rate, or 0 when the projected
// value already meets it. With no horizon there are no contribution
// periods, so the raw shortfall comes back instead of Inf.
func AdditionalContributionNeeded(principal, contribution, target, rate float64, years int) float64 {
	projected := FutureValueWithReturn(principal, contribution, rate, years)
	shortfall := target - projected
	if shortfall <= 0 {
		return 0
	}
	if years <= 0 {
		return shortfall
	}
	return shortfall / growthFactor(rate, float64(years))
}

// growthFactor is [(1+r)^n - 1]/r with its r=0 singularity removed: the
// limit as r -> 0 is n.
func growthFactor(r, n float64) float64 {
	if math.Abs(r) < zeroRateEps {
		return n
	}
	return (math.Pow(1+r, n) - 1) / r
}

// growthFactorDerivative is d/dr of growthFactor. The r=0 limit is
// n(n-1)/2.
func growthFactorDerivative(r, n float64) float64 {
	if math.Abs(r) < zeroRateEps {
		return n * (n - 1) / 2
	}
	g := math.Pow(1+r, n-1)
	return (n*g*r - (g*(1+r) - 1)) / (r * r)
}
