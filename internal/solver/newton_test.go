package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequiredReturnClosedForm(t *testing.T) {
	// (1000000/50000)^(1/20) - 1 = 16.159...%
	got := RequiredReturn(50000, 1000000, 20)
	require.InDelta(t, 16.16, got, 0.1)
}

func TestRequiredReturnSentinels(t *testing.T) {
	require.True(t, math.IsInf(RequiredReturn(0, 1000000, 20), 1))
	require.True(t, math.IsInf(RequiredReturn(-5, 1000000, 20), 1))
	require.True(t, math.IsInf(RequiredReturn(50000, 1000000, 0), 1))
	require.Zero(t, RequiredReturn(1000000, 1000000, 20))
	require.Zero(t, RequiredReturn(2000000, 1000000, 20))
}

func TestRequiredReturnWithContributionsDefersToClosedForm(t *testing.T) {
	require.InDelta(t,
		RequiredReturn(50000, 1000000, 20),
		RequiredReturnWithContributions(50000, 0, 1000000, 20),
		1e-9)
}

func TestRequiredReturnWithContributionsShortCircuit(t *testing.T) {
	// 10000 + 5000*10 = 60000 >= 50000: principal alone meets the target.
	require.Zero(t, RequiredReturnWithContributions(10000, 5000, 50000, 10))
}

func TestRequiredReturnWithContributionsConverges(t *testing.T) {
	pct := RequiredReturnWithContributions(10000, 5000, 200000, 10)
	require.False(t, math.IsInf(pct, 0))
	require.Greater(t, pct, 0.0)

	// The solved rate must actually reproduce the target.
	fv := FutureValueWithReturn(10000, 5000, pct/100, 10)
	require.InDelta(t, 200000, fv, 200000*1e-3)
}

func TestRequiredReturnWithContributionsZeroHorizon(t *testing.T) {
	require.True(t, math.IsInf(RequiredReturnWithContributions(10000, 5000, 200000, 0), 1))
}

func TestFutureValueZeroHorizonReturnsPrincipal(t *testing.T) {
	for _, p := range []float64{0, 1, 50000, 1e9} {
		for _, r := range []float64{-0.5, 0, 0.07, 3} {
			require.Equal(t, p, FutureValueWithReturn(p, 1000, r, 0))
		}
	}
}

func TestFutureValueZeroRateIsLinear(t *testing.T) {
	// No singularity leakage: the r=0 path is exactly P + C*n.
	require.InDelta(t, 10000+1200*10, FutureValueWithReturn(10000, 1200, 0, 10), 1e-9)
	require.InDelta(t, 500*7, FutureValueWithReturn(0, 500, 0, 7), 1e-9)
}

func TestFutureValueCompound(t *testing.T) {
	// 1000 * 1.1^2 + 100 * (1.1^2 - 1)/0.1 = 1210 + 210 = 1420
	require.InDelta(t, 1420, FutureValueWithReturn(1000, 100, 0.1, 2), 1e-9)
}

func TestAdditionalContributionNeededZeroWhenMet(t *testing.T) {
	cases := []struct {
		p, c, target, rate float64
		years              int
	}{
		{100000, 0, 50000, 0.05, 10},
		{10000, 5000, 60000, 0, 10},
		{0, 1000, 5000, 0.07, 10},
		{50000, 0, 50000, 0, 1},
	}
	for _, tc := range cases {
		require.Zero(t, AdditionalContributionNeeded(tc.p, tc.c, tc.target, tc.rate, tc.years),
			"case %+v", tc)
	}
}

func TestAdditionalContributionNeededClosesTheGap(t *testing.T) {
	extra := AdditionalContributionNeeded(10000, 1000, 100000, 0.07, 10)
	require.Greater(t, extra, 0.0)

	fv := FutureValueWithReturn(10000, 1000+extra, 0.07, 10)
	require.InDelta(t, 100000, fv, 1e-6)
}

func TestAdditionalContributionNeededZeroHorizon(t *testing.T) {
	// No contribution periods: the raw shortfall, never Inf or NaN.
	got := AdditionalContributionNeeded(10000, 1000, 25000, 0.07, 0)
	require.InDelta(t, 15000, got, 1e-9)
}

func TestGrowthFactorLimits(t *testing.T) {
	require.InDelta(t, 10, growthFactor(0, 10), 1e-12)
	require.InDelta(t, 10, growthFactor(1e-12, 10), 1e-6)
	require.InDelta(t, 45, growthFactorDerivative(0, 10), 1e-9)
	// Continuity across the guard threshold.
	require.InDelta(t, growthFactor(1e-8, 10), growthFactor(1e-10, 10), 1e-5)
}
