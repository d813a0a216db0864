package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewScenarioParamsRejectsZeroHorizon(t *testing.T) {
	_, err := NewScenarioParams(ScenarioParams{ProjectionYears: 0})
	require.Error(t, err)
	_, err = NewScenarioParams(ScenarioParams{ProjectionYears: -3})
	require.Error(t, err)
}

func TestNewScenarioParamsClampsNegatives(t *testing.T) {
	p, err := NewScenarioParams(ScenarioParams{
		BTCPriceStart:   -100,
		ElectricityRate: -0.05,
		PoolFeePct:      -2,
		ProjectionYears: 1,
	})
	require.NoError(t, err)
	require.Zero(t, p.BTCPriceStart)
	require.Zero(t, p.ElectricityRate)
	require.Zero(t, p.PoolFeePct)
}

func TestApplyAnnualIncreasesCompounds(t *testing.T) {
	p := ScenarioParams{
		BTCPriceStart:               100000,
		NetworkHashrateStartEH:      800,
		AnnualBTCPriceIncreasePct:   20,
		AnnualDifficultyIncreasePct: 10,
		UseAnnualIncreases:          true,
		ProjectionYears:             3,
	}
	out := ApplyAnnualIncreases(p)
	require.InDelta(t, 100000*math.Pow(1.2, 3), out.BTCPriceEnd, 1e-6)
	require.InDelta(t, 800*math.Pow(1.1, 3), out.NetworkHashrateEndEH, 1e-9)
}

func TestApplyAnnualIncreasesZeroRateIsIdentity(t *testing.T) {
	p := ScenarioParams{
		BTCPriceStart:          50000,
		NetworkHashrateStartEH: 600,
		UseAnnualIncreases:     true,
		ProjectionYears:        5,
	}
	out := ApplyAnnualIncreases(p)
	require.InDelta(t, 50000, out.BTCPriceEnd, 1e-9)
	require.InDelta(t, 600, out.NetworkHashrateEndEH, 1e-9)
}

func TestNewScenarioParamsDerivesEndValues(t *testing.T) {
	p, err := NewScenarioParams(ScenarioParams{
		BTCPriceStart:             80000,
		BTCPriceEnd:               1, // stale; derived value must win
		NetworkHashrateStartEH:    700,
		AnnualBTCPriceIncreasePct: 10,
		UseAnnualIncreases:        true,
		ProjectionYears:           2,
	})
	require.NoError(t, err)
	require.InDelta(t, 80000*1.21, p.BTCPriceEnd, 1e-6)
}
