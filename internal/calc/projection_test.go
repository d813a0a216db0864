package calc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mining-econ/internal/model"
)

func testParams(t *testing.T, years int) model.ScenarioParams {
	t.Helper()
	p, err := model.NewScenarioParams(model.ScenarioParams{
		BTCPriceStart:          100000,
		BTCPriceEnd:            120000,
		NetworkHashrateStartEH: 800,
		NetworkHashrateEndEH:   1000,
		PoolFeePct:             2,
		ElectricityRate:        0.08,
		FederalTaxRatePct:      24,
		StateTaxRatePct:        5,
		ProjectionYears:        years,
	})
	require.NoError(t, err)
	return p
}

func TestProjectYearsDeterministic(t *testing.T) {
	m := testMiner(t)
	p := testParams(t, 3)

	a := YearlyProfit(m, 0.08, p, nil)
	b := YearlyProfit(m, 0.08, p, nil)
	require.Equal(t, a, b)

	rowsA := ProjectYears(m, 0.08, p, nil)
	rowsB := ProjectYears(m, 0.08, p, nil)
	require.Equal(t, rowsA, rowsB)
}

func TestProjectYearsShapeAndCumulativeNetProfit(t *testing.T) {
	m := testMiner(t)
	p := testParams(t, 3)

	rows := ProjectYears(m, 0.08, p, nil)
	require.Len(t, rows, 3)

	cum := 0.0
	for i, r := range rows {
		require.Equal(t, i+1, r.Year)
		cum += r.AfterTaxProfit
		require.InDelta(t, cum-m.AcquisitionPrice, r.NetProfit, 1e-9)
		require.InDelta(t, r.NetProfit/m.AcquisitionPrice*100, r.ROI, 1e-9)
	}
}

func TestMultiYearProjectionAggregatesYears(t *testing.T) {
	m := testMiner(t)
	p := testParams(t, 2)

	rows := ProjectYears(m, 0.08, p, nil)
	sum := MultiYearProjection(m, 0.08, p, nil, 2)

	wantBTC := rows[0].TotalBTCMined + rows[1].TotalBTCMined
	require.InDelta(t, wantBTC, sum.TotalBTCMined, 1e-12)
	wantAfterTax := rows[0].AfterTaxProfit + rows[1].AfterTaxProfit
	require.InDelta(t, wantAfterTax, sum.AfterTaxProfit, 1e-9)
	require.InDelta(t, wantAfterTax-m.AcquisitionPrice, sum.NetProfit, 1e-9)
	require.Equal(t, 2, sum.Year)
}

func TestMultiYearProjectionZeroHorizon(t *testing.T) {
	m := testMiner(t)
	p := testParams(t, 1)

	require.Equal(t, model.YearlyProfit{}, MultiYearProjection(m, 0.08, p, nil, 0))
	require.Equal(t, model.YearlyProfit{}, MultiYearProjection(m, 0.08, p, nil, -4))
	require.Empty(t, ProjectYearsAt(m, 0.08, p, nil, 0))
}

func TestDecliningNetworkHashrateSupported(t *testing.T) {
	m := testMiner(t)
	p := testParams(t, 2)
	p.NetworkHashrateStartEH = 1000
	p.NetworkHashrateEndEH = 600

	rows := ProjectYears(m, 0.08, p, nil)
	require.Len(t, rows, 2)
	// Less competition later means more production in year 2.
	require.Greater(t, rows[1].TotalBTCMined, rows[0].TotalBTCMined)
}

func TestMultiplierWrappersMatchGeneralizedRoutine(t *testing.T) {
	m := testMiner(t)
	p := testParams(t, 3)
	m1 := YearMultiplier{Price: 1.10, Difficulty: 1.20}
	m2 := YearMultiplier{Price: 1.05, Difficulty: 1.15}
	m3 := YearMultiplier{Price: 0.95, Difficulty: 1.10}

	require.Equal(t,
		ProjectWithMultipliers(m, 0.08, p, nil, []YearMultiplier{{Price: 1, Difficulty: 1}}),
		OneYearProjection(m, 0.08, p, nil))
	require.Equal(t,
		ProjectWithMultipliers(m, 0.08, p, nil, []YearMultiplier{m1, m2}),
		TwoYearProjection(m, 0.08, p, nil, m1, m2))
	require.Equal(t,
		ProjectWithMultipliers(m, 0.08, p, nil, []YearMultiplier{m1, m2, m3}),
		ThreeYearProjection(m, 0.08, p, nil, m1, m2, m3))
}

func TestMultiplierYearsReAnchor(t *testing.T) {
	m := testMiner(t)
	p := testParams(t, 2)
	p.BTCPriceStart = 100000

	// Flat first year, +50% second year: year 2 must produce more
	// revenue per BTC than year 1.
	rows := TwoYearProjection(m, 0.08, p, nil,
		YearMultiplier{Price: 1, Difficulty: 1},
		YearMultiplier{Price: 1.5, Difficulty: 1})
	require.Len(t, rows, 2)
	require.Greater(t, rows[1].TotalRevenue, rows[0].TotalRevenue)
}

func TestMultipliersFromAnnualIncreases(t *testing.T) {
	p := testParams(t, 2)
	p.AnnualBTCPriceIncreasePct = 10
	p.AnnualDifficultyIncreasePct = 20

	mults := MultipliersFromAnnualIncreases(p, 2)
	require.Len(t, mults, 2)
	require.InDelta(t, 1.10, mults[0].Price, 1e-12)
	require.InDelta(t, 1.20, mults[1].Difficulty, 1e-12)

	require.Nil(t, MultipliersFromAnnualIncreases(p, 0))
}

func TestMinerPriceOverride(t *testing.T) {
	m := testMiner(t)
	p := testParams(t, 1)

	base := MultiYearProjection(m, 0.08, p, nil, 1)
	cheap := MultiYearProjection(m, 0.08, p, map[string]float64{m.ID: 1000}, 1)

	require.Equal(t, m.AcquisitionPrice, base.MinerPrice)
	require.Equal(t, 1000.0, cheap.MinerPrice)
	require.Greater(t, cheap.NetProfit, base.NetProfit)
}
