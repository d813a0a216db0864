package calc

import (
	"math"

	"mining-econ/internal/model"
)

// DefaultBlockReward is the post-April-2024-halving coinbase subsidy.
const DefaultBlockReward = 3.125

// BlocksPerDay is the protocol's target block cadence.
const BlocksPerDay = 144

// ehToTH converts network hashrate from EH/s to TH/s.
const ehToTH = 1e6

// PeriodRates are the resolved market conditions for one period.
type PeriodRates struct {
	BTCPrice          float64
	NetworkHashrateEH float64
	ElectricityRate   float64
	PoolFeePct        float64
	BlockReward       float64
	Days              float64
	Hours             float64
}

// MonthRates builds PeriodRates for one average month (365.25/12 days).
func MonthRates(btcPrice, networkEH, electricityRate, poolFeePct float64) PeriodRates {
	days := 365.25 / 12
	return PeriodRates{
		BTCPrice:          btcPrice,
		NetworkHashrateEH: networkEH,
		ElectricityRate:   electricityRate,
		PoolFeePct:        poolFeePct,
		BlockReward:       DefaultBlockReward,
		Days:              days,
		Hours:             days * 24,
	}
}

// halvings after the 2024 event, anchored for BlockRewardAt.
var halvingSchedule = []struct {
	year   int
	reward float64
}{
	{2024, 3.125},
	{2028, 1.5625},
	{2032, 0.78125},
	{2036, 0.390625},
}

// BlockRewardAt returns the expected subsidy for a calendar year under the
// four-year halving cadence. Years before the table use the 2020 reward.
func BlockRewardAt(year int) float64 {
	reward := 6.25
	for _, h := range halvingSchedule {
		if year >= h.year {
			reward = h.reward
		}
	}
	return reward
}

// MonthlyProfit computes one period's production and cash flow for one
// miner. Pure: no side effects, and well-formed non-negative inputs can
// never produce NaN or Inf. Zero hashrate or zero power yields zero
// production or cost, not an error.
func MonthlyProfit(m model.MinerSpec, r PeriodRates) model.MonthlyResult {
	hashrate := sanitize(m.HashrateTH)
	power := sanitize(m.PowerW)
	price := sanitize(r.BTCPrice)
	networkEH := sanitize(r.NetworkHashrateEH)
	elecRate := sanitize(r.ElectricityRate)
	feePct := sanitize(r.PoolFeePct)
	reward := r.BlockReward
	if reward <= 0 || math.IsNaN(reward) || math.IsInf(reward, 0) {
		reward = DefaultBlockReward
	}
	days := sanitize(r.Days)
	hours := sanitize(r.Hours)

	var networkShare float64
	if networkEH > 0 {
		networkShare = hashrate / (networkEH * ehToTH)
	}

	btcPerDay := networkShare * BlocksPerDay * reward
	btcMined := btcPerDay * days

	gross := btcMined * price
	poolFees := gross * feePct / 100
	net := gross - poolFees

	electricity := (power / 1000) * hours * elecRate

	return model.MonthlyResult{
		BTCMined:          btcMined,
		GrossRevenue:      gross,
		PoolFees:          poolFees,
		NetRevenue:        net,
		ElectricityCost:   electricity,
		OperationalProfit: net - electricity,
	}
}

// sanitize maps negative, NaN, and Inf inputs to zero so malformed input
// degrades instead of propagating through the arithmetic.
func sanitize(x float64) float64 {
	if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
