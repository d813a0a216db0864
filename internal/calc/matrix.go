package calc

import "mining-econ/internal/model"

// BuildProfitMatrix computes every (miner, electricity rate) cell over the
// params horizon. Rows are fully recomputed on every call; callers never
// patch a matrix incrementally.
func BuildProfitMatrix(miners []model.MinerSpec, minerPrices map[string]float64, params model.ScenarioParams, rates []float64) []model.ProfitMatrixRow {
	rows := make([]model.ProfitMatrixRow, 0, len(miners)*len(rates))
	for _, m := range miners {
		for _, rate := range rates {
			if rate < 0 {
				rate = 0
			}
			results := ProjectYears(m, rate, params, minerPrices)
			rows = append(rows, model.ProfitMatrixRow{
				Miner:           m,
				ElectricityRate: rate,
				Results:         results,
				Summary:         summarize(results, resolveMinerPrice(m, minerPrices), params.ProjectionYears),
			})
		}
	}
	return rows
}
