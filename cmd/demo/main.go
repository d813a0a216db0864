package main

import (
	"flag"
	"fmt"

	"mining-econ/internal/calc"
	"mining-econ/internal/config"
	"mining-econ/internal/model"
	"mining-econ/internal/risk"
	"mining-econ/internal/scenariostore"
)

// Demo:
// - Build a few current-generation miner specs
// - Run the projection engine across a rate ladder
// - Save the scenario through the store and read it back
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	years := flag.Int("years", 3, "Projection horizon in years")
	flag.Parse()

	params := model.DefaultScenario("").Params
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.ScenarioParams()
	}
	params.ProjectionYears = *years
	params, err := model.NewScenarioParams(params)
	if err != nil {
		panic(err)
	}

	specs := []struct {
		name     string
		hashrate float64
		power    float64
		price    float64
	}{
		{"S21 Pro", 234, 3510, 5200},
		{"S19k Pro", 120, 2760, 1700},
		{"M60S", 186, 3422, 3300},
	}
	miners := make([]model.MinerSpec, 0, len(specs))
	for _, s := range specs {
		m, err := model.NewMinerSpec("", s.name, s.hashrate, s.power, s.price)
		if err != nil {
			panic(err)
		}
		miners = append(miners, m)
	}

	rates := []float64{0.04, 0.06, 0.08}
	rows := calc.BuildProfitMatrix(miners, nil, params, rates)

	fmt.Printf("Projection: %d years, BTC $%.0f -> $%.0f, network %.0f -> %.0f EH\n\n",
		params.ProjectionYears, params.BTCPriceStart, params.BTCPriceEnd,
		params.NetworkHashrateStartEH, params.NetworkHashrateEndEH)

	fmt.Printf("%-10s %-7s %-12s %-9s %-12s\n", "miner", "$/kWh", "net profit", "roi%", "grade")
	for _, row := range rows {
		s := row.Summary
		fmt.Printf("%-10s %-7.3f %-12s %-9.1f %-12s\n",
			row.Miner.Name, row.ElectricityRate,
			risk.DisplayValue(risk.MetricProfit, s.NetProfit), s.ROI,
			risk.CellSeverity(risk.MetricROI, s.ROI))
	}

	ins := risk.QuickInsights(rows)
	fmt.Printf("\nBest: %s ($%.0f)  Worst: %s ($%.0f)\n",
		ins.BestMiner, ins.BestNetProfit, ins.WorstMiner, ins.WorstNetProfit)
	fmt.Printf("Profitable cells: %d/%d  Risk score: %.0f/100\n",
		ins.ProfitableCells, ins.Cells, ins.RiskScore)

	// Round-trip the scenario through the store.
	store := scenariostore.New("demo", nil)
	sc := model.NewScenario("demo-run", params, miners, nil)
	store.SaveScenario(sc)
	loaded := store.LoadScenario("demo-run")
	fmt.Printf("\nScenario %q saved and reloaded (schema v%d, %d miners)\n",
		loaded.Name, loaded.SchemaVersion, len(loaded.Miners))
}
