package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"mining-econ/internal/calc"
	"mining-econ/internal/config"
	"mining-econ/internal/model"
	"mining-econ/internal/risk"
	"mining-econ/internal/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "project":
		cmdProject(os.Args[2:])
	case "matrix":
		cmdMatrix(os.Args[2:])
	case "solve":
		cmdSolve(os.Args[2:])
	case "scenarios":
		cmdScenarios(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli project --config examples/config.yaml --hashrate 234 --power 3510 --price 5500 [--years 3]")
	fmt.Println("  cli matrix --config examples/config.yaml --hashrate 234 --power 3510 --price 5500 --rates 0.04,0.06,0.08")
	fmt.Println("  cli solve --initial 50000 --target 1000000 --years 20 [--contribution 1000]")
	fmt.Println("  cli scenarios --config examples/config.yaml [--delete NAME]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - project prints per-year production, taxes, and cumulative net profit")
	fmt.Println("  - matrix prints one row per electricity rate plus quick insights")
	fmt.Println("  - solve prints the annual return (%) required to hit the target")
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	name := fs.String("name", "miner", "Miner name")
	hashrate := fs.Float64("hashrate", 0, "Miner hashrate (TH/s)")
	power := fs.Float64("power", 0, "Miner power draw (W)")
	price := fs.Float64("price", 0, "Miner acquisition price ($)")
	years := fs.Int("years", 0, "Optional: override projection horizon")
	_ = fs.Parse(args)

	params := loadParams(*cfgPath)
	if *years > 0 {
		params.ProjectionYears = *years
	}

	m, err := model.NewMinerSpec("", *name, *hashrate, *power, *price)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	rows := calc.ProjectYears(m, params.ElectricityRate, params, nil)
	summary := calc.MultiYearProjection(m, params.ElectricityRate, params, nil, params.ProjectionYears)

	fmt.Printf("%s  %.0f TH/s  %.0f W  (%.1f J/TH)  $%.0f\n\n",
		m.Name, m.HashrateTH, m.PowerW, m.EfficiencyJPerTH, m.AcquisitionPrice)
	fmt.Printf("%-5s %-10s %-12s %-12s %-12s %-12s %-10s\n",
		"year", "btc", "revenue", "electricity", "tax", "net(cum)", "roi%")
	for _, r := range rows {
		fmt.Printf("%-5d %-10.5f %-12.2f %-12.2f %-12.2f %-12.2f %-10.1f\n",
			r.Year, r.TotalBTCMined, r.TotalRevenue, r.TotalElectricity, r.TotalTax, r.NetProfit, r.ROI)
	}
	fmt.Printf("\nHorizon: net=$%.2f roi=%.1f%% annualized=%.1f%%\n",
		summary.NetProfit, summary.ROI, summary.AnnualizedROI)
}

func cmdMatrix(args []string) {
	fs := flag.NewFlagSet("matrix", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	name := fs.String("name", "miner", "Miner name")
	hashrate := fs.Float64("hashrate", 0, "Miner hashrate (TH/s)")
	power := fs.Float64("power", 0, "Miner power draw (W)")
	price := fs.Float64("price", 0, "Miner acquisition price ($)")
	ratesArg := fs.String("rates", "0.04,0.06,0.08,0.10", "Comma-separated electricity rates ($/kWh)")
	_ = fs.Parse(args)

	params := loadParams(*cfgPath)
	rates := parseRates(*ratesArg)

	m, err := model.NewMinerSpec("", *name, *hashrate, *power, *price)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	rows := calc.BuildProfitMatrix([]model.MinerSpec{m}, nil, params, rates)
	fmt.Printf("%-8s %-12s %-10s %-12s %-10s\n", "$/kWh", "net profit", "roi%", "display", "grade")
	for _, row := range rows {
		s := row.Summary
		fmt.Printf("%-8.3f %-12.2f %-10.1f %-12s %-10s\n",
			row.ElectricityRate, s.NetProfit, s.ROI,
			risk.DisplayValue(risk.MetricProfit, s.NetProfit),
			risk.CellSeverity(risk.MetricROI, s.ROI))
	}

	ins := risk.QuickInsights(rows)
	fmt.Printf("\nprofitable %d/%d cells  roi spread %.1f  risk score %.0f/100\n",
		ins.ProfitableCells, ins.Cells, ins.ROISpread, ins.RiskScore)
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	initial := fs.Float64("initial", 0, "Initial investment ($)")
	contribution := fs.Float64("contribution", 0, "Annual contribution ($)")
	target := fs.Float64("target", 0, "Target future value ($)")
	years := fs.Int("years", 0, "Horizon (years)")
	_ = fs.Parse(args)

	rate := solver.RequiredReturnWithContributions(*initial, *contribution, *target, *years)
	if math.IsInf(rate, 0) {
		fmt.Println("required return: undefined for these inputs")
		return
	}
	fmt.Printf("required annual return: %.2f%%\n", rate)
	fmt.Printf("check: FV at that rate = $%.2f (target $%.2f)\n",
		solver.FutureValueWithReturn(*initial, *contribution, rate/100, *years), *target)
}

func cmdScenarios(args []string) {
	fs := flag.NewFlagSet("scenarios", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	deleteName := fs.String("delete", "", "Optional: delete the named scenario")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	store, err := cfg.OpenStore()
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	if *deleteName != "" {
		store.DeleteScenario(*deleteName)
		fmt.Printf("deleted %q\n", *deleteName)
		return
	}

	names := store.ListScenarios()
	if len(names) == 0 {
		fmt.Println("no saved scenarios")
		return
	}
	for _, n := range names {
		sc := store.LoadScenario(n)
		fmt.Printf("%-24s miners=%d years=%d saved=%s\n",
			sc.Name, len(sc.Miners), sc.Params.ProjectionYears, sc.SavedDate)
	}
}

func loadParams(cfgPath string) model.ScenarioParams {
	if cfgPath == "" {
		sc := model.DefaultScenario("")
		return sc.Params
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	params, err := model.NewScenarioParams(cfg.ScenarioParams())
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return params
}

func parseRates(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}
