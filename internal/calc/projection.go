package calc

import (
	"math"

	"mining-econ/internal/model"
	"mining-econ/internal/tax"
)

// monthsPerYear is fixed; the engine's period is one average month.
const monthsPerYear = 12

// YearMultiplier re-anchors one projection year: the year's end price and
// network hashrate are its start values times these factors.
type YearMultiplier struct {
	Price      float64
	Difficulty float64
}

// MultipliersFromAnnualIncreases converts the params' annual percentage
// increases into one multiplier per year.
func MultipliersFromAnnualIncreases(params model.ScenarioParams, years int) []YearMultiplier {
	if years <= 0 {
		return nil
	}
	out := make([]YearMultiplier, years)
	for i := range out {
		out[i] = YearMultiplier{
			Price:      1 + params.AnnualBTCPriceIncreasePct/100,
			Difficulty: 1 + params.AnnualDifficultyIncreasePct/100,
		}
	}
	return out
}

// YearlyProfit computes a single year of operation for one miner at one
// electricity rate, interpolating the params' start/end values across the
// year's twelve months.
func YearlyProfit(m model.MinerSpec, electricityRate float64, params model.ScenarioParams, minerPrices map[string]float64) model.YearlyProfit {
	rows := ProjectYearsAt(m, electricityRate, params, minerPrices, 1)
	if len(rows) == 0 {
		return model.YearlyProfit{}
	}
	return rows[0]
}

// ProjectYears runs the full params.ProjectionYears horizon and returns
// one YearlyProfit row per year. NetProfit and ROI are cumulative: row N
// answers "where do I stand after N years against the acquisition price".
func ProjectYears(m model.MinerSpec, electricityRate float64, params model.ScenarioParams, minerPrices map[string]float64) []model.YearlyProfit {
	return ProjectYearsAt(m, electricityRate, params, minerPrices, params.ProjectionYears)
}

// ProjectYearsAt is ProjectYears with an explicit horizon override.
func ProjectYearsAt(m model.MinerSpec, electricityRate float64, params model.ScenarioParams, minerPrices map[string]float64, years int) []model.YearlyProfit {
	if years <= 0 {
		return nil
	}
	if params.UseAnnualIncreases {
		params = model.ApplyAnnualIncreases(params)
	}
	months := interpolatedMonths(params, electricityRate, years)
	return projectMonths(m, months, resolveMinerPrice(m, minerPrices), params)
}

// MultiYearProjection aggregates the whole horizon into one summary row.
// A non-positive horizon returns a zeroed aggregate, never an error.
func MultiYearProjection(m model.MinerSpec, electricityRate float64, params model.ScenarioParams, minerPrices map[string]float64, years int) model.YearlyProfit {
	rows := ProjectYearsAt(m, electricityRate, params, minerPrices, years)
	return summarize(rows, resolveMinerPrice(m, minerPrices), years)
}

// ProjectWithMultipliers is the generalized N-year variant: each year
// re-anchors its own start/end from the prior year's end and that year's
// multiplier, instead of one continuous interpolation over the horizon.
func ProjectWithMultipliers(m model.MinerSpec, electricityRate float64, params model.ScenarioParams, minerPrices map[string]float64, mults []YearMultiplier) []model.YearlyProfit {
	if len(mults) == 0 {
		return nil
	}
	months := multiplierMonths(params, electricityRate, mults)
	return projectMonths(m, months, resolveMinerPrice(m, minerPrices), params)
}

// OneYearProjection is the flat single-year entry point.
func OneYearProjection(m model.MinerSpec, electricityRate float64, params model.ScenarioParams, minerPrices map[string]float64) []model.YearlyProfit {
	return ProjectWithMultipliers(m, electricityRate, params, minerPrices, []YearMultiplier{{Price: 1, Difficulty: 1}})
}

// TwoYearProjection applies one multiplier per year across two years.
func TwoYearProjection(m model.MinerSpec, electricityRate float64, params model.ScenarioParams, minerPrices map[string]float64, m1, m2 YearMultiplier) []model.YearlyProfit {
	return ProjectWithMultipliers(m, electricityRate, params, minerPrices, []YearMultiplier{m1, m2})
}

// ThreeYearProjection applies one multiplier per year across three years.
func ThreeYearProjection(m model.MinerSpec, electricityRate float64, params model.ScenarioParams, minerPrices map[string]float64, m1, m2, m3 YearMultiplier) []model.YearlyProfit {
	return ProjectWithMultipliers(m, electricityRate, params, minerPrices, []YearMultiplier{m1, m2, m3})
}

func resolveMinerPrice(m model.MinerSpec, minerPrices map[string]float64) float64 {
	if p, ok := minerPrices[m.ID]; ok && p >= 0 {
		return p
	}
	return m.AcquisitionPrice
}

// interpolatedMonths resolves the monthly rate trajectory by linear
// interpolation between the params' start and end values across the whole
// horizon, grouped per year. Declining end values are valid.
func interpolatedMonths(params model.ScenarioParams, electricityRate float64, years int) [][]PeriodRates {
	total := years * monthsPerYear
	denom := float64(total - 1)
	if denom <= 0 {
		denom = 1
	}
	out := make([][]PeriodRates, years)
	for y := 0; y < years; y++ {
		yearMonths := make([]PeriodRates, monthsPerYear)
		for i := 0; i < monthsPerYear; i++ {
			idx := y*monthsPerYear + i
			f := float64(idx) / denom
			price := params.BTCPriceStart + (params.BTCPriceEnd-params.BTCPriceStart)*f
			network := params.NetworkHashrateStartEH + (params.NetworkHashrateEndEH-params.NetworkHashrateStartEH)*f
			yearMonths[i] = MonthRates(price, network, electricityRate, params.PoolFeePct)
		}
		out[y] = yearMonths
	}
	return out
}

// multiplierMonths resolves the trajectory year by year: each year's start
// is the prior year's end, its end is start x multiplier, and the twelve
// months interpolate between the two.
func multiplierMonths(params model.ScenarioParams, electricityRate float64, mults []YearMultiplier) [][]PeriodRates {
	priceStart := params.BTCPriceStart
	networkStart := params.NetworkHashrateStartEH
	out := make([][]PeriodRates, len(mults))
	for y, mult := range mults {
		priceEnd := priceStart * mult.Price
		networkEnd := networkStart * mult.Difficulty
		yearMonths := make([]PeriodRates, monthsPerYear)
		for i := 0; i < monthsPerYear; i++ {
			f := float64(i) / float64(monthsPerYear-1)
			price := priceStart + (priceEnd-priceStart)*f
			network := networkStart + (networkEnd-networkStart)*f
			yearMonths[i] = MonthRates(price, network, electricityRate, params.PoolFeePct)
		}
		out[y] = yearMonths
		priceStart = priceEnd
		networkStart = networkEnd
	}
	return out
}

// projectMonths drives the monthly calculator across the resolved
// trajectory and layers depreciation and taxes per year.
func projectMonths(m model.MinerSpec, yearsOfMonths [][]PeriodRates, minerPrice float64, params model.ScenarioParams) []model.YearlyProfit {
	out := make([]model.YearlyProfit, 0, len(yearsOfMonths))
	cumAfterTax := 0.0

	for yi, months := range yearsOfMonths {
		yp := model.YearlyProfit{Year: yi + 1, MinerPrice: minerPrice}
		for _, rates := range months {
			res := MonthlyProfit(m, rates)
			yp.TotalBTCMined += res.BTCMined
			yp.TotalRevenue += res.GrossRevenue
			yp.TotalPoolFees += res.PoolFees
			yp.TotalElectricity += res.ElectricityCost
			yp.TotalOperationalProfit += res.OperationalProfit
		}

		yp.Depreciation = tax.Deduction(minerPrice, yi+1, params.UseBonusDepreciation, 0, nil)
		liab := tax.Compute(yp.TotalOperationalProfit, yp.Depreciation, params.FederalTaxRatePct, params.StateTaxRatePct)
		yp.TaxableIncome = liab.TaxableIncome
		yp.FederalTax = liab.FederalTax
		yp.StateTax = liab.StateTax
		yp.TotalTax = liab.TotalTax
		yp.AfterTaxProfit = liab.AfterTaxProfit

		cumAfterTax += liab.AfterTaxProfit
		yp.NetProfit = cumAfterTax - minerPrice
		if minerPrice > 0 {
			yp.ROI = yp.NetProfit / minerPrice * 100
		}
		out = append(out, yp)
	}
	return out
}

// summarize folds per-year rows into one horizon aggregate.
func summarize(rows []model.YearlyProfit, minerPrice float64, years int) model.YearlyProfit {
	if len(rows) == 0 {
		return model.YearlyProfit{}
	}
	sum := model.YearlyProfit{Year: years, MinerPrice: minerPrice}
	for _, r := range rows {
		sum.TotalBTCMined += r.TotalBTCMined
		sum.TotalRevenue += r.TotalRevenue
		sum.TotalPoolFees += r.TotalPoolFees
		sum.TotalElectricity += r.TotalElectricity
		sum.TotalOperationalProfit += r.TotalOperationalProfit
		sum.Depreciation += r.Depreciation
		sum.TaxableIncome += r.TaxableIncome
		sum.FederalTax += r.FederalTax
		sum.StateTax += r.StateTax
		sum.TotalTax += r.TotalTax
		sum.AfterTaxProfit += r.AfterTaxProfit
	}
	sum.NetProfit = sum.AfterTaxProfit - minerPrice
	if minerPrice > 0 {
		sum.ROI = sum.NetProfit / minerPrice * 100
		finalValue := minerPrice + sum.NetProfit
		if finalValue > 0 && years > 0 {
			sum.AnnualizedROI = (math.Pow(finalValue/minerPrice, 1/float64(years)) - 1) * 100
		}
	}
	return sum
}
