package tax

// Liability is the tax outcome for one year of operation.
type Liability struct {
	TaxableIncome  float64
	FederalTax     float64
	StateTax       float64
	TotalTax       float64
	AfterTaxProfit float64
}

// Compute applies depreciation and the federal/state rates (whole
// percents) to a year's operational profit.
//
// Depreciation only shelters income: it reduces taxable income but is
// never subtracted from cash profit a second time. Negative taxable
// income owes no tax but is still reported as-is.
func Compute(operationalProfit, depreciation, federalRatePct, stateRatePct float64) Liability {
	if federalRatePct < 0 {
		federalRatePct = 0
	}
	if stateRatePct < 0 {
		stateRatePct = 0
	}

	taxable := operationalProfit - depreciation
	base := taxable
	if base < 0 {
		base = 0
	}
	federal := base * federalRatePct / 100
	state := base * stateRatePct / 100
	total := federal + state

	return Liability{
		TaxableIncome:  taxable,
		FederalTax:     federal,
		StateTax:       state,
		TotalTax:       total,
		AfterTaxProfit: operationalProfit - total,
	}
}
