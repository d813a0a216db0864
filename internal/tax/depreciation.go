// Package tax layers depreciation schedules and tax liability on top of
// operational profit. Policy tables (MACRS fractions, bonus-depreciation
// phase-out) are data, not inline conditionals, so rate changes are config
// edits rather than code edits.
package tax

// MACRS5Year is the standard 5-year property schedule. The fractions are
// 1-based by year index and sum to 1.0 (full cost recovery).
var MACRS5Year = []float64{0.20, 0.32, 0.192, 0.1152, 0.1152, 0.0576}

// BonusRate is one row of the bonus-depreciation phase-out table.
type BonusRate struct {
	Year int     `yaml:"year" json:"year"`
	Rate float64 `yaml:"rate" json:"rate"`
}

// BonusPolicy is the phase-out table: the first-year expensing fraction
// available for an acquisition in a given calendar year. Acquisitions
// before the first row get full expensing; at or after a row's year, that
// row's rate applies.
type BonusPolicy []BonusRate

// DefaultBonusPolicy reflects the TCJA phase-down.
var DefaultBonusPolicy = BonusPolicy{
	{Year: 2023, Rate: 0.80},
	{Year: 2024, Rate: 0.60},
	{Year: 2025, Rate: 0.40},
	{Year: 2026, Rate: 0.20},
	{Year: 2027, Rate: 0.0},
}

// RateFor returns the first-year bonus fraction for an acquisition year.
func (p BonusPolicy) RateFor(acquisitionYear int) float64 {
	rate := 1.0
	for _, row := range p {
		if acquisitionYear >= row.Year {
			rate = row.Rate
		}
	}
	return rate
}

// ScheduleEntry is one year of a depreciation schedule.
type ScheduleEntry struct {
	Year   int     `json:"year"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// DepreciationSchedule is the ordered full-recovery schedule for an asset.
type DepreciationSchedule []ScheduleEntry

// Schedule builds the year-by-year depreciation schedule for an asset.
//
// With bonus elected, the policy's first-year fraction of cost is expensed
// in year 1 and the remaining basis recovers through the regular MACRS
// fractions (so the schedule still sums to the full cost). Without bonus,
// the MACRS fractions apply directly.
func Schedule(assetCost float64, useBonus bool, acquisitionYear int, policy BonusPolicy) DepreciationSchedule {
	if assetCost < 0 {
		assetCost = 0
	}
	if policy == nil {
		policy = DefaultBonusPolicy
	}

	if !useBonus {
		out := make(DepreciationSchedule, 0, len(MACRS5Year))
		for i, frac := range MACRS5Year {
			out = append(out, ScheduleEntry{Year: i + 1, Rate: frac, Amount: assetCost * frac})
		}
		return out
	}

	bonusRate := policy.RateFor(acquisitionYear)
	remaining := assetCost * (1 - bonusRate)
	out := make(DepreciationSchedule, 0, len(MACRS5Year))
	for i, frac := range MACRS5Year {
		entry := ScheduleEntry{Year: i + 1}
		entry.Amount = remaining * frac
		if i == 0 {
			entry.Amount += assetCost * bonusRate
		}
		if assetCost > 0 {
			entry.Rate = entry.Amount / assetCost
		}
		out = append(out, entry)
	}
	return out
}

// Deduction returns the depreciation amount for a 1-based year index.
// Years beyond the schedule return 0.
func Deduction(assetCost float64, year int, useBonus bool, acquisitionYear int, policy BonusPolicy) float64 {
	if year < 1 {
		return 0
	}
	sched := Schedule(assetCost, useBonus, acquisitionYear, policy)
	if year > len(sched) {
		return 0
	}
	return sched[year-1].Amount
}
