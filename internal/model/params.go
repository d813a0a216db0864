package model

import (
	"errors"
	"math"
)

// ScenarioParams holds the economic assumptions for one projection run.
// Prices are $/BTC, network hashrate is EH/s, electricity is $/kWh, and
// percentage fields are expressed as whole percents (21 means 21%).
type ScenarioParams struct {
	BTCPriceStart          float64 `json:"btcPriceStart"`
	BTCPriceEnd            float64 `json:"btcPriceEnd"`
	NetworkHashrateStartEH float64 `json:"networkHashrateStartEH"`
	NetworkHashrateEndEH   float64 `json:"networkHashrateEndEH"`
	PoolFeePct             float64 `json:"poolFeePct"`
	ElectricityRate        float64 `json:"electricityRate"`
	FederalTaxRatePct      float64 `json:"federalTaxRatePct"`
	StateTaxRatePct        float64 `json:"stateTaxRatePct"`
	UseBonusDepreciation   bool    `json:"useBonusDepreciation"`
	ProjectionYears        int     `json:"projectionYears"`

	// Annual-increase mode: end values are derived from start values and
	// the annual rates below. ApplyAnnualIncreases is the single
	// conversion point; the two representations are never maintained
	// independently.
	UseAnnualIncreases          bool    `json:"useAnnualIncreases"`
	AnnualBTCPriceIncreasePct   float64 `json:"annualBtcPriceIncreasePct,omitempty"`
	AnnualDifficultyIncreasePct float64 `json:"annualDifficultyIncreasePct,omitempty"`
}

// NewScenarioParams validates and normalizes a parameter set.
// Negative numeric fields are clamped to zero; ProjectionYears must be
// positive. When annual increases are enabled the end values are derived
// immediately so callers always see a consistent pair.
func NewScenarioParams(p ScenarioParams) (ScenarioParams, error) {
	if p.ProjectionYears <= 0 {
		return ScenarioParams{}, errors.New("projectionYears must be > 0")
	}
	p.BTCPriceStart = clampNonNegative(p.BTCPriceStart)
	p.BTCPriceEnd = clampNonNegative(p.BTCPriceEnd)
	p.NetworkHashrateStartEH = clampNonNegative(p.NetworkHashrateStartEH)
	p.NetworkHashrateEndEH = clampNonNegative(p.NetworkHashrateEndEH)
	p.PoolFeePct = clampNonNegative(p.PoolFeePct)
	p.ElectricityRate = clampNonNegative(p.ElectricityRate)
	p.FederalTaxRatePct = clampNonNegative(p.FederalTaxRatePct)
	p.StateTaxRatePct = clampNonNegative(p.StateTaxRatePct)
	if p.UseAnnualIncreases {
		p = ApplyAnnualIncreases(p)
	}
	return p, nil
}

// ApplyAnnualIncreases derives BTCPriceEnd and NetworkHashrateEndEH from
// the start values compounded over ProjectionYears. It is the single
// source of truth for the start/end <-> annual-rate conversion.
func ApplyAnnualIncreases(p ScenarioParams) ScenarioParams {
	years := float64(p.ProjectionYears)
	if years <= 0 {
		return p
	}
	p.BTCPriceEnd = p.BTCPriceStart * math.Pow(1+p.AnnualBTCPriceIncreasePct/100, years)
	p.NetworkHashrateEndEH = p.NetworkHashrateStartEH * math.Pow(1+p.AnnualDifficultyIncreasePct/100, years)
	return p
}
