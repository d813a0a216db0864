package models

import "mining-econ/internal/model"

// ProjectionRequest runs one miner through the multi-year engine.
type ProjectionRequest struct {
	Miner           model.MinerSpec      `json:"miner" binding:"required"`
	ElectricityRate float64              `json:"electricity_rate"`
	Params          model.ScenarioParams `json:"params" binding:"required"`
	MinerPrices     map[string]float64   `json:"miner_prices,omitempty"`
	// Years overrides params.projectionYears when > 0.
	Years int `json:"years,omitempty"`
}

// MatrixRequest computes the full (miner x electricity rate) matrix.
type MatrixRequest struct {
	Miners      []model.MinerSpec    `json:"miners" binding:"required"`
	MinerPrices map[string]float64   `json:"miner_prices,omitempty"`
	Params      model.ScenarioParams `json:"params" binding:"required"`
	Rates       []float64            `json:"rates" binding:"required"`
}

// RequiredReturnRequest solves for the annual return reaching a target.
type RequiredReturnRequest struct {
	Initial      float64 `json:"initial"`
	Contribution float64 `json:"contribution"`
	Target       float64 `json:"target" binding:"required"`
	Years        int     `json:"years" binding:"required"`
}

// IRRRequest evaluates a signed cash-flow series.
type IRRRequest struct {
	CashFlows []float64 `json:"cash_flows" binding:"required"`
	// NPVRate, when set, additionally evaluates NPV at this rate.
	NPVRate *float64 `json:"npv_rate,omitempty"`
}

// ScenarioSaveRequest persists a named scenario.
type ScenarioSaveRequest struct {
	Name        string               `json:"name" binding:"required"`
	Params      model.ScenarioParams `json:"params" binding:"required"`
	Miners      []model.MinerSpec    `json:"miners,omitempty"`
	MinerPrices map[string]float64   `json:"miner_prices,omitempty"`
}
