package models

import (
	"mining-econ/internal/model"
	"mining-econ/internal/risk"
)

// ProjectionResponse carries a horizon summary plus per-year rows.
type ProjectionResponse struct {
	Summary model.YearlyProfit   `json:"summary"`
	Years   []model.YearlyProfit `json:"years"`
}

// MatrixResponse carries the recomputed matrix and its insights.
type MatrixResponse struct {
	Rows     []model.ProfitMatrixRow `json:"rows"`
	Insights risk.Insights           `json:"insights"`
}

// RequiredReturnResponse reports the solved rate as a percentage.
// Undefined marks the +Inf sentinel (e.g. zero initial investment), in
// which case RequiredReturnPct is omitted.
type RequiredReturnResponse struct {
	RequiredReturnPct *float64 `json:"required_return_pct"`
	Undefined         bool     `json:"undefined,omitempty"`
}

// IRRResponse reports IRR (null when no root exists in the bounded
// search domain) and optionally NPV at the requested rate.
type IRRResponse struct {
	IRR *float64 `json:"irr"`
	NPV *float64 `json:"npv,omitempty"`
}

// ScenarioListResponse lists saved scenario names.
type ScenarioListResponse struct {
	Scenarios []string `json:"scenarios"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
