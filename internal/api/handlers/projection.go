package handlers

import (
	"net/http"

	"mining-econ/internal/api/models"
	"mining-econ/internal/calc"
	"mining-econ/internal/model"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler handles projection requests
type ProjectionHandler struct{}

func NewProjectionHandler() *ProjectionHandler {
	return &ProjectionHandler{}
}

// RunProjection handles POST /api/v1/projection
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	params, err := model.NewScenarioParams(req.Params)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_PARAMS", Message: err.Error()},
		})
		return
	}

	years := req.Years
	if years <= 0 {
		years = params.ProjectionYears
	}
	rate := req.ElectricityRate
	if rate <= 0 {
		rate = params.ElectricityRate
	}

	c.JSON(http.StatusOK, models.ProjectionResponse{
		Summary: calc.MultiYearProjection(req.Miner, rate, params, req.MinerPrices, years),
		Years:   calc.ProjectYearsAt(req.Miner, rate, params, req.MinerPrices, years),
	})
}
