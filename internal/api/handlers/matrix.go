package handlers

import (
	"net/http"

	"mining-econ/internal/api/models"
	"mining-econ/internal/calc"
	"mining-econ/internal/model"
	"mining-econ/internal/risk"

	"github.com/gin-gonic/gin"
)

// MatrixHandler handles profit-matrix requests
type MatrixHandler struct{}

func NewMatrixHandler() *MatrixHandler {
	return &MatrixHandler{}
}

// BuildMatrix handles POST /api/v1/matrix
func (h *MatrixHandler) BuildMatrix(c *gin.Context) {
	var req models.MatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}
	if len(req.Miners) == 0 || len(req.Rates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: "at least one miner and one rate are required"},
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

	rows := calc.BuildProfitMatrix(req.Miners, req.MinerPrices, params, req.Rates)
	c.JSON(http.StatusOK, models.MatrixResponse{
		Rows:     rows,
		Insights: risk.QuickInsights(rows),
	})
}
