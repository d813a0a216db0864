package handlers

import (
	"math"
	"net/http"

	"mining-econ/internal/api/models"
	"mining-econ/internal/risk"
	"mining-econ/internal/solver"

	"github.com/gin-gonic/gin"
)

// SolverHandler handles required-return and IRR/NPV requests
type SolverHandler struct{}

func NewSolverHandler() *SolverHandler {
	return &SolverHandler{}
}

// RequiredReturn handles POST /api/v1/solver/required-return
func (h *SolverHandler) RequiredReturn(c *gin.Context) {
	var req models.RequiredReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	rate := solver.RequiredReturnWithContributions(req.Initial, req.Contribution, req.Target, req.Years)
	resp := models.RequiredReturnResponse{}
	if math.IsInf(rate, 0) {
		resp.Undefined = true
	} else {
		resp.RequiredReturnPct = &rate
	}
	c.JSON(http.StatusOK, resp)
}

// EvaluateIRR handles POST /api/v1/irr
func (h *SolverHandler) EvaluateIRR(c *gin.Context) {
	var req models.IRRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	resp := models.IRRResponse{}
	if irr, ok := risk.IRR(req.CashFlows); ok {
		resp.IRR = &irr
	}
	if req.NPVRate != nil {
		npv := risk.NPV(req.CashFlows, *req.NPVRate)
		resp.NPV = &npv
	}
	c.JSON(http.StatusOK, resp)
}
