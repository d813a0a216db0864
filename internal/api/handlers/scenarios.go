package handlers

import (
	"net/http"

	"mining-econ/internal/api/models"
	"mining-econ/internal/model"
	"mining-econ/internal/scenariostore"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler exposes the scenario store. The store itself never
// fails outward, so the handlers only ever report request-shape errors.
type ScenarioHandler struct {
	store *scenariostore.Store
}

func NewScenarioHandler(store *scenariostore.Store) *ScenarioHandler {
	if store == nil {
		store = scenariostore.New("", nil)
	}
	return &ScenarioHandler{store: store}
}

// List handles GET /api/v1/scenarios
func (h *ScenarioHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.ScenarioListResponse{Scenarios: h.store.ListScenarios()})
}

// Get handles GET /api/v1/scenarios/:name
func (h *ScenarioHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.LoadScenario(c.Param("name")))
}

// Save handles POST /api/v1/scenarios
func (h *ScenarioHandler) Save(c *gin.Context) {
	var req models.ScenarioSaveRequest
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

	sc := model.NewScenario(req.Name, params, req.Miners, req.MinerPrices)
	if !h.store.SaveScenario(sc) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SAVE_FAILED", Message: "scenario could not be serialized"},
		})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// Delete handles DELETE /api/v1/scenarios/:name
func (h *ScenarioHandler) Delete(c *gin.Context) {
	h.store.DeleteScenario(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
