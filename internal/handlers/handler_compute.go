package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macrodyn/solow_model_app/internal/dto"
)

// computeHandler serves stateless model computations over ad-hoc parameters.
// Nothing here touches persistence; useful for exploring calibrations before
// committing them to a scenario.
type computeHandler struct{}

// RegisterComputeRoutes registers the ad-hoc model computation routes.
func RegisterComputeRoutes(rg *gin.RouterGroup) {
	h := &computeHandler{}

	solowGroup := rg.Group("/solow")
	{
		solowGroup.POST("/steady-state", h.steadyState)
		solowGroup.POST("/phase", h.phase)
		solowGroup.POST("/simulate", h.simulate)
	}
}

// steadyState godoc
// @Summary Compute steady state for ad-hoc parameters
// @Description Returns the balanced-growth summary without storing anything.
// @Tags solow
// @Accept json
// @Produce json
// @Param params body dto.SteadyStateRequest true "Model parameters"
// @Success 200 {object} dto.SteadyStateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /solow/steady-state [post]
func (h *computeHandler) steadyState(c *gin.Context) {
	var req dto.SteadyStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	params := req.Params.ToParams()
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	steadyState, err := params.ComputeSteadyState()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SteadyStateResponse{Params: params, SteadyState: steadyState})
}

// phase godoc
// @Summary Compute phase-diagram series for ad-hoc parameters
// @Description Returns investment and break-even series over a capital grid.
// @Tags solow
// @Accept json
// @Produce json
// @Param request body dto.PhaseRequest true "Model parameters and grid"
// @Success 200 {object} dto.PhaseResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /solow/phase [post]
func (h *computeHandler) phase(c *gin.Context) {
	var req dto.PhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	params := req.Params.ToParams()
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	kMin, kMax, points := req.Grid.Grid()
	series, err := params.Phase(kMin, kMax, points)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.PhaseResponse{Params: params, Series: series})
}

// simulate godoc
// @Summary Simulate ad-hoc parameters
// @Description Integrates the capital path for the given parameters without persisting a run.
// @Tags solow
// @Accept json
// @Produce json
// @Param request body dto.AdhocSimulateRequest true "Model parameters and simulation inputs"
// @Success 200 {object} dto.SimulatePathResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /solow/simulate [post]
func (h *computeHandler) simulate(c *gin.Context) {
	var req dto.AdhocSimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	params := req.Params.ToParams()
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	k0, dt, steps, maxPoints := req.Simulation.Resolve()
	path, err := params.Simulate(k0, dt, steps)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SimulatePathResponse{Params: params, Path: path.Sample(maxPoints)})
}
