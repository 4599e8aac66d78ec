package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/macrodyn/solow_model_app/internal/middleware"
)

// simulationHandler handles HTTP requests related to stored simulation runs.
type simulationHandler struct {
	simulationService portssvc.SimulationSvcFacade
}

func newSimulationHandler(ss portssvc.SimulationSvcFacade) *simulationHandler {
	return &simulationHandler{simulationService: ss}
}

// registerSimulationRoutes registers run routes nested under a scenario.
func registerSimulationRoutes(scenarioGroup *gin.RouterGroup, simulationService portssvc.SimulationSvcFacade) {
	h := newSimulationHandler(simulationService)

	runs := scenarioGroup.Group("/:scenario_id/runs")
	{
		runs.POST("", h.runSimulation)
		runs.GET("", h.listRuns)
		runs.GET("/:run_id", h.getRun)
	}
}

// runSimulation godoc
// @Summary Run a simulation
// @Description Integrates the scenario's capital path from an initial stock and stores the result.
// @Tags simulations
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param scenario_id path string true "Scenario ID"
// @Param run body dto.CreateSimulationRunRequest true "Simulation inputs"
// @Success 201 {object} dto.SimulationRunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios/{scenario_id}/runs [post]
func (h *simulationHandler) runSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSimulationRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunSimulation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	run, err := h.simulationService.RunSimulation(c.Request.Context(), c.Param("workspace_id"),
		c.Param("scenario_id"), req, requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to run simulation")
		return
	}

	logger.Info("Simulation run stored", slog.String("run_id", run.RunID), slog.Bool("converged", run.Converged))
	c.JSON(http.StatusCreated, dto.ToSimulationRunResponse(*run, true))
}

// listRuns godoc
// @Summary List simulation runs
// @Description Retrieves run summaries for a scenario, newest first. Paths are omitted.
// @Tags simulations
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param scenario_id path string true "Scenario ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListSimulationRunsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios/{scenario_id}/runs [get]
func (h *simulationHandler) listRuns(c *gin.Context) {
	var params dto.ListSimulationRunsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	runs, nextToken, err := h.simulationService.ListRuns(c.Request.Context(), c.Param("workspace_id"),
		c.Param("scenario_id"), requestingUserID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list simulation runs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSimulationRunsResponse(runs, nextToken))
}

// getRun godoc
// @Summary Get a simulation run
// @Description Retrieves a stored run including its capital path.
// @Tags simulations
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param scenario_id path string true "Scenario ID"
// @Param run_id path string true "Run ID"
// @Success 200 {object} dto.SimulationRunResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios/{scenario_id}/runs/{run_id} [get]
func (h *simulationHandler) getRun(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	run, err := h.simulationService.GetRunByID(c.Request.Context(), c.Param("workspace_id"),
		c.Param("run_id"), requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to fetch simulation run")
		return
	}

	c.JSON(http.StatusOK, dto.ToSimulationRunResponse(*run, true))
}
