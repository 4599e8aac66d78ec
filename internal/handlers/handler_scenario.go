package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/macrodyn/solow_model_app/internal/middleware"
)

// scenarioHandler handles HTTP requests related to scenarios.
type scenarioHandler struct {
	scenarioService portssvc.ScenarioSvcFacade
}

func newScenarioHandler(ss portssvc.ScenarioSvcFacade) *scenarioHandler {
	return &scenarioHandler{scenarioService: ss}
}

// RegisterScenarioRoutes registers scenario routes nested under a workspace,
// including the model computation endpoints and the simulation run routes.
func RegisterScenarioRoutes(workspaceGroup *gin.RouterGroup, scenarioService portssvc.ScenarioSvcFacade, simulationService portssvc.SimulationSvcFacade) {
	h := newScenarioHandler(scenarioService)

	scenarios := workspaceGroup.Group("/scenarios")
	{
		scenarios.POST("", h.createScenario)
		scenarios.GET("", h.listScenarios)
		scenarios.GET("/:scenario_id", h.getScenario)
		scenarios.PUT("/:scenario_id", h.updateScenario)
		scenarios.DELETE("/:scenario_id", h.deactivateScenario)

		scenarios.GET("/:scenario_id/steady-state", h.computeSteadyState)
		scenarios.GET("/:scenario_id/phase", h.computePhase)

		registerSimulationRoutes(scenarios, simulationService)
	}
}

// createScenario godoc
// @Summary Create a scenario
// @Description Creates a model scenario in a workspace. Parameters come from the request, a preset, or the workspace default.
// @Tags scenarios
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param scenario body dto.CreateScenarioRequest true "Scenario details"
// @Success 201 {object} dto.ScenarioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios [post]
func (h *scenarioHandler) createScenario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	var req dto.CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateScenario", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	scenario, err := h.scenarioService.CreateScenario(c.Request.Context(), workspaceID, req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create scenario")
		return
	}

	logger.Info("Scenario created", slog.String("scenario_id", scenario.ScenarioID), slog.String("workspace_id", workspaceID))
	c.JSON(http.StatusCreated, dto.ToScenarioResponse(scenario))
}

// listScenarios godoc
// @Summary List scenarios
// @Description Retrieves a paginated list of scenarios in a workspace, newest first.
// @Tags scenarios
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListScenariosResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios [get]
func (h *scenarioHandler) listScenarios(c *gin.Context) {
	var params dto.ListScenariosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	scenarios, nextToken, err := h.scenarioService.ListScenarios(c.Request.Context(), c.Param("workspace_id"),
		requestingUserID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list scenarios")
		return
	}

	c.JSON(http.StatusOK, dto.ToListScenariosResponse(scenarios, nextToken))
}

// getScenario godoc
// @Summary Get a scenario
// @Description Retrieves a single scenario by ID.
// @Tags scenarios
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param scenario_id path string true "Scenario ID"
// @Success 200 {object} dto.ScenarioResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios/{scenario_id} [get]
func (h *scenarioHandler) getScenario(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	scenario, err := h.scenarioService.GetScenarioByID(c.Request.Context(), c.Param("workspace_id"),
		c.Param("scenario_id"), requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to fetch scenario")
		return
	}

	c.JSON(http.StatusOK, dto.ToScenarioResponse(scenario))
}

// updateScenario godoc
// @Summary Update a scenario
// @Description Applies partial updates to a scenario's name, description or parameters.
// @Tags scenarios
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param scenario_id path string true "Scenario ID"
// @Param scenario body dto.UpdateScenarioRequest true "Fields to update"
// @Success 200 {object} dto.ScenarioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios/{scenario_id} [put]
func (h *scenarioHandler) updateScenario(c *gin.Context) {
	var req dto.UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	scenario, err := h.scenarioService.UpdateScenario(c.Request.Context(), c.Param("workspace_id"),
		c.Param("scenario_id"), req, requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to update scenario")
		return
	}

	c.JSON(http.StatusOK, dto.ToScenarioResponse(scenario))
}

// deactivateScenario godoc
// @Summary Deactivate a scenario
// @Description Marks a scenario inactive. Stored runs are retained.
// @Tags scenarios
// @Param workspace_id path string true "Workspace ID"
// @Param scenario_id path string true "Scenario ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios/{scenario_id} [delete]
func (h *scenarioHandler) deactivateScenario(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.scenarioService.DeactivateScenario(c.Request.Context(), c.Param("workspace_id"),
		c.Param("scenario_id"), requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to deactivate scenario")
		return
	}

	c.Status(http.StatusNoContent)
}

// computeSteadyState godoc
// @Summary Compute a scenario's steady state
// @Description Returns the balanced-growth summary for the scenario's parameters.
// @Tags scenarios
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param scenario_id path string true "Scenario ID"
// @Success 200 {object} solow.SteadyState
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios/{scenario_id}/steady-state [get]
func (h *scenarioHandler) computeSteadyState(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	steadyState, err := h.scenarioService.ComputeSteadyState(c.Request.Context(), c.Param("workspace_id"),
		c.Param("scenario_id"), requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to compute steady state")
		return
	}

	c.JSON(http.StatusOK, steadyState)
}

// computePhase godoc
// @Summary Compute a scenario's phase diagram
// @Description Returns investment and break-even series over a capital grid.
// @Tags scenarios
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param scenario_id path string true "Scenario ID"
// @Param kMin query number false "Grid lower bound"
// @Param kMax query number false "Grid upper bound"
// @Param points query int false "Grid points"
// @Success 200 {object} solow.PhaseSeries
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/scenarios/{scenario_id}/phase [get]
func (h *scenarioHandler) computePhase(c *gin.Context) {
	var params dto.PhaseQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	kMin, kMax, points := params.Grid()
	series, err := h.scenarioService.ComputePhase(c.Request.Context(), c.Param("workspace_id"),
		c.Param("scenario_id"), requestingUserID, kMin, kMax, points)
	if err != nil {
		respondError(c, err, "Failed to compute phase diagram")
		return
	}

	c.JSON(http.StatusOK, series)
}
