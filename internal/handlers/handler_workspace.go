package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/macrodyn/solow_model_app/internal/middleware"
)

// workspaceHandler handles HTTP requests related to workspaces.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
}

func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade) *workspaceHandler {
	return &workspaceHandler{workspaceService: ws}
}

// registerWorkspaceRoutes registers routes for workspaces and their members,
// plus the scenario and simulation routes nested under a specific workspace.
func registerWorkspaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkspaceHandler(services.Workspace)

	workspacesTopLevel := rg.Group("/workspaces")
	{
		workspacesTopLevel.POST("", h.createWorkspace)
		workspacesTopLevel.GET("", h.listUserWorkspaces)
	}

	workspaceSpecific := rg.Group("/workspaces/:workspace_id")
	{
		workspaceSpecific.GET("", h.getWorkspace)
		workspaceSpecific.PUT("", h.updateWorkspace)
		workspaceSpecific.DELETE("", h.deactivateWorkspace)
		workspaceSpecific.POST("/activate", h.activateWorkspace)
		workspaceSpecific.GET("/summary", h.summarizeWorkspace)

		workspaceUsers := workspaceSpecific.Group("/users")
		{
			workspaceUsers.GET("", h.listWorkspaceUsers)
			workspaceUsers.POST("", h.addUserToWorkspace)
			workspaceUsers.PUT("/:user_id", h.updateUserWorkspaceRole)
			workspaceUsers.DELETE("/:user_id", h.removeUserFromWorkspace)
		}

		RegisterScenarioRoutes(workspaceSpecific, services.Scenario, services.Simulation)
	}
}

// createWorkspace godoc
// @Summary Create a new workspace
// @Description Creates a new workspace and assigns the creator as admin.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var defaultPreset *string
	if req.DefaultPresetCode != "" {
		defaultPreset = &req.DefaultPresetCode
	}

	newWorkspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), req.Name, req.Description, defaultPreset, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create workspace")
		return
	}

	logger.Info("Workspace created", slog.String("workspace_id", newWorkspace.WorkspaceID))
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(newWorkspace))
}

// listUserWorkspaces godoc
// @Summary List workspaces for current user
// @Description Retrieves the workspaces the authenticated user belongs to.
// @Tags workspaces
// @Produce json
// @Param includeDisabled query bool false "Include deactivated workspaces"
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listUserWorkspaces(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	includeDisabled, _ := strconv.ParseBool(c.DefaultQuery("includeDisabled", "false"))

	workspaces, err := h.workspaceService.ListUserWorkspaces(c.Request.Context(), userID, includeDisabled)
	if err != nil {
		respondError(c, err, "Failed to list workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// getWorkspace godoc
// @Summary Get a workspace
// @Description Retrieves a single workspace by ID.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	workspace, err := h.workspaceService.FindWorkspaceByID(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		respondError(c, err, "Failed to fetch workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// updateWorkspace godoc
// @Summary Update a workspace
// @Description Updates a workspace's name, description or default preset (admin only).
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param workspace body dto.UpdateWorkspaceRequest true "Fields to update"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [put]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	workspace, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), c.Param("workspace_id"),
		req.Name, req.Description, req.DefaultPresetCode, requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to update workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// deactivateWorkspace godoc
// @Summary Deactivate a workspace
// @Description Marks a workspace inactive (admin only). Data is retained.
// @Tags workspaces
// @Param workspace_id path string true "Workspace ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [delete]
func (h *workspaceHandler) deactivateWorkspace(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.workspaceService.DeactivateWorkspace(c.Request.Context(), c.Param("workspace_id"), requestingUserID); err != nil {
		respondError(c, err, "Failed to deactivate workspace")
		return
	}

	c.Status(http.StatusNoContent)
}

// activateWorkspace godoc
// @Summary Reactivate a workspace
// @Description Marks a previously deactivated workspace active again (admin only).
// @Tags workspaces
// @Param workspace_id path string true "Workspace ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/activate [post]
func (h *workspaceHandler) activateWorkspace(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.workspaceService.ActivateWorkspace(c.Request.Context(), c.Param("workspace_id"), requestingUserID); err != nil {
		respondError(c, err, "Failed to activate workspace")
		return
	}

	c.Status(http.StatusNoContent)
}

// summarizeWorkspace godoc
// @Summary Summarize workspace activity
// @Description Aggregates scenario and simulation counts for a workspace.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceSummaryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/summary [get]
func (h *workspaceHandler) summarizeWorkspace(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.workspaceService.SummarizeWorkspace(c.Request.Context(), c.Param("workspace_id"), requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to summarize workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceSummaryResponse(summary))
}

// listWorkspaceUsers godoc
// @Summary List workspace members
// @Description Retrieves the users of a workspace and their roles.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListWorkspaceUsersResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users [get]
func (h *workspaceHandler) listWorkspaceUsers(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	members, err := h.workspaceService.ListWorkspaceUsers(c.Request.Context(), c.Param("workspace_id"), requestingUserID)
	if err != nil {
		respondError(c, err, "Failed to list workspace users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkspaceUsersResponse(members))
}

// addUserToWorkspace godoc
// @Summary Add a user to a workspace
// @Description Adds a user to a workspace with a role (admin only).
// @Tags workspaces
// @Accept json
// @Param workspace_id path string true "Workspace ID"
// @Param user_details body dto.AddUserToWorkspaceRequest true "User ID and Role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users [post]
func (h *workspaceHandler) addUserToWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddUserToWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddUserToWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	addingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.workspaceService.AddUserToWorkspace(c.Request.Context(), addingUserID, req.UserID,
		c.Param("workspace_id"), domain.UserWorkspaceRole(req.Role))
	if err != nil {
		respondError(c, err, "Failed to add user to workspace")
		return
	}

	c.Status(http.StatusNoContent)
}

// updateUserWorkspaceRole godoc
// @Summary Change a member's role
// @Description Updates a member's role in a workspace (admin only).
// @Tags workspaces
// @Accept json
// @Param workspace_id path string true "Workspace ID"
// @Param user_id path string true "Target user ID"
// @Param role body dto.UpdateWorkspaceRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users/{user_id} [put]
func (h *workspaceHandler) updateUserWorkspaceRole(c *gin.Context) {
	var req dto.UpdateWorkspaceRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.workspaceService.UpdateUserWorkspaceRole(c.Request.Context(), requestingUserID,
		c.Param("user_id"), c.Param("workspace_id"), domain.UserWorkspaceRole(req.Role))
	if err != nil {
		respondError(c, err, "Failed to update workspace role")
		return
	}

	c.Status(http.StatusNoContent)
}

// removeUserFromWorkspace godoc
// @Summary Remove a user from a workspace
// @Description Removes a member from a workspace (admin only).
// @Tags workspaces
// @Param workspace_id path string true "Workspace ID"
// @Param user_id path string true "Target user ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users/{user_id} [delete]
func (h *workspaceHandler) removeUserFromWorkspace(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.workspaceService.RemoveUserFromWorkspace(c.Request.Context(), requestingUserID,
		c.Param("user_id"), c.Param("workspace_id"))
	if err != nil {
		respondError(c, err, "Failed to remove user from workspace")
		return
	}

	c.Status(http.StatusNoContent)
}
