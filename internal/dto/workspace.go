package dto

import (
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// CreateWorkspaceRequest defines the data needed to create a new workspace.
type CreateWorkspaceRequest struct {
	Name              string `json:"name" binding:"required,max=128"`
	Description       string `json:"description"`
	DefaultPresetCode string `json:"defaultPresetCode"` // Optional calibration preset for new scenarios
}

// UpdateWorkspaceRequest defines the data allowed for updating a workspace.
// An empty DefaultPresetCode clears the workspace default.
type UpdateWorkspaceRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	DefaultPresetCode *string `json:"defaultPresetCode"`
}

// AddUserToWorkspaceRequest adds a member with a role.
type AddUserToWorkspaceRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// UpdateWorkspaceRoleRequest changes a member's role.
type UpdateWorkspaceRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// WorkspaceUserResponse describes a workspace member and their role.
type WorkspaceUserResponse struct {
	UserID   string    `json:"userID"`
	UserName string    `json:"userName"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ListWorkspaceUsersResponse wraps the member list of a workspace.
type ListWorkspaceUsersResponse struct {
	Users []WorkspaceUserResponse `json:"users"`
}

// ToListWorkspaceUsersResponse converts a slice of domain.UserWorkspace.
func ToListWorkspaceUsersResponse(members []domain.UserWorkspace) ListWorkspaceUsersResponse {
	users := make([]WorkspaceUserResponse, len(members))
	for i, m := range members {
		users[i] = WorkspaceUserResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		}
	}
	return ListWorkspaceUsersResponse{Users: users}
}

// WorkspaceResponse defines the data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID       string    `json:"workspaceID"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	DefaultPresetCode *string   `json:"defaultPresetCode,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	CreatedBy         string    `json:"createdBy"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy     string    `json:"lastUpdatedBy"`
}

// ToWorkspaceResponse converts a domain.Workspace to WorkspaceResponse DTO
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID:       w.WorkspaceID,
		Name:              w.Name,
		Description:       w.Description,
		DefaultPresetCode: w.DefaultPresetCode,
		IsActive:          w.IsActive,
		CreatedAt:         w.CreatedAt,
		CreatedBy:         w.CreatedBy,
		LastUpdatedAt:     w.LastUpdatedAt,
		LastUpdatedBy:     w.LastUpdatedBy,
	}
}

// ListWorkspacesResponse wraps the list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts a slice of domain.Workspace.
func ToListWorkspacesResponse(ws []domain.Workspace) ListWorkspacesResponse {
	responses := make([]WorkspaceResponse, len(ws))
	for i, w := range ws {
		responses[i] = ToWorkspaceResponse(&w)
	}
	return ListWorkspacesResponse{Workspaces: responses}
}

// WorkspaceSummaryResponse reports aggregate activity in a workspace.
type WorkspaceSummaryResponse struct {
	WorkspaceID     string     `json:"workspaceID"`
	ScenarioCount   int        `json:"scenarioCount"`
	ActiveScenarios int        `json:"activeScenarios"`
	RunCount        int        `json:"runCount"`
	LastRunAt       *time.Time `json:"lastRunAt,omitempty"`
}

// ToWorkspaceSummaryResponse converts a domain.WorkspaceSummary.
func ToWorkspaceSummaryResponse(s *domain.WorkspaceSummary) WorkspaceSummaryResponse {
	return WorkspaceSummaryResponse{
		WorkspaceID:     s.WorkspaceID,
		ScenarioCount:   s.ScenarioCount,
		ActiveScenarios: s.ActiveScenarios,
		RunCount:        s.RunCount,
		LastRunAt:       s.LastRunAt,
	}
}
