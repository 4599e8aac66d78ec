package services

import (
	"context"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// WorkspaceReaderSvc defines read operations for workspace data
type WorkspaceReaderSvc interface {
	// FindWorkspaceByID retrieves a specific workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// ListUserWorkspaces retrieves workspaces a user belongs to.
	// If includeDisabled is true, it includes inactive workspaces.
	ListUserWorkspaces(ctx context.Context, userID string, includeDisabled bool) ([]domain.Workspace, error)

	// ListWorkspaceUsers retrieves all users and their roles for a specific workspace.
	// Only members of the workspace can access this data.
	ListWorkspaceUsers(ctx context.Context, workspaceID string, requestingUserID string) ([]domain.UserWorkspace, error)

	// SummarizeWorkspace aggregates scenario and run activity for a workspace.
	SummarizeWorkspace(ctx context.Context, workspaceID string, requestingUserID string) (*domain.WorkspaceSummary, error)
}

// WorkspaceWriterSvc defines write operations for workspace data
type WorkspaceWriterSvc interface {
	// CreateWorkspace persists a new workspace with the creator as admin.
	CreateWorkspace(ctx context.Context, name, description string, defaultPresetCode *string, creatorUserID string) (*domain.Workspace, error)

	// UpdateWorkspace updates a workspace's name, description or default preset.
	UpdateWorkspace(ctx context.Context, workspaceID string, name, description *string, defaultPresetCode *string, requestingUserID string) (*domain.Workspace, error)

	// DeactivateWorkspace marks a workspace as inactive.
	DeactivateWorkspace(ctx context.Context, workspaceID string, requestingUserID string) error

	// ActivateWorkspace marks a workspace as active.
	ActivateWorkspace(ctx context.Context, workspaceID string, requestingUserID string) error
}

// WorkspaceMembershipSvc defines operations for managing workspace membership
type WorkspaceMembershipSvc interface {
	// AddUserToWorkspace adds a user to a workspace with a specific role.
	AddUserToWorkspace(ctx context.Context, addingUserID, targetUserID, workspaceID string, role domain.UserWorkspaceRole) error

	// RemoveUserFromWorkspace removes a user from a workspace.
	// Only workspace admins can remove users.
	RemoveUserFromWorkspace(ctx context.Context, requestingUserID, targetUserID, workspaceID string) error

	// UpdateUserWorkspaceRole updates a user's role in a workspace.
	// Only workspace admins can update user roles.
	UpdateUserWorkspaceRole(ctx context.Context, requestingUserID, targetUserID, workspaceID string, newRole domain.UserWorkspaceRole) error
}

// WorkspaceAuthorizerSvc defines operations for workspace authorization
type WorkspaceAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a workspace.
	AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.UserWorkspaceRole) error
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
// This is a facade for clients that need access to all operations
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
	WorkspaceMembershipSvc
	WorkspaceAuthorizerSvc
}
