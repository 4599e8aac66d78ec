package repositories

import (
	"context"
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a specific workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// ListWorkspacesByUserID retrieves all workspaces a user belongs to.
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// SaveWorkspace persists a new workspace.
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error

	// UpdateWorkspace updates an existing workspace's details.
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error

	// UpdateWorkspaceStatus sets the is_active flag of a workspace.
	UpdateWorkspaceStatus(ctx context.Context, workspaceID string, isActive bool, updatedByUserID string, now time.Time) error
}

// WorkspaceMembershipManager defines operations for managing workspace memberships
type WorkspaceMembershipManager interface {
	// AddUserToWorkspace adds a user to a workspace with a specific role.
	AddUserToWorkspace(ctx context.Context, membership domain.UserWorkspace) error

	// FindUserWorkspaceRole retrieves the role of a user in a workspace.
	FindUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*domain.UserWorkspace, error)

	// ListWorkspaceUsers retrieves the memberships of a workspace,
	// excluding removed members.
	ListWorkspaceUsers(ctx context.Context, workspaceID string) ([]domain.UserWorkspace, error)

	// UpdateUserWorkspaceRole updates a user's role in a workspace.
	UpdateUserWorkspaceRole(ctx context.Context, userID, workspaceID string, newRole domain.UserWorkspaceRole) error
}

// WorkspaceSummarizer defines aggregation queries over workspace contents.
type WorkspaceSummarizer interface {
	// SummarizeWorkspace counts scenarios and runs and finds the last run time.
	SummarizeWorkspace(ctx context.Context, workspaceID string) (*domain.WorkspaceSummary, error)
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
	WorkspaceMembershipManager
	WorkspaceSummarizer
}

// WorkspaceRepositoryWithTx extends WorkspaceRepositoryFacade with transaction capabilities
type WorkspaceRepositoryWithTx interface {
	WorkspaceRepositoryFacade
	TransactionManager
}
