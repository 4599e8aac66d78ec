package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
)

// workspaceService implements the WorkspaceSvcFacade interface
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	presetRepo    portsrepo.PresetReader
}

// NewWorkspaceService creates a new workspace service with the provided dependencies
func NewWorkspaceService(
	workspaceRepo portsrepo.WorkspaceRepositoryFacade,
	presetRepo portsrepo.PresetReader,
) portssvc.WorkspaceSvcFacade {
	return &workspaceService{
		workspaceRepo: workspaceRepo,
		presetRepo:    presetRepo,
	}
}

// Ensure workspaceService implements the WorkspaceSvcFacade interface
var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// FindWorkspaceByID retrieves a workspace by its ID
func (s *workspaceService) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workspace by ID",
				slog.String("workspace_id", workspaceID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Workspace retrieved successfully",
		slog.String("workspace_id", workspace.WorkspaceID))
	return workspace, nil
}

// ListUserWorkspaces retrieves all workspaces a user belongs to
func (s *workspaceService) ListUserWorkspaces(ctx context.Context, userID string, includeDisabled bool) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if !includeDisabled {
		active := workspaces[:0]
		for _, w := range workspaces {
			if w.IsActive {
				active = append(active, w)
			}
		}
		workspaces = active
	}

	if workspaces == nil {
		return []domain.Workspace{}, nil
	}

	s.LogDebug(ctx, "Workspaces listed successfully",
		slog.Int("count", len(workspaces)),
		slog.String("user_id", userID))
	return workspaces, nil
}

// ListWorkspaceUsers retrieves all members of a workspace
func (s *workspaceService) ListWorkspaceUsers(ctx context.Context, workspaceID string, requestingUserID string) ([]domain.UserWorkspace, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	memberships, err := s.workspaceRepo.ListWorkspaceUsers(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace users",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if memberships == nil {
		return []domain.UserWorkspace{}, nil
	}
	return memberships, nil
}

// SummarizeWorkspace aggregates scenario and run activity for a workspace
func (s *workspaceService) SummarizeWorkspace(ctx context.Context, workspaceID string, requestingUserID string) (*domain.WorkspaceSummary, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	summary, err := s.workspaceRepo.SummarizeWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize workspace",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return summary, nil
}

// CreateWorkspace creates a new workspace and adds the creator as admin
func (s *workspaceService) CreateWorkspace(ctx context.Context, name, description string, defaultPresetCode *string, creatorUserID string) (*domain.Workspace, error) {
	// Validate preset if specified
	if defaultPresetCode != nil && *defaultPresetCode != "" && s.presetRepo != nil {
		_, err := s.presetRepo.FindPresetByCode(ctx, *defaultPresetCode)
		if err != nil {
			s.LogError(ctx, err, "Invalid default preset code",
				slog.String("preset_code", *defaultPresetCode))
			return nil, fmt.Errorf("invalid default preset code: %w", err)
		}
	}

	now := time.Now()
	workspaceID := uuid.NewString()

	workspace := domain.Workspace{
		WorkspaceID: workspaceID,
		Name:        name,
		Description: description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if defaultPresetCode != nil && *defaultPresetCode != "" {
		workspace.DefaultPresetCode = defaultPresetCode
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace",
			slog.String("workspace_id", workspace.WorkspaceID))
		return nil, err
	}

	// Add creator as an admin to the new workspace
	membershipErr := s.AddUserToWorkspace(ctx, creatorUserID, creatorUserID, workspaceID, domain.RoleAdmin)
	if membershipErr != nil {
		s.LogError(ctx, membershipErr, "Failed to add creator as admin to new workspace",
			slog.String("workspace_id", workspace.WorkspaceID),
			slog.String("user_id", creatorUserID))
	}

	s.LogInfo(ctx, "Workspace created successfully",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("creator_id", creatorUserID))
	return &workspace, nil
}

// UpdateWorkspace applies partial updates to a workspace
func (s *workspaceService) UpdateWorkspace(ctx context.Context, workspaceID string, name, description *string, defaultPresetCode *string, requestingUserID string) (*domain.Workspace, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		workspace.Name = *name
	}
	if description != nil {
		workspace.Description = *description
	}
	if defaultPresetCode != nil {
		if *defaultPresetCode == "" {
			workspace.DefaultPresetCode = nil
		} else {
			if s.presetRepo != nil {
				if _, err := s.presetRepo.FindPresetByCode(ctx, *defaultPresetCode); err != nil {
					return nil, fmt.Errorf("invalid default preset code: %w", err)
				}
			}
			workspace.DefaultPresetCode = defaultPresetCode
		}
	}
	workspace.LastUpdatedAt = time.Now()
	workspace.LastUpdatedBy = requestingUserID

	if err := s.workspaceRepo.UpdateWorkspace(ctx, *workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace updated successfully",
		slog.String("workspace_id", workspaceID))
	return workspace, nil
}

// DeactivateWorkspace marks a workspace as inactive
func (s *workspaceService) DeactivateWorkspace(ctx context.Context, workspaceID string, requestingUserID string) error {
	return s.setWorkspaceStatus(ctx, workspaceID, false, requestingUserID)
}

// ActivateWorkspace marks a workspace as active
func (s *workspaceService) ActivateWorkspace(ctx context.Context, workspaceID string, requestingUserID string) error {
	return s.setWorkspaceStatus(ctx, workspaceID, true, requestingUserID)
}

func (s *workspaceService) setWorkspaceStatus(ctx context.Context, workspaceID string, isActive bool, requestingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.workspaceRepo.UpdateWorkspaceStatus(ctx, workspaceID, isActive, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update workspace status",
			slog.String("workspace_id", workspaceID),
			slog.Bool("is_active", isActive))
		return err
	}

	s.LogInfo(ctx, "Workspace status updated",
		slog.String("workspace_id", workspaceID),
		slog.Bool("is_active", isActive))
	return nil
}

// AddUserToWorkspace adds a user to a workspace with a specific role
func (s *workspaceService) AddUserToWorkspace(ctx context.Context, addingUserID, targetUserID, workspaceID string, role domain.UserWorkspaceRole) error {
	// Self-assignment is permitted (e.g., creator adding self as admin)
	if addingUserID != targetUserID {
		err := s.AuthorizeUserAction(ctx, addingUserID, workspaceID, domain.RoleAdmin)
		if err != nil {
			s.LogError(ctx, err, "User not authorized to add members to workspace",
				slog.String("adding_user_id", addingUserID),
				slog.String("workspace_id", workspaceID))
			return err
		}
	}

	membership := domain.UserWorkspace{
		UserID:      targetUserID,
		WorkspaceID: workspaceID,
		Role:        role,
		JoinedAt:    time.Now(),
	}

	if err := s.workspaceRepo.AddUserToWorkspace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to workspace",
			slog.String("target_user_id", targetUserID),
			slog.String("workspace_id", workspaceID))
		return err
	}

	s.LogInfo(ctx, "User added to workspace successfully",
		slog.String("target_user_id", targetUserID),
		slog.String("workspace_id", workspaceID),
		slog.String("role", string(role)))
	return nil
}

// RemoveUserFromWorkspace marks a user's membership as removed
func (s *workspaceService) RemoveUserFromWorkspace(ctx context.Context, requestingUserID, targetUserID, workspaceID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}
	if requestingUserID == targetUserID {
		return apperrors.NewBadRequestError("cannot remove yourself from a workspace")
	}

	if err := s.workspaceRepo.UpdateUserWorkspaceRole(ctx, targetUserID, workspaceID, domain.RoleRemoved); err != nil {
		s.LogError(ctx, err, "Failed to remove user from workspace",
			slog.String("target_user_id", targetUserID),
			slog.String("workspace_id", workspaceID))
		return err
	}

	s.LogInfo(ctx, "User removed from workspace",
		slog.String("target_user_id", targetUserID),
		slog.String("workspace_id", workspaceID))
	return nil
}

// UpdateUserWorkspaceRole updates a user's role in a workspace
func (s *workspaceService) UpdateUserWorkspaceRole(ctx context.Context, requestingUserID, targetUserID, workspaceID string, newRole domain.UserWorkspaceRole) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}
	if requestingUserID == targetUserID {
		return apperrors.NewBadRequestError("cannot change your own role")
	}

	if err := s.workspaceRepo.UpdateUserWorkspaceRole(ctx, targetUserID, workspaceID, newRole); err != nil {
		s.LogError(ctx, err, "Failed to update user workspace role",
			slog.String("target_user_id", targetUserID),
			slog.String("workspace_id", workspaceID))
		return err
	}

	s.LogInfo(ctx, "User workspace role updated",
		slog.String("target_user_id", targetUserID),
		slog.String("workspace_id", workspaceID),
		slog.String("new_role", string(newRole)))
	return nil
}

// AuthorizeUserAction checks if a user has required permissions for a workspace.
// Non-members get ErrNotFound so workspace existence is not leaked; members
// with an insufficient role get ErrForbidden.
func (s *workspaceService) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.UserWorkspaceRole) error {
	membership, err := s.workspaceRepo.FindUserWorkspaceRole(ctx, userID, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workspace",
				slog.String("user_id", userID),
				slog.String("workspace_id", workspaceID))
			return err
		}
		s.LogError(ctx, err, "Failed to find user workspace role",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID))
		return err
	}

	if membership.Role == domain.RoleRemoved {
		return apperrors.ErrNotFound
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}

// hasRequiredRole checks if the user's role meets or exceeds the required role
func hasRequiredRole(userRole, requiredRole domain.UserWorkspaceRole) bool {
	switch requiredRole {
	case domain.RoleReadOnly:
		return userRole == domain.RoleReadOnly || userRole == domain.RoleMember || userRole == domain.RoleAdmin
	case domain.RoleMember:
		return userRole == domain.RoleMember || userRole == domain.RoleAdmin
	case domain.RoleAdmin:
		return userRole == domain.RoleAdmin
	default:
		return false
	}
}
