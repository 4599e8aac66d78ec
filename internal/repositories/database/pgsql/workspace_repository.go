package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	"github.com/macrodyn/solow_model_app/internal/models"
	"github.com/macrodyn/solow_model_app/internal/utils/mapping"
)

type PgxWorkspaceRepository struct {
	BaseRepository
}

func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryWithTx {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkspaceRepository implements portsrepo.WorkspaceRepositoryWithTx
var _ portsrepo.WorkspaceRepositoryWithTx = (*PgxWorkspaceRepository)(nil)

const workspaceSelectQuery = `
SELECT
	w.workspace_id, w.name, w.description, w.default_preset_code, w.is_active,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workspaces w
`

func (r *PgxWorkspaceRepository) getWorkspaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workspace, error) {
	query := workspaceSelectQuery + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspaces", err)
	}
	defer rows.Close()

	modelWorkspaces := []models.Workspace{}
	for rows.Next() {
		var m models.Workspace
		err := rows.Scan(
			&m.WorkspaceID,
			&m.Name,
			&m.Description,
			&m.DefaultPresetCode,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan workspace row", err)
		}
		modelWorkspaces = append(modelWorkspaces, m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating workspace rows", rows.Err())
	}

	return mapping.ToDomainWorkspaceSlice(modelWorkspaces), nil
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)
	query := `
		INSERT INTO workspaces (
			workspace_id, name, description, default_preset_code, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WorkspaceID,
		m.Name,
		m.Description,
		m.DefaultPresetCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("workspace ID " + workspace.WorkspaceID + " already exists")
			}
			if pgErr.Code == "23503" && pgErr.ConstraintName == "fk_workspace_default_preset" { // foreign_key_violation
				return apperrors.NewBadRequestError("calibration preset code does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save workspace "+workspace.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	query := `WHERE w.workspace_id = $1`
	workspaces, err := r.getWorkspaces(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workspaces[0], nil
}

func (r *PgxWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	query := `
		JOIN user_workspaces uw ON w.workspace_id = uw.workspace_id
		WHERE uw.user_id = $1 AND uw.role != $2
		ORDER BY w.name;
	`
	return r.getWorkspaces(ctx, query, userID, domain.RoleRemoved)
}

func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)
	query := `
		UPDATE workspaces
		SET name = $1, description = $2, default_preset_code = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE workspace_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Description,
		m.DefaultPresetCode,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.WorkspaceID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewBadRequestError("calibration preset code does not exist")
		}
		return apperrors.NewAppError(500, "failed to update workspace "+workspace.WorkspaceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxWorkspaceRepository) UpdateWorkspaceStatus(ctx context.Context, workspaceID string, isActive bool, updatedByUserID string, now time.Time) error {
	query := `
		UPDATE workspaces
		SET is_active = $1, last_updated_at = $2, last_updated_by = $3
		WHERE workspace_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, isActive, now, updatedByUserID, workspaceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update workspace status "+workspaceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxWorkspaceRepository) AddUserToWorkspace(ctx context.Context, membership domain.UserWorkspace) error {
	query := `
		INSERT INTO user_workspaces (user_id, workspace_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, workspace_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: Add user or update their role if they already exist
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.WorkspaceID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in workspace "+membership.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*domain.UserWorkspace, error) {
	query := `
		SELECT user_id, workspace_id, role, joined_at
		FROM user_workspaces
		WHERE user_id = $1 AND workspace_id = $2;
	`
	var m models.UserWorkspace
	err := r.Pool.QueryRow(ctx, query, userID, workspaceID).Scan(
		&m.UserID,
		&m.WorkspaceID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Membership absence reads as "workspace not found" to the caller.
			return nil, apperrors.NewNotFoundError("workspace not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" workspace role in "+workspaceID, err)
	}
	uw := mapping.ToDomainUserWorkspace(m)
	return &uw, nil
}

func (r *PgxWorkspaceRepository) ListWorkspaceUsers(ctx context.Context, workspaceID string) ([]domain.UserWorkspace, error) {
	query := `
		SELECT uw.user_id, u.name AS user_name, uw.workspace_id, uw.role, uw.joined_at
		FROM user_workspaces uw
		JOIN users u ON uw.user_id = u.user_id
		WHERE uw.workspace_id = $1 AND uw.role != $2
		ORDER BY uw.joined_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID, domain.RoleRemoved)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users for workspace "+workspaceID, err)
	}
	defer rows.Close()

	var memberships []domain.UserWorkspace
	for rows.Next() {
		var uw domain.UserWorkspace
		err := rows.Scan(
			&uw.UserID,
			&uw.UserName,
			&uw.WorkspaceID,
			&uw.Role,
			&uw.JoinedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user workspace row", err)
		}
		memberships = append(memberships, uw)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user workspace rows", err)
	}

	return memberships, nil
}

// UpdateUserWorkspaceRole updates a user's role in a workspace
func (r *PgxWorkspaceRepository) UpdateUserWorkspaceRole(ctx context.Context, userID, workspaceID string, newRole domain.UserWorkspaceRole) error {
	query := `
		UPDATE user_workspaces
		SET role = $3
		WHERE user_id = $1 AND workspace_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, workspaceID, newRole)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update role for user "+userID+" in workspace "+workspaceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workspace not found")
	}
	return nil
}

// SummarizeWorkspace aggregates scenario and run counts plus the most recent
// run time in a single query.
func (r *PgxWorkspaceRepository) SummarizeWorkspace(ctx context.Context, workspaceID string) (*domain.WorkspaceSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM scenarios s WHERE s.workspace_id = $1) AS scenario_count,
			(SELECT COUNT(*) FROM scenarios s WHERE s.workspace_id = $1 AND s.is_active) AS active_scenarios,
			(SELECT COUNT(*) FROM simulation_runs r WHERE r.workspace_id = $1) AS run_count,
			(SELECT MAX(r.created_at) FROM simulation_runs r WHERE r.workspace_id = $1) AS last_run_at;
	`
	summary := domain.WorkspaceSummary{WorkspaceID: workspaceID}
	var lastRunAt *time.Time
	err := r.Pool.QueryRow(ctx, query, workspaceID).Scan(
		&summary.ScenarioCount,
		&summary.ActiveScenarios,
		&summary.RunCount,
		&lastRunAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize workspace %s: %w", workspaceID, err)
	}
	summary.LastRunAt = lastRunAt
	return &summary, nil
}
