package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	"github.com/macrodyn/solow_model_app/internal/models"
	"github.com/macrodyn/solow_model_app/internal/utils/mapping"
	"github.com/macrodyn/solow_model_app/internal/utils/pagination"
)

type PgxScenarioRepository struct {
	BaseRepository
}

func newPgxScenarioRepository(pool *pgxpool.Pool) portsrepo.ScenarioRepositoryWithTx {
	return &PgxScenarioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxScenarioRepository implements portsrepo.ScenarioRepositoryWithTx
var _ portsrepo.ScenarioRepositoryWithTx = (*PgxScenarioRepository)(nil)

const scenarioSelectColumns = `
	scenario_id, workspace_id, name, description,
	savings_rate, depreciation, pop_growth, tech_growth, capital_share, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanScenario(row pgx.Row) (models.Scenario, error) {
	var m models.Scenario
	err := row.Scan(
		&m.ScenarioID,
		&m.WorkspaceID,
		&m.Name,
		&m.Description,
		&m.SavingsRate,
		&m.Depreciation,
		&m.PopGrowth,
		&m.TechGrowth,
		&m.CapitalShare,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxScenarioRepository) SaveScenario(ctx context.Context, scenario domain.Scenario) error {
	m := mapping.ToModelScenario(scenario)
	query := `
		INSERT INTO scenarios (
			scenario_id, workspace_id, name, description,
			savings_rate, depreciation, pop_growth, tech_growth, capital_share, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ScenarioID,
		m.WorkspaceID,
		m.Name,
		m.Description,
		m.SavingsRate,
		m.Depreciation,
		m.PopGrowth,
		m.TechGrowth,
		m.CapitalShare,
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
				return apperrors.NewConflictError("scenario ID " + scenario.ScenarioID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("workspace " + scenario.WorkspaceID + " not found")
			}
		}
		return fmt.Errorf("failed to save scenario %s: %w", scenario.ScenarioID, err)
	}
	return nil
}

func (r *PgxScenarioRepository) FindScenarioByID(ctx context.Context, scenarioID string) (*domain.Scenario, error) {
	query := `
		SELECT ` + scenarioSelectColumns + `
		FROM scenarios
		WHERE scenario_id = $1;
	`
	m, err := scanScenario(r.Pool.QueryRow(ctx, query, scenarioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find scenario by ID %s: %w", scenarioID, err)
	}

	scenario := mapping.ToDomainScenario(m)
	return &scenario, nil
}

// ListScenarios retrieves a paginated list of scenarios using token-based
// pagination. One extra row is fetched to decide whether a next page exists.
func (r *PgxScenarioRepository) ListScenarios(ctx context.Context, workspaceID string, limit int, nextToken *string) ([]domain.Scenario, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT ` + scenarioSelectColumns + `
		FROM scenarios
		WHERE workspace_id = $1
	`
	args := []any{workspaceID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastScenarioID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (created_at, scenario_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastScenarioID)
	}

	query += ` ORDER BY created_at DESC, scenario_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query scenarios: %w", err)
	}
	defer rows.Close()

	modelScenarios, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Scenario, error) {
		return scanScenario(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Scenario{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to scan scenarios: %w", err)
	}

	var nextTokenVal *string
	results := modelScenarios
	if len(modelScenarios) > limit {
		last := modelScenarios[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ScenarioID)
		nextTokenVal = &token
		results = modelScenarios[:limit]
	}

	return mapping.ToDomainScenarioSlice(results), nextTokenVal, nil
}

func (r *PgxScenarioRepository) UpdateScenario(ctx context.Context, scenario domain.Scenario) error {
	m := mapping.ToModelScenario(scenario)
	query := `
		UPDATE scenarios
		SET name = $1, description = $2,
		    savings_rate = $3, depreciation = $4, pop_growth = $5,
		    tech_growth = $6, capital_share = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE scenario_id = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Description,
		m.SavingsRate,
		m.Depreciation,
		m.PopGrowth,
		m.TechGrowth,
		m.CapitalShare,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ScenarioID,
	)
	if err != nil {
		return fmt.Errorf("failed to update scenario %s: %w", scenario.ScenarioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxScenarioRepository) DeactivateScenario(ctx context.Context, scenarioID string, userID string, now time.Time) error {
	query := `
		UPDATE scenarios
		SET is_active = false, last_updated_at = $1, last_updated_by = $2
		WHERE scenario_id = $3 AND is_active = true;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, scenarioID)
	if err != nil {
		return fmt.Errorf("failed to deactivate scenario %s: %w", scenarioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
