package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

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

type PgxSimulationRepository struct {
	BaseRepository
}

func newPgxSimulationRepository(pool *pgxpool.Pool) portsrepo.SimulationRepositoryFacade {
	return &PgxSimulationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSimulationRepository implements portsrepo.SimulationRepositoryFacade
var _ portsrepo.SimulationRepositoryFacade = (*PgxSimulationRepository)(nil)

// SaveRun persists a new run. Runs are immutable, so there is no update path.
func (r *PgxSimulationRepository) SaveRun(ctx context.Context, run domain.SimulationRun) error {
	m, err := mapping.ToModelSimulationRun(run)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO simulation_runs (
			run_id, scenario_id, workspace_id,
			initial_capital, step_size, steps,
			steady_state, final_capital, converged, converged_at,
			path, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.RunID,
		m.ScenarioID,
		m.WorkspaceID,
		m.InitialCapital,
		m.StepSize,
		m.Steps,
		m.SteadyState,
		m.FinalCapital,
		m.Converged,
		m.ConvergedAt,
		m.Path,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("run ID " + run.RunID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("scenario " + run.ScenarioID + " not found")
			}
		}
		return fmt.Errorf("failed to save simulation run %s: %w", run.RunID, err)
	}
	return nil
}

// FindRunByID retrieves a run including its stored path.
func (r *PgxSimulationRepository) FindRunByID(ctx context.Context, runID string) (*domain.SimulationRun, error) {
	query := `
		SELECT
			run_id, scenario_id, workspace_id,
			initial_capital, step_size, steps,
			steady_state, final_capital, converged, converged_at,
			path, created_at, created_by
		FROM simulation_runs
		WHERE run_id = $1;
	`
	var m models.SimulationRun
	err := r.Pool.QueryRow(ctx, query, runID).Scan(
		&m.RunID,
		&m.ScenarioID,
		&m.WorkspaceID,
		&m.InitialCapital,
		&m.StepSize,
		&m.Steps,
		&m.SteadyState,
		&m.FinalCapital,
		&m.Converged,
		&m.ConvergedAt,
		&m.Path,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find simulation run by ID %s: %w", runID, err)
	}

	run, err := mapping.ToDomainSimulationRun(m)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRunsByScenario retrieves run summaries newest first using token-based
// pagination. The path column is deliberately left out so listings stay cheap.
func (r *PgxSimulationRepository) ListRunsByScenario(ctx context.Context, scenarioID string, limit int, nextToken *string) ([]domain.SimulationRun, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT
			run_id, scenario_id, workspace_id,
			initial_capital, step_size, steps,
			steady_state, final_capital, converged, converged_at,
			created_at, created_by
		FROM simulation_runs
		WHERE scenario_id = $1
	`
	args := []any{scenarioID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastRunID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (created_at, run_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastRunID)
	}

	query += ` ORDER BY created_at DESC, run_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query simulation runs: %w", err)
	}
	defer rows.Close()

	modelRuns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SimulationRun, error) {
		var m models.SimulationRun
		err := row.Scan(
			&m.RunID,
			&m.ScenarioID,
			&m.WorkspaceID,
			&m.InitialCapital,
			&m.StepSize,
			&m.Steps,
			&m.SteadyState,
			&m.FinalCapital,
			&m.Converged,
			&m.ConvergedAt,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		return m, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.SimulationRun{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to scan simulation runs: %w", err)
	}

	var nextTokenVal *string
	results := modelRuns
	if len(modelRuns) > limit {
		last := modelRuns[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.RunID)
		nextTokenVal = &token
		results = modelRuns[:limit]
	}

	runs := make([]domain.SimulationRun, 0, len(results))
	for _, m := range results {
		run, err := mapping.ToDomainSimulationRun(m)
		if err != nil {
			return nil, nil, err
		}
		runs = append(runs, run)
	}
	return runs, nextTokenVal, nil
}
