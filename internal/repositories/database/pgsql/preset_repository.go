package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	"github.com/macrodyn/solow_model_app/internal/models"
	"github.com/macrodyn/solow_model_app/internal/utils/mapping"
)

type PgxPresetRepository struct {
	BaseRepository
}

// newPgxPresetRepository creates a new repository for calibration preset data.
func newPgxPresetRepository(pool *pgxpool.Pool) portsrepo.PresetRepositoryFacade {
	return &PgxPresetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PresetRepositoryFacade = (*PgxPresetRepository)(nil)

const presetSelectColumns = `
	preset_code, name, description,
	savings_rate, depreciation, pop_growth, tech_growth, capital_share,
	created_at, created_by, last_updated_at, last_updated_by
`

// SavePreset inserts or updates a preset (primarily for initial setup).
func (r *PgxPresetRepository) SavePreset(ctx context.Context, preset domain.CalibrationPreset) error {
	m := mapping.ToModelPreset(preset)
	query := `
		INSERT INTO calibration_presets (
			preset_code, name, description,
			savings_rate, depreciation, pop_growth, tech_growth, capital_share,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (preset_code) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			savings_rate = EXCLUDED.savings_rate,
			depreciation = EXCLUDED.depreciation,
			pop_growth = EXCLUDED.pop_growth,
			tech_growth = EXCLUDED.tech_growth,
			capital_share = EXCLUDED.capital_share,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PresetCode,
		m.Name,
		m.Description,
		m.SavingsRate,
		m.Depreciation,
		m.PopGrowth,
		m.TechGrowth,
		m.CapitalShare,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save calibration preset %s: %w", m.PresetCode, err)
	}
	return nil
}

// FindPresetByCode retrieves a preset by its code.
func (r *PgxPresetRepository) FindPresetByCode(ctx context.Context, presetCode string) (*domain.CalibrationPreset, error) {
	query := `
		SELECT ` + presetSelectColumns + `
		FROM calibration_presets
		WHERE preset_code = $1;
	`
	var m models.CalibrationPreset
	err := r.Pool.QueryRow(ctx, query, presetCode).Scan(
		&m.PresetCode,
		&m.Name,
		&m.Description,
		&m.SavingsRate,
		&m.Depreciation,
		&m.PopGrowth,
		&m.TechGrowth,
		&m.CapitalShare,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preset by code %s: %w", presetCode, err)
	}

	preset := mapping.ToDomainPreset(m)
	return &preset, nil
}

// ListPresets retrieves all presets ordered by code.
func (r *PgxPresetRepository) ListPresets(ctx context.Context) ([]domain.CalibrationPreset, error) {
	query := `
		SELECT ` + presetSelectColumns + `
		FROM calibration_presets
		ORDER BY preset_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query calibration presets: %w", err)
	}
	defer rows.Close()

	modelPresets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CalibrationPreset, error) {
		var m models.CalibrationPreset
		err := row.Scan(
			&m.PresetCode,
			&m.Name,
			&m.Description,
			&m.SavingsRate,
			&m.Depreciation,
			&m.PopGrowth,
			&m.TechGrowth,
			&m.CapitalShare,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CalibrationPreset{}, nil
		}
		return nil, fmt.Errorf("failed to scan calibration presets: %w", err)
	}

	return mapping.ToDomainPresetSlice(modelPresets), nil
}
