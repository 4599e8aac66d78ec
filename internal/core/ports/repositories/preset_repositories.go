package repositories

import (
	"context"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// PresetReader defines read operations for calibration presets
type PresetReader interface {
	// FindPresetByCode retrieves a preset by its code.
	FindPresetByCode(ctx context.Context, presetCode string) (*domain.CalibrationPreset, error)

	// ListPresets retrieves all presets ordered by code.
	ListPresets(ctx context.Context) ([]domain.CalibrationPreset, error)
}

// PresetWriter defines write operations for calibration presets
type PresetWriter interface {
	// SavePreset inserts or updates a preset (used by static data seeding).
	SavePreset(ctx context.Context, preset domain.CalibrationPreset) error
}

// PresetRepositoryFacade combines all preset-related repository interfaces
type PresetRepositoryFacade interface {
	PresetReader
	PresetWriter
}
