package services

import (
	"context"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// PresetReaderSvc defines read operations for calibration presets
type PresetReaderSvc interface {
	// GetPresetByCode retrieves a calibration preset by its code.
	GetPresetByCode(ctx context.Context, presetCode string) (*domain.CalibrationPreset, error)

	// ListPresets retrieves all calibration presets.
	ListPresets(ctx context.Context) ([]domain.CalibrationPreset, error)
}

// PresetWriterSvc defines write operations for calibration presets
type PresetWriterSvc interface {
	// CreatePreset persists a new calibration preset.
	CreatePreset(ctx context.Context, preset domain.CalibrationPreset, creatorUserID string) (*domain.CalibrationPreset, error)
}

// PresetSvcFacade combines all preset-related service interfaces
type PresetSvcFacade interface {
	PresetReaderSvc
	PresetWriterSvc
}
