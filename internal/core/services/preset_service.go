package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// systemUserID marks rows created by startup seeding rather than a person.
const systemUserID = "SYSTEM"

// presetService implements the PresetSvcFacade interface
type presetService struct {
	BaseService
	presetRepo portsrepo.PresetRepositoryFacade
}

// NewPresetService creates a new preset service with the provided dependencies
func NewPresetService(presetRepo portsrepo.PresetRepositoryFacade) portssvc.PresetSvcFacade {
	return &presetService{presetRepo: presetRepo}
}

// Ensure presetService implements the facade and the static data initializer
var (
	_ portssvc.PresetSvcFacade   = (*presetService)(nil)
	_ portssvc.StaticDataService = (*presetService)(nil)
)

// GetPresetByCode retrieves a calibration preset by its code.
func (s *presetService) GetPresetByCode(ctx context.Context, presetCode string) (*domain.CalibrationPreset, error) {
	preset, err := s.presetRepo.FindPresetByCode(ctx, presetCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find preset by code",
				slog.String("preset_code", presetCode))
		}
		return nil, err
	}
	return preset, nil
}

// ListPresets retrieves all calibration presets.
func (s *presetService) ListPresets(ctx context.Context) ([]domain.CalibrationPreset, error) {
	presets, err := s.presetRepo.ListPresets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list presets")
		return nil, err
	}
	if presets == nil {
		return []domain.CalibrationPreset{}, nil
	}
	return presets, nil
}

// CreatePreset persists a new calibration preset.
func (s *presetService) CreatePreset(ctx context.Context, preset domain.CalibrationPreset, creatorUserID string) (*domain.CalibrationPreset, error) {
	if err := preset.ModelParams().Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	preset.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.presetRepo.SavePreset(ctx, preset); err != nil {
		s.LogError(ctx, err, "Failed to save preset",
			slog.String("preset_code", preset.PresetCode))
		return nil, err
	}

	s.LogInfo(ctx, "Preset created",
		slog.String("preset_code", preset.PresetCode))
	return &preset, nil
}

// InitializeStaticData seeds the built-in calibration presets. Seeding is an
// upsert, so restarting the app refreshes the built-ins without duplicating.
func (s *presetService) InitializeStaticData(ctx context.Context) error {
	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     systemUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: systemUserID,
	}

	builtins := []domain.CalibrationPreset{
		{
			PresetCode:   "BASELINE",
			Name:         "Baseline",
			Description:  "Textbook calibration: s=0.30, delta=0.05, n=0.02, g=0.02, alpha=0.33",
			SavingsRate:  decimal.RequireFromString("0.30"),
			Depreciation: decimal.RequireFromString("0.05"),
			PopGrowth:    decimal.RequireFromString("0.02"),
			TechGrowth:   decimal.RequireFromString("0.02"),
			CapitalShare: decimal.RequireFromString("0.33"),
			AuditFields:  audit,
		},
		{
			PresetCode:   "HIGH_SAVING",
			Name:         "High saving",
			Description:  "East-Asian style growth miracle: high saving, fast population growth",
			SavingsRate:  decimal.RequireFromString("0.45"),
			Depreciation: decimal.RequireFromString("0.05"),
			PopGrowth:    decimal.RequireFromString("0.03"),
			TechGrowth:   decimal.RequireFromString("0.02"),
			CapitalShare: decimal.RequireFromString("0.33"),
			AuditFields:  audit,
		},
		{
			PresetCode:   "STAGNANT",
			Name:         "Stagnant",
			Description:  "Low saving, no technology growth, aging population",
			SavingsRate:  decimal.RequireFromString("0.15"),
			Depreciation: decimal.RequireFromString("0.06"),
			PopGrowth:    decimal.RequireFromString("0.00"),
			TechGrowth:   decimal.RequireFromString("0.00"),
			CapitalShare: decimal.RequireFromString("0.33"),
			AuditFields:  audit,
		},
	}

	for _, preset := range builtins {
		if err := s.presetRepo.SavePreset(ctx, preset); err != nil {
			s.LogError(ctx, err, "Failed to seed preset",
				slog.String("preset_code", preset.PresetCode))
			return err
		}
	}

	s.LogInfo(ctx, "Calibration presets seeded",
		slog.Int("count", len(builtins)))
	return nil
}
