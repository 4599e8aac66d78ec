package dto

import (
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePresetRequest defines the data needed to create a calibration preset.
type CreatePresetRequest struct {
	PresetCode   string          `json:"presetCode" binding:"required,min=2,max=32,uppercase"`
	Name         string          `json:"name" binding:"required,max=128"`
	Description  string          `json:"description"`
	SavingsRate  decimal.Decimal `json:"savingsRate" binding:"required"`
	Depreciation decimal.Decimal `json:"depreciation" binding:"required,fraction"`
	PopGrowth    decimal.Decimal `json:"popGrowth"`
	TechGrowth   decimal.Decimal `json:"techGrowth"`
	CapitalShare decimal.Decimal `json:"capitalShare" binding:"required,fraction"`
}

// ToDomainPreset converts the request to a domain preset. Audit fields are
// filled in by the service.
func (r CreatePresetRequest) ToDomainPreset() domain.CalibrationPreset {
	return domain.CalibrationPreset{
		PresetCode:   r.PresetCode,
		Name:         r.Name,
		Description:  r.Description,
		SavingsRate:  r.SavingsRate,
		Depreciation: r.Depreciation,
		PopGrowth:    r.PopGrowth,
		TechGrowth:   r.TechGrowth,
		CapitalShare: r.CapitalShare,
	}
}

// PresetResponse defines the data returned for a calibration preset.
type PresetResponse struct {
	PresetCode   string          `json:"presetCode"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SavingsRate  decimal.Decimal `json:"savingsRate"`
	Depreciation decimal.Decimal `json:"depreciation"`
	PopGrowth    decimal.Decimal `json:"popGrowth"`
	TechGrowth   decimal.Decimal `json:"techGrowth"`
	CapitalShare decimal.Decimal `json:"capitalShare"`
}

// ToPresetResponse converts a domain.CalibrationPreset to PresetResponse DTO
func ToPresetResponse(p *domain.CalibrationPreset) PresetResponse {
	return PresetResponse{
		PresetCode:   p.PresetCode,
		Name:         p.Name,
		Description:  p.Description,
		SavingsRate:  p.SavingsRate,
		Depreciation: p.Depreciation,
		PopGrowth:    p.PopGrowth,
		TechGrowth:   p.TechGrowth,
		CapitalShare: p.CapitalShare,
	}
}

// ListPresetsResponse wraps the list of presets.
type ListPresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}

// ToListPresetsResponse converts a slice of domain.CalibrationPreset.
func ToListPresetsResponse(ps []domain.CalibrationPreset) ListPresetsResponse {
	responses := make([]PresetResponse, len(ps))
	for i, p := range ps {
		responses[i] = ToPresetResponse(&p)
	}
	return ListPresetsResponse{Presets: responses}
}
