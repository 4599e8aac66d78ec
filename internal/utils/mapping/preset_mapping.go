package mapping

import (
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/models"
)

// ToModelPreset converts a domain.CalibrationPreset to its persistence model.
func ToModelPreset(d domain.CalibrationPreset) models.CalibrationPreset {
	return models.CalibrationPreset{
		PresetCode:   d.PresetCode,
		Name:         d.Name,
		Description:  d.Description,
		SavingsRate:  d.SavingsRate,
		Depreciation: d.Depreciation,
		PopGrowth:    d.PopGrowth,
		TechGrowth:   d.TechGrowth,
		CapitalShare: d.CapitalShare,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPreset converts a persistence model to a domain.CalibrationPreset.
func ToDomainPreset(m models.CalibrationPreset) domain.CalibrationPreset {
	return domain.CalibrationPreset{
		PresetCode:   m.PresetCode,
		Name:         m.Name,
		Description:  m.Description,
		SavingsRate:  m.SavingsRate,
		Depreciation: m.Depreciation,
		PopGrowth:    m.PopGrowth,
		TechGrowth:   m.TechGrowth,
		CapitalShare: m.CapitalShare,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPresetSlice converts a slice of preset models.
func ToDomainPresetSlice(ms []models.CalibrationPreset) []domain.CalibrationPreset {
	ds := make([]domain.CalibrationPreset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPreset(m)
	}
	return ds
}
