package mapping

import (
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/models"
)

// ToModelScenario converts a domain.Scenario to its persistence model.
func ToModelScenario(d domain.Scenario) models.Scenario {
	return models.Scenario{
		ScenarioID:   d.ScenarioID,
		WorkspaceID:  d.WorkspaceID,
		Name:         d.Name,
		Description:  d.Description,
		SavingsRate:  d.SavingsRate,
		Depreciation: d.Depreciation,
		PopGrowth:    d.PopGrowth,
		TechGrowth:   d.TechGrowth,
		CapitalShare: d.CapitalShare,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScenario converts a persistence model to a domain.Scenario.
func ToDomainScenario(m models.Scenario) domain.Scenario {
	return domain.Scenario{
		ScenarioID:   m.ScenarioID,
		WorkspaceID:  m.WorkspaceID,
		Name:         m.Name,
		Description:  m.Description,
		SavingsRate:  m.SavingsRate,
		Depreciation: m.Depreciation,
		PopGrowth:    m.PopGrowth,
		TechGrowth:   m.TechGrowth,
		CapitalShare: m.CapitalShare,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainScenarioSlice converts a slice of scenario models.
func ToDomainScenarioSlice(ms []models.Scenario) []domain.Scenario {
	ds := make([]domain.Scenario, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainScenario(m)
	}
	return ds
}
