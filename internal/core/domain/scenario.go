package domain

import (
	"github.com/macrodyn/solow_model_app/internal/core/solow"
	"github.com/shopspring/decimal"
)

// Scenario is a named parameter set inside a workspace. Parameters are stored
// as decimals so user-entered calibrations round-trip exactly; the math
// kernel works on the float64 view from ModelParams.
type Scenario struct {
	ScenarioID   string          `json:"scenarioID"`  // Primary Key (UUID)
	WorkspaceID  string          `json:"workspaceID"` // FK -> workspaces.workspace_id
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SavingsRate  decimal.Decimal `json:"savingsRate"`
	Depreciation decimal.Decimal `json:"depreciation"`
	PopGrowth    decimal.Decimal `json:"popGrowth"`
	TechGrowth   decimal.Decimal `json:"techGrowth"`
	CapitalShare decimal.Decimal `json:"capitalShare"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// ModelParams converts the stored decimal parameters to the kernel's float64
// parameter set.
func (s Scenario) ModelParams() solow.Params {
	return solow.Params{
		SavingsRate:  s.SavingsRate.InexactFloat64(),
		Depreciation: s.Depreciation.InexactFloat64(),
		PopGrowth:    s.PopGrowth.InexactFloat64(),
		TechGrowth:   s.TechGrowth.InexactFloat64(),
		CapitalShare: s.CapitalShare.InexactFloat64(),
	}
}
