package models

import "github.com/shopspring/decimal"

// Scenario represents a scenarios row.
type Scenario struct {
	ScenarioID   string          `db:"scenario_id"`
	WorkspaceID  string          `db:"workspace_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	SavingsRate  decimal.Decimal `db:"savings_rate"`
	Depreciation decimal.Decimal `db:"depreciation"`
	PopGrowth    decimal.Decimal `db:"pop_growth"`
	TechGrowth   decimal.Decimal `db:"tech_growth"`
	CapitalShare decimal.Decimal `db:"capital_share"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
