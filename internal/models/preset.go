package models

import "github.com/shopspring/decimal"

// CalibrationPreset represents a calibration_presets row.
type CalibrationPreset struct {
	PresetCode   string          `db:"preset_code"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	SavingsRate  decimal.Decimal `db:"savings_rate"`
	Depreciation decimal.Decimal `db:"depreciation"`
	PopGrowth    decimal.Decimal `db:"pop_growth"`
	TechGrowth   decimal.Decimal `db:"tech_growth"`
	CapitalShare decimal.Decimal `db:"capital_share"`
	AuditFields
}
