package domain

import (
	"github.com/macrodyn/solow_model_app/internal/core/solow"
	"github.com/shopspring/decimal"
)

// CalibrationPreset is a named, code-keyed parameter calibration. Presets are
// static data seeded at startup; new scenarios can start from one.
type CalibrationPreset struct {
	PresetCode   string          `json:"presetCode"` // Primary Key, e.g. "BASELINE"
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SavingsRate  decimal.Decimal `json:"savingsRate"`
	Depreciation decimal.Decimal `json:"depreciation"`
	PopGrowth    decimal.Decimal `json:"popGrowth"`
	TechGrowth   decimal.Decimal `json:"techGrowth"`
	CapitalShare decimal.Decimal `json:"capitalShare"`
	AuditFields
}

// ModelParams converts the preset's decimal parameters to the kernel's
// float64 parameter set.
func (p CalibrationPreset) ModelParams() solow.Params {
	return solow.Params{
		SavingsRate:  p.SavingsRate.InexactFloat64(),
		Depreciation: p.Depreciation.InexactFloat64(),
		PopGrowth:    p.PopGrowth.InexactFloat64(),
		TechGrowth:   p.TechGrowth.InexactFloat64(),
		CapitalShare: p.CapitalShare.InexactFloat64(),
	}
}
