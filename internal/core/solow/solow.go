package solow

import (
	"fmt"
	"math"

	"github.com/macrodyn/solow_model_app/internal/apperrors"
)

// Admissible parameter ranges. Alpha stays strictly inside (0,1) so the
// steady-state exponent 1/(1-alpha) is always defined.
const (
	MinSavingsRate  = 0.0
	MaxSavingsRate  = 1.0
	MinDepreciation = 0.0
	MaxDepreciation = 0.2
	MinPopGrowth    = 0.0
	MaxPopGrowth    = 0.1
	MinTechGrowth   = 0.0
	MaxTechGrowth   = 0.1
	MinCapitalShare = 0.1
	MaxCapitalShare = 0.9
)

// Params holds the model parameters.
type Params struct {
	SavingsRate  float64 // s
	Depreciation float64 // delta
	PopGrowth    float64 // n
	TechGrowth   float64 // g
	CapitalShare float64 // alpha
}

// Baseline returns the default calibration.
func Baseline() Params {
	return Params{
		SavingsRate:  0.3,
		Depreciation: 0.05,
		PopGrowth:    0.02,
		TechGrowth:   0.02,
		CapitalShare: 0.33,
	}
}

// Validate checks every parameter against its admissible range.
func (p Params) Validate() error {
	checks := []struct {
		name     string
		val      float64
		min, max float64
	}{
		{"savingsRate", p.SavingsRate, MinSavingsRate, MaxSavingsRate},
		{"depreciation", p.Depreciation, MinDepreciation, MaxDepreciation},
		{"popGrowth", p.PopGrowth, MinPopGrowth, MaxPopGrowth},
		{"techGrowth", p.TechGrowth, MinTechGrowth, MaxTechGrowth},
		{"capitalShare", p.CapitalShare, MinCapitalShare, MaxCapitalShare},
	}
	for _, c := range checks {
		if math.IsNaN(c.val) || c.val < c.min || c.val > c.max {
			return fmt.Errorf("%w: %s must be in [%g, %g], got %g",
				apperrors.ErrValidation, c.name, c.min, c.max, c.val)
		}
	}
	return nil
}

// Dilution returns n + g + delta, the combined rate at which capital per
// effective worker is diluted.
func (p Params) Dilution() float64 {
	return p.PopGrowth + p.TechGrowth + p.Depreciation
}

// Production returns output per effective worker, f(k) = k^alpha.
func (p Params) Production(k float64) float64 {
	return math.Pow(k, p.CapitalShare)
}

// CapitalChange returns dk/dt = s*f(k) - (n+g+delta)*k.
func (p Params) CapitalChange(k float64) float64 {
	return p.SavingsRate*p.Production(k) - p.Dilution()*k
}

// SteadyStateCapital returns k* = (s / (n+g+delta))^(1/(1-alpha)).
// The dilution rate must be positive; a zero dilution rate leaves the
// steady state undefined.
func (p Params) SteadyStateCapital() (float64, error) {
	lambda := p.Dilution()
	if lambda <= 0 {
		return 0, fmt.Errorf("%w: dilution rate n+g+delta must be positive", apperrors.ErrValidation)
	}
	return math.Pow(p.SavingsRate/lambda, 1/(1-p.CapitalShare)), nil
}

// SteadyState describes the balanced-growth path implied by the parameters.
type SteadyState struct {
	Capital         float64 `json:"capital"`         // k*
	Output          float64 `json:"output"`          // y* = f(k*)
	Consumption     float64 `json:"consumption"`     // c* = (1-s)*y*
	Investment      float64 `json:"investment"`      // i* = s*y*
	ConvergenceRate float64 `json:"convergenceRate"` // (1-alpha)*(n+g+delta)
	HalfLife        float64 `json:"halfLife"`        // ln2 / convergence rate
}

// ComputeSteadyState evaluates the full balanced-growth summary.
func (p Params) ComputeSteadyState() (SteadyState, error) {
	kStar, err := p.SteadyStateCapital()
	if err != nil {
		return SteadyState{}, err
	}
	yStar := p.Production(kStar)
	rate := (1 - p.CapitalShare) * p.Dilution()
	ss := SteadyState{
		Capital:         kStar,
		Output:          yStar,
		Consumption:     (1 - p.SavingsRate) * yStar,
		Investment:      p.SavingsRate * yStar,
		ConvergenceRate: rate,
	}
	if rate > 0 {
		ss.HalfLife = math.Ln2 / rate
	}
	return ss, nil
}
