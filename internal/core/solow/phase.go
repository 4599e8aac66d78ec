package solow

import (
	"fmt"

	"github.com/macrodyn/solow_model_app/internal/apperrors"
)

// Defaults for the phase-diagram grid.
const (
	DefaultPhaseMin    = 0.0
	DefaultPhaseMax    = 10.0
	DefaultPhasePoints = 300
	MaxPhasePoints     = 5000
)

// PhaseSeries holds the phase-diagram data over a capital grid: the
// investment curve s*f(k) and the break-even investment line (n+g+delta)*k.
// The curves cross at the steady state.
type PhaseSeries struct {
	Capital    []float64 `json:"capital"`
	Investment []float64 `json:"investment"`
	BreakEven  []float64 `json:"breakEven"`
}

// Phase evaluates both curves over an evenly spaced grid of `points` values
// from kMin to kMax inclusive.
func (p Params) Phase(kMin, kMax float64, points int) (PhaseSeries, error) {
	if kMin < 0 || kMax <= kMin {
		return PhaseSeries{}, fmt.Errorf("%w: capital grid requires 0 <= kMin < kMax", apperrors.ErrValidation)
	}
	if points < 2 || points > MaxPhasePoints {
		return PhaseSeries{}, fmt.Errorf("%w: points must be in [2, %d]", apperrors.ErrValidation, MaxPhasePoints)
	}

	series := PhaseSeries{
		Capital:    make([]float64, points),
		Investment: make([]float64, points),
		BreakEven:  make([]float64, points),
	}
	lambda := p.Dilution()
	step := (kMax - kMin) / float64(points-1)
	for i := 0; i < points; i++ {
		k := kMin + float64(i)*step
		series.Capital[i] = k
		series.Investment[i] = p.SavingsRate * p.Production(k)
		series.BreakEven[i] = lambda * k
	}
	return series, nil
}
