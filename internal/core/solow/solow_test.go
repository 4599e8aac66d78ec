package solow_test

import (
	"math"
	"testing"

	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/solow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*solow.Params)
		wantErr bool
	}{
		{"baseline is valid", func(p *solow.Params) {}, false},
		{"savings rate at upper bound", func(p *solow.Params) { p.SavingsRate = 1.0 }, false},
		{"savings rate above one", func(p *solow.Params) { p.SavingsRate = 1.01 }, true},
		{"negative savings rate", func(p *solow.Params) { p.SavingsRate = -0.1 }, true},
		{"depreciation above cap", func(p *solow.Params) { p.Depreciation = 0.25 }, true},
		{"population growth above cap", func(p *solow.Params) { p.PopGrowth = 0.2 }, true},
		{"tech growth above cap", func(p *solow.Params) { p.TechGrowth = 0.11 }, true},
		{"capital share too low", func(p *solow.Params) { p.CapitalShare = 0.05 }, true},
		{"capital share too high", func(p *solow.Params) { p.CapitalShare = 0.95 }, true},
		{"NaN parameter", func(p *solow.Params) { p.Depreciation = math.NaN() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := solow.Baseline()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSteadyStateCapital(t *testing.T) {
	p := solow.Baseline()

	kStar, err := p.SteadyStateCapital()
	require.NoError(t, err)

	// Closed form: (0.3 / 0.09)^(1/0.67).
	want := math.Pow(0.3/0.09, 1/(1-0.33))
	assert.InDelta(t, want, kStar, 1e-12)

	// dk/dt must vanish at the steady state.
	assert.InDelta(t, 0, p.CapitalChange(kStar), 1e-12)
}

func TestSteadyStateCapital_ZeroDilution(t *testing.T) {
	p := solow.Params{SavingsRate: 0.3, CapitalShare: 0.33}

	_, err := p.SteadyStateCapital()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSteadyStateCapital_ZeroSavings(t *testing.T) {
	p := solow.Baseline()
	p.SavingsRate = 0

	kStar, err := p.SteadyStateCapital()
	require.NoError(t, err)
	assert.Zero(t, kStar)
}

func TestComputeSteadyState(t *testing.T) {
	p := solow.Baseline()

	ss, err := p.ComputeSteadyState()
	require.NoError(t, err)

	assert.InDelta(t, p.Production(ss.Capital), ss.Output, 1e-12)
	assert.InDelta(t, ss.Output, ss.Consumption+ss.Investment, 1e-12)
	assert.InDelta(t, (1-0.33)*0.09, ss.ConvergenceRate, 1e-12)
	assert.InDelta(t, math.Ln2/ss.ConvergenceRate, ss.HalfLife, 1e-12)
}

func TestCapitalChange_Signs(t *testing.T) {
	p := solow.Baseline()
	kStar, err := p.SteadyStateCapital()
	require.NoError(t, err)

	// Below the steady state capital accumulates, above it decumulates.
	assert.Positive(t, p.CapitalChange(kStar/2))
	assert.Negative(t, p.CapitalChange(kStar*2))
}

func TestProduction(t *testing.T) {
	p := solow.Baseline()

	assert.Zero(t, p.Production(0))
	assert.InDelta(t, 1.0, p.Production(1), 1e-12)
	assert.InDelta(t, math.Pow(4, 0.33), p.Production(4), 1e-12)
}

func TestPhase(t *testing.T) {
	p := solow.Baseline()

	series, err := p.Phase(solow.DefaultPhaseMin, solow.DefaultPhaseMax, solow.DefaultPhasePoints)
	require.NoError(t, err)

	require.Len(t, series.Capital, solow.DefaultPhasePoints)
	require.Len(t, series.Investment, solow.DefaultPhasePoints)
	require.Len(t, series.BreakEven, solow.DefaultPhasePoints)

	assert.InDelta(t, 0, series.Capital[0], 1e-12)
	assert.InDelta(t, 10, series.Capital[len(series.Capital)-1], 1e-12)

	// Break-even line is linear in k.
	lambda := p.Dilution()
	for i, k := range series.Capital {
		assert.InDelta(t, lambda*k, series.BreakEven[i], 1e-12)
	}

	// Investment curve matches s*f(k) pointwise.
	for i, k := range series.Capital {
		assert.InDelta(t, p.SavingsRate*p.Production(k), series.Investment[i], 1e-12)
	}
}

func TestPhase_InvalidGrid(t *testing.T) {
	p := solow.Baseline()

	_, err := p.Phase(5, 5, 100)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = p.Phase(-1, 10, 100)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = p.Phase(0, 10, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = p.Phase(0, 10, solow.MaxPhasePoints+1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
