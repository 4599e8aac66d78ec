package dto

import "github.com/macrodyn/solow_model_app/internal/core/solow"

// ModelParamsRequest carries an ad-hoc parameter set for the compute
// endpoints that do not touch persistence. Pointers distinguish a missing
// field from a legitimate zero; range checks happen in the kernel's
// Validate, which the handlers run before computing. SavingsRate has no
// fraction tag because s=1 is admissible.
type ModelParamsRequest struct {
	SavingsRate  *float64 `json:"savingsRate" binding:"required"`
	Depreciation *float64 `json:"depreciation" binding:"required,fraction"`
	PopGrowth    *float64 `json:"popGrowth" binding:"required"`
	TechGrowth   *float64 `json:"techGrowth" binding:"required"`
	CapitalShare *float64 `json:"capitalShare" binding:"required,fraction"`
}

// ToParams converts the request to kernel parameters.
func (r ModelParamsRequest) ToParams() solow.Params {
	return solow.Params{
		SavingsRate:  *r.SavingsRate,
		Depreciation: *r.Depreciation,
		PopGrowth:    *r.PopGrowth,
		TechGrowth:   *r.TechGrowth,
		CapitalShare: *r.CapitalShare,
	}
}

// SteadyStateRequest computes the balanced-growth summary for ad-hoc params.
type SteadyStateRequest struct {
	Params ModelParamsRequest `json:"params" binding:"required"`
}

// SteadyStateResponse returns the balanced-growth summary.
type SteadyStateResponse struct {
	Params      solow.Params      `json:"params"`
	SteadyState solow.SteadyState `json:"steadyState"`
}

// PhaseQueryParams defines the capital grid for a phase-diagram request.
type PhaseQueryParams struct {
	KMin   *float64 `form:"kMin" json:"kMin"`
	KMax   *float64 `form:"kMax" json:"kMax"`
	Points *int     `form:"points" json:"points"`
}

// Grid resolves the query against the kernel defaults.
func (p PhaseQueryParams) Grid() (float64, float64, int) {
	kMin, kMax, points := solow.DefaultPhaseMin, solow.DefaultPhaseMax, solow.DefaultPhasePoints
	if p.KMin != nil {
		kMin = *p.KMin
	}
	if p.KMax != nil {
		kMax = *p.KMax
	}
	if p.Points != nil {
		points = *p.Points
	}
	return kMin, kMax, points
}

// PhaseRequest computes phase-diagram series for ad-hoc parameters.
type PhaseRequest struct {
	Params ModelParamsRequest `json:"params" binding:"required"`
	Grid   PhaseQueryParams   `json:"grid"`
}

// PhaseResponse returns the phase-diagram series.
type PhaseResponse struct {
	Params solow.Params      `json:"params"`
	Series solow.PhaseSeries `json:"series"`
}

// SimulateRequest defines simulation inputs; defaults apply when omitted.
type SimulateRequest struct {
	InitialCapital float64  `json:"initialCapital" binding:"gte=0"`
	StepSize       *float64 `json:"stepSize"`
	Steps          *int     `json:"steps"`
	// MaxPathPoints caps the number of stored/returned path points.
	MaxPathPoints *int `json:"maxPathPoints"`
}

// Resolve applies the kernel defaults for omitted fields.
func (r SimulateRequest) Resolve() (k0, dt float64, steps, maxPoints int) {
	k0 = r.InitialCapital
	dt = solow.DefaultStepSize
	steps = solow.DefaultSteps
	maxPoints = solow.DefaultMaxPathPoints
	if r.StepSize != nil {
		dt = *r.StepSize
	}
	if r.Steps != nil {
		steps = *r.Steps
	}
	if r.MaxPathPoints != nil {
		maxPoints = *r.MaxPathPoints
	}
	return k0, dt, steps, maxPoints
}

// AdhocSimulateRequest simulates ad-hoc parameters without persistence.
type AdhocSimulateRequest struct {
	Params     ModelParamsRequest `json:"params" binding:"required"`
	Simulation SimulateRequest    `json:"simulation"`
}

// SimulatePathResponse returns a simulated path without persisting it.
type SimulatePathResponse struct {
	Params solow.Params `json:"params"`
	Path   solow.Path   `json:"path"`
}
