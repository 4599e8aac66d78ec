package solow

import (
	"fmt"
	"math"

	"github.com/macrodyn/solow_model_app/internal/apperrors"
)

// Simulation bounds and defaults.
const (
	DefaultStepSize      = 0.1
	DefaultSteps         = 1000
	DefaultMaxPathPoints = 500 // cap on sampled points returned or persisted
	MaxSteps             = 100000
	MaxStepSize          = 1.0
	ConvergenceTolerance = 1e-3 // relative distance to k* counted as converged
)

// PathPoint is one sampled point of a simulated capital path.
type PathPoint struct {
	Time    float64 `json:"t"`
	Capital float64 `json:"k"`
	Output  float64 `json:"y"`
}

// Path is the result of a forward simulation of the capital accumulation
// equation.
type Path struct {
	Points       []PathPoint `json:"points"`
	SteadyState  float64     `json:"steadyState"`
	FinalCapital float64     `json:"finalCapital"`
	Converged    bool        `json:"converged"`
	ConvergedAt  float64     `json:"convergedAt,omitempty"` // model time of first entry into the tolerance band
}

// Simulate integrates dk/dt = s*f(k) - (n+g+delta)*k forward from k0 with
// explicit Euler steps of size dt. The path includes the initial condition,
// so it has steps+1 points. Capital is clamped at zero. k=0 is a fixed point
// of the discrete map (f(0)=0), so a path started there stays there.
func (p Params) Simulate(k0, dt float64, steps int) (Path, error) {
	if k0 < 0 || math.IsNaN(k0) {
		return Path{}, fmt.Errorf("%w: initial capital must be non-negative", apperrors.ErrValidation)
	}
	if dt <= 0 || dt > MaxStepSize {
		return Path{}, fmt.Errorf("%w: step size must be in (0, %g]", apperrors.ErrValidation, MaxStepSize)
	}
	if steps < 1 || steps > MaxSteps {
		return Path{}, fmt.Errorf("%w: steps must be in [1, %d]", apperrors.ErrValidation, MaxSteps)
	}

	kStar, err := p.SteadyStateCapital()
	if err != nil {
		return Path{}, err
	}

	path := Path{
		Points:      make([]PathPoint, 0, steps+1),
		SteadyState: kStar,
	}

	k := k0
	for i := 0; i <= steps; i++ {
		t := float64(i) * dt
		path.Points = append(path.Points, PathPoint{Time: t, Capital: k, Output: p.Production(k)})

		if !path.Converged && kStar > 0 && math.Abs(k-kStar)/kStar <= ConvergenceTolerance {
			path.Converged = true
			path.ConvergedAt = t
		}

		if i < steps {
			k += dt * p.CapitalChange(k)
			if k < 0 {
				k = 0
			}
		}
	}

	path.FinalCapital = k
	return path, nil
}

// Sample thins a path to at most maxPoints entries, always keeping the first
// and last point. Persisted runs store the thinned path.
func (pt Path) Sample(maxPoints int) Path {
	if maxPoints < 2 || len(pt.Points) <= maxPoints {
		return pt
	}
	sampled := make([]PathPoint, 0, maxPoints)
	stride := float64(len(pt.Points)-1) / float64(maxPoints-1)
	for i := 0; i < maxPoints; i++ {
		sampled = append(sampled, pt.Points[int(math.Round(float64(i)*stride))])
	}
	out := pt
	out.Points = sampled
	return out
}
