package domain

import (
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/solow"
)

// SimulationRun is a persisted execution of the capital-accumulation
// simulation for a scenario. Runs are immutable once written.
type SimulationRun struct {
	RunID       string `json:"runID"`       // Primary Key (UUID)
	ScenarioID  string `json:"scenarioID"`  // FK -> scenarios.scenario_id
	WorkspaceID string `json:"workspaceID"` // Denormalized for listing/authorization

	// Inputs.
	InitialCapital float64 `json:"initialCapital"`
	StepSize       float64 `json:"stepSize"`
	Steps          int     `json:"steps"`

	// Summary of the result.
	SteadyState  float64 `json:"steadyState"`
	FinalCapital float64 `json:"finalCapital"`
	Converged    bool    `json:"converged"`
	ConvergedAt  float64 `json:"convergedAt,omitempty"`

	// Sampled path, stored as jsonb.
	Path []solow.PathPoint `json:"path"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
