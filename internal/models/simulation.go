package models

import "time"

// SimulationRun represents a simulation_runs row. The sampled path is stored
// as jsonb in the path column; repositories marshal it from the domain type.
type SimulationRun struct {
	RunID       string `db:"run_id"`
	ScenarioID  string `db:"scenario_id"`
	WorkspaceID string `db:"workspace_id"`

	InitialCapital float64 `db:"initial_capital"`
	StepSize       float64 `db:"step_size"`
	Steps          int     `db:"steps"`

	SteadyState  float64 `db:"steady_state"`
	FinalCapital float64 `db:"final_capital"`
	Converged    bool    `db:"converged"`
	ConvergedAt  float64 `db:"converged_at"`

	Path []byte `db:"path"` // jsonb

	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
