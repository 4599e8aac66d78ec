package dto

import (
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/core/solow"
)

// CreateSimulationRunRequest starts a stored simulation for a scenario.
// Step size and step count fall back to the kernel defaults when omitted.
type CreateSimulationRunRequest struct {
	InitialCapital float64  `json:"initialCapital" binding:"gte=0"`
	StepSize       *float64 `json:"stepSize"`
	Steps          *int     `json:"steps"`
	MaxPathPoints  *int     `json:"maxPathPoints"`
}

// SimulationRunResponse describes a stored run. Path is omitted for list
// endpoints and populated only on single-run fetches.
type SimulationRunResponse struct {
	RunID          string            `json:"runId"`
	ScenarioID     string            `json:"scenarioId"`
	WorkspaceID    string            `json:"workspaceId"`
	InitialCapital float64           `json:"initialCapital"`
	StepSize       float64           `json:"stepSize"`
	Steps          int               `json:"steps"`
	SteadyState    float64           `json:"steadyState"`
	FinalCapital   float64           `json:"finalCapital"`
	Converged      bool              `json:"converged"`
	ConvergedAt    float64           `json:"convergedAt,omitempty"`
	Path           []solow.PathPoint `json:"path,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	CreatedBy      string            `json:"createdBy"`
}

// ListSimulationRunsParams holds pagination for run listings.
type ListSimulationRunsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken" binding:"omitempty"`
}

// ListSimulationRunsResponse is a paginated run listing without paths.
type ListSimulationRunsResponse struct {
	Runs      []SimulationRunResponse `json:"runs"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToSimulationRunResponse converts a domain run. Set includePath to false
// for listings so responses stay small.
func ToSimulationRunResponse(run domain.SimulationRun, includePath bool) SimulationRunResponse {
	resp := SimulationRunResponse{
		RunID:          run.RunID,
		ScenarioID:     run.ScenarioID,
		WorkspaceID:    run.WorkspaceID,
		InitialCapital: run.InitialCapital,
		StepSize:       run.StepSize,
		Steps:          run.Steps,
		SteadyState:    run.SteadyState,
		FinalCapital:   run.FinalCapital,
		Converged:      run.Converged,
		ConvergedAt:    run.ConvergedAt,
		CreatedAt:      run.CreatedAt,
		CreatedBy:      run.CreatedBy,
	}
	if includePath {
		resp.Path = run.Path
	}
	return resp
}

// ToListSimulationRunsResponse converts run summaries for list endpoints.
func ToListSimulationRunsResponse(runs []domain.SimulationRun, nextToken *string) ListSimulationRunsResponse {
	out := make([]SimulationRunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, ToSimulationRunResponse(run, false))
	}
	return ListSimulationRunsResponse{Runs: out, NextToken: nextToken}
}
