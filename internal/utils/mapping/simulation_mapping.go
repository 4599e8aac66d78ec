package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/core/solow"
	"github.com/macrodyn/solow_model_app/internal/models"
)

// ToModelSimulationRun converts a domain run to its persistence model,
// marshalling the sampled path to jsonb bytes.
func ToModelSimulationRun(d domain.SimulationRun) (models.SimulationRun, error) {
	pathJSON, err := json.Marshal(d.Path)
	if err != nil {
		return models.SimulationRun{}, fmt.Errorf("failed to marshal simulation path: %w", err)
	}
	return models.SimulationRun{
		RunID:          d.RunID,
		ScenarioID:     d.ScenarioID,
		WorkspaceID:    d.WorkspaceID,
		InitialCapital: d.InitialCapital,
		StepSize:       d.StepSize,
		Steps:          d.Steps,
		SteadyState:    d.SteadyState,
		FinalCapital:   d.FinalCapital,
		Converged:      d.Converged,
		ConvergedAt:    d.ConvergedAt,
		Path:           pathJSON,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}, nil
}

// ToDomainSimulationRun converts a persistence model to a domain run.
func ToDomainSimulationRun(m models.SimulationRun) (domain.SimulationRun, error) {
	var path []solow.PathPoint
	if len(m.Path) > 0 {
		if err := json.Unmarshal(m.Path, &path); err != nil {
			return domain.SimulationRun{}, fmt.Errorf("failed to unmarshal simulation path: %w", err)
		}
	}
	return domain.SimulationRun{
		RunID:          m.RunID,
		ScenarioID:     m.ScenarioID,
		WorkspaceID:    m.WorkspaceID,
		InitialCapital: m.InitialCapital,
		StepSize:       m.StepSize,
		Steps:          m.Steps,
		SteadyState:    m.SteadyState,
		FinalCapital:   m.FinalCapital,
		Converged:      m.Converged,
		ConvergedAt:    m.ConvergedAt,
		Path:           path,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}, nil
}
