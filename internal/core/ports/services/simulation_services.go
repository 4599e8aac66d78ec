package services

import (
	"context"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/dto"
)

// SimulationRunnerSvc defines operations that execute simulations
type SimulationRunnerSvc interface {
	// RunSimulation integrates a scenario's capital path and persists the
	// resulting run. Runs are immutable once stored.
	RunSimulation(ctx context.Context, workspaceID, scenarioID string, req dto.CreateSimulationRunRequest, requestingUserID string) (*domain.SimulationRun, error)
}

// SimulationReaderSvc defines read operations for stored runs
type SimulationReaderSvc interface {
	// GetRunByID retrieves a stored run including its path.
	GetRunByID(ctx context.Context, workspaceID, runID string, requestingUserID string) (*domain.SimulationRun, error)

	// ListRuns retrieves run summaries (no paths) for a scenario, newest first.
	ListRuns(ctx context.Context, workspaceID, scenarioID string, requestingUserID string, limit int, nextToken *string) ([]domain.SimulationRun, *string, error)
}

// SimulationSvcFacade combines all simulation-related service interfaces
type SimulationSvcFacade interface {
	SimulationRunnerSvc
	SimulationReaderSvc
}
