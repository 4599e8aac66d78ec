package services

import (
	"context"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/core/solow"
	"github.com/macrodyn/solow_model_app/internal/dto"
)

// ScenarioReaderSvc defines read operations for scenario data
type ScenarioReaderSvc interface {
	// GetScenarioByID retrieves a scenario, verifying workspace membership.
	GetScenarioByID(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) (*domain.Scenario, error)

	// ListScenarios retrieves a paginated list of scenarios in a workspace.
	// Returns the scenarios and a token for fetching the next page.
	ListScenarios(ctx context.Context, workspaceID string, requestingUserID string, limit int, nextToken *string) ([]domain.Scenario, *string, error)
}

// ScenarioWriterSvc defines write operations for scenario data
type ScenarioWriterSvc interface {
	// CreateScenario persists a new scenario. Parameters come from the
	// request, a named preset, or the workspace default, in that order.
	CreateScenario(ctx context.Context, workspaceID string, req dto.CreateScenarioRequest, creatorUserID string) (*domain.Scenario, error)

	// UpdateScenario applies partial updates to a scenario.
	UpdateScenario(ctx context.Context, workspaceID, scenarioID string, req dto.UpdateScenarioRequest, requestingUserID string) (*domain.Scenario, error)

	// DeactivateScenario marks a scenario as inactive.
	DeactivateScenario(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) error
}

// ScenarioComputeSvc defines model computations over a stored scenario
type ScenarioComputeSvc interface {
	// ComputeSteadyState computes the balanced-growth summary for a scenario.
	ComputeSteadyState(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) (*solow.SteadyState, error)

	// ComputePhase computes phase-diagram series for a scenario over a
	// capital grid.
	ComputePhase(ctx context.Context, workspaceID, scenarioID string, requestingUserID string, kMin, kMax float64, points int) (*solow.PhaseSeries, error)
}

// ScenarioSvcFacade combines all scenario-related service interfaces
type ScenarioSvcFacade interface {
	ScenarioReaderSvc
	ScenarioWriterSvc
	ScenarioComputeSvc
}
