package repositories

import (
	"context"
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// ScenarioReader defines read operations for scenario data
type ScenarioReader interface {
	// FindScenarioByID retrieves a specific scenario by its unique identifier.
	FindScenarioByID(ctx context.Context, scenarioID string) (*domain.Scenario, error)

	// ListScenarios retrieves a paginated list of scenarios for a workspace
	// using token-based pagination. Returns the page and the token for the
	// next page, or nil when there are no more rows.
	ListScenarios(ctx context.Context, workspaceID string, limit int, nextToken *string) ([]domain.Scenario, *string, error)
}

// ScenarioWriter defines write operations for scenario data
type ScenarioWriter interface {
	// SaveScenario persists a new scenario.
	SaveScenario(ctx context.Context, scenario domain.Scenario) error

	// UpdateScenario updates an existing scenario's details.
	UpdateScenario(ctx context.Context, scenario domain.Scenario) error

	// DeactivateScenario marks a scenario as inactive.
	DeactivateScenario(ctx context.Context, scenarioID string, userID string, now time.Time) error
}

// ScenarioRepositoryFacade combines all scenario-related repository interfaces
type ScenarioRepositoryFacade interface {
	ScenarioReader
	ScenarioWriter
}

// ScenarioRepositoryWithTx extends ScenarioRepositoryFacade with transaction capabilities
type ScenarioRepositoryWithTx interface {
	ScenarioRepositoryFacade
	TransactionManager
}
