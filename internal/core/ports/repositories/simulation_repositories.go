package repositories

import (
	"context"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// SimulationReader defines read operations for simulation runs
type SimulationReader interface {
	// FindRunByID retrieves a specific run, including its stored path.
	FindRunByID(ctx context.Context, runID string) (*domain.SimulationRun, error)

	// ListRunsByScenario retrieves runs for a scenario, newest first,
	// without their paths (summaries only). Uses token-based pagination;
	// the returned token is nil when there are no more rows.
	ListRunsByScenario(ctx context.Context, scenarioID string, limit int, nextToken *string) ([]domain.SimulationRun, *string, error)
}

// SimulationWriter defines write operations for simulation runs
type SimulationWriter interface {
	// SaveRun persists a new run. Runs are immutable; there is no update.
	SaveRun(ctx context.Context, run domain.SimulationRun) error
}

// SimulationRepositoryFacade combines all simulation-run repository interfaces
type SimulationRepositoryFacade interface {
	SimulationReader
	SimulationWriter
}
