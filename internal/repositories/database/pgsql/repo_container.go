package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	workspaceRepo := newPgxWorkspaceRepository(dbPool)
	presetRepo := newPgxPresetRepository(dbPool)
	scenarioRepo := newPgxScenarioRepository(dbPool)
	simulationRepo := newPgxSimulationRepository(dbPool)
	apiTokenRepo := newPgxAPITokenRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		WorkspaceRepo:  workspaceRepo,
		PresetRepo:     presetRepo,
		ScenarioRepo:   scenarioRepo,
		SimulationRepo: simulationRepo,
		APITokenRepo:   apiTokenRepo,
	}
}
