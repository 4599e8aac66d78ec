package services

import (
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Workspace service first; other services depend on its authorizer.
	container.Workspace = NewWorkspaceService(
		repos.WorkspaceRepo,
		repos.PresetRepo,
	)
	workspaceAuthorizer := container.Workspace.(portssvc.WorkspaceAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Preset = NewPresetService(repos.PresetRepo)
	container.Scenario = NewScenarioService(
		repos.ScenarioRepo,
		repos.WorkspaceRepo,
		repos.PresetRepo,
		workspaceAuthorizer,
	)
	container.Simulation = NewSimulationService(
		repos.SimulationRepo,
		repos.ScenarioRepo,
		workspaceAuthorizer,
	)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)
	container.APIToken = NewAPITokenService(repos.APITokenRepo, container.User)

	return container
}
