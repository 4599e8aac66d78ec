package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Workspace   WorkspaceSvcFacade
	Preset      PresetSvcFacade
	Scenario    ScenarioSvcFacade
	Simulation  SimulationSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthHandlerSvcFacade
	APIToken    APITokenSvc
}

// StaticDataService defines the interface for managing static data like
// the built-in calibration presets.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
