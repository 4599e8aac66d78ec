package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/core/solow"
	"github.com/macrodyn/solow_model_app/internal/dto"
)

// simulationService implements the SimulationSvcFacade interface
type simulationService struct {
	BaseService
	simulationRepo portsrepo.SimulationRepositoryFacade
	scenarioRepo   portsrepo.ScenarioReader
}

// NewSimulationService creates a new simulation service with the provided dependencies
func NewSimulationService(
	simulationRepo portsrepo.SimulationRepositoryFacade,
	scenarioRepo portsrepo.ScenarioReader,
	authorizer portssvc.WorkspaceAuthorizerSvc,
) portssvc.SimulationSvcFacade {
	return &simulationService{
		BaseService:    BaseService{WorkspaceAuthorizer: authorizer},
		simulationRepo: simulationRepo,
		scenarioRepo:   scenarioRepo,
	}
}

// Ensure simulationService implements the SimulationSvcFacade interface
var _ portssvc.SimulationSvcFacade = (*simulationService)(nil)

// RunSimulation integrates the scenario's capital path and persists the result.
func (s *simulationService) RunSimulation(ctx context.Context, workspaceID, scenarioID string, req dto.CreateSimulationRunRequest, requestingUserID string) (*domain.SimulationRun, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	scenario, err := s.scenarioRepo.FindScenarioByID(ctx, scenarioID)
	if err != nil {
		return nil, err
	}
	if scenario.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	if !scenario.IsActive {
		return nil, apperrors.NewBadRequestError("cannot simulate a deactivated scenario")
	}

	dt := solow.DefaultStepSize
	if req.StepSize != nil {
		dt = *req.StepSize
	}
	steps := solow.DefaultSteps
	if req.Steps != nil {
		steps = *req.Steps
	}
	maxPoints := solow.DefaultMaxPathPoints
	if req.MaxPathPoints != nil {
		maxPoints = *req.MaxPathPoints
	}

	path, err := scenario.ModelParams().Simulate(req.InitialCapital, dt, steps)
	if err != nil {
		return nil, err
	}
	path = path.Sample(maxPoints)

	run := domain.SimulationRun{
		RunID:          uuid.NewString(),
		ScenarioID:     scenarioID,
		WorkspaceID:    workspaceID,
		InitialCapital: req.InitialCapital,
		StepSize:       dt,
		Steps:          steps,
		SteadyState:    path.SteadyState,
		FinalCapital:   path.FinalCapital,
		Converged:      path.Converged,
		ConvergedAt:    path.ConvergedAt,
		Path:           path.Points,
		CreatedAt:      time.Now(),
		CreatedBy:      requestingUserID,
	}

	if err := s.simulationRepo.SaveRun(ctx, run); err != nil {
		s.LogError(ctx, err, "Failed to save simulation run",
			slog.String("scenario_id", scenarioID))
		return nil, err
	}

	s.LogInfo(ctx, "Simulation run stored",
		slog.String("run_id", run.RunID),
		slog.String("scenario_id", scenarioID),
		slog.Bool("converged", run.Converged))
	return &run, nil
}

// GetRunByID retrieves a stored run including its path.
func (s *simulationService) GetRunByID(ctx context.Context, workspaceID, runID string, requestingUserID string) (*domain.SimulationRun, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	run, err := s.simulationRepo.FindRunByID(ctx, runID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find simulation run",
				slog.String("run_id", runID))
		}
		return nil, err
	}
	if run.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	return run, nil
}

// ListRuns retrieves run summaries for a scenario, newest first.
func (s *simulationService) ListRuns(ctx context.Context, workspaceID, scenarioID string, requestingUserID string, limit int, nextToken *string) ([]domain.SimulationRun, *string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	scenario, err := s.scenarioRepo.FindScenarioByID(ctx, scenarioID)
	if err != nil {
		return nil, nil, err
	}
	if scenario.WorkspaceID != workspaceID {
		return nil, nil, apperrors.ErrNotFound
	}

	runs, newToken, err := s.simulationRepo.ListRunsByScenario(ctx, scenarioID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list simulation runs",
			slog.String("scenario_id", scenarioID))
		return nil, nil, err
	}
	if runs == nil {
		runs = []domain.SimulationRun{}
	}
	return runs, newToken, nil
}
