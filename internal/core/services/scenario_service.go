package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/core/solow"
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/shopspring/decimal"
)

// scenarioService implements the ScenarioSvcFacade interface
type scenarioService struct {
	BaseService
	scenarioRepo  portsrepo.ScenarioRepositoryFacade
	workspaceRepo portsrepo.WorkspaceReader
	presetRepo    portsrepo.PresetReader
}

// NewScenarioService creates a new scenario service with the provided dependencies
func NewScenarioService(
	scenarioRepo portsrepo.ScenarioRepositoryFacade,
	workspaceRepo portsrepo.WorkspaceReader,
	presetRepo portsrepo.PresetReader,
	authorizer portssvc.WorkspaceAuthorizerSvc,
) portssvc.ScenarioSvcFacade {
	return &scenarioService{
		BaseService:   BaseService{WorkspaceAuthorizer: authorizer},
		scenarioRepo:  scenarioRepo,
		workspaceRepo: workspaceRepo,
		presetRepo:    presetRepo,
	}
}

// Ensure scenarioService implements the ScenarioSvcFacade interface
var _ portssvc.ScenarioSvcFacade = (*scenarioService)(nil)

// GetScenarioByID retrieves a scenario, verifying workspace membership.
func (s *scenarioService) GetScenarioByID(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) (*domain.Scenario, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	scenario, err := s.scenarioRepo.FindScenarioByID(ctx, scenarioID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find scenario by ID",
				slog.String("scenario_id", scenarioID))
		}
		return nil, err
	}
	// A scenario fetched through the wrong workspace is indistinguishable
	// from a missing one.
	if scenario.WorkspaceID != workspaceID {
		return nil, apperrors.ErrNotFound
	}
	return scenario, nil
}

// ListScenarios retrieves a paginated list of scenarios in a workspace.
func (s *scenarioService) ListScenarios(ctx context.Context, workspaceID string, requestingUserID string, limit int, nextToken *string) ([]domain.Scenario, *string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	scenarios, newToken, err := s.scenarioRepo.ListScenarios(ctx, workspaceID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list scenarios",
			slog.String("workspace_id", workspaceID))
		return nil, nil, err
	}
	if scenarios == nil {
		scenarios = []domain.Scenario{}
	}
	return scenarios, newToken, nil
}

// CreateScenario persists a new scenario. Parameters are resolved in order:
// values supplied on the request, then the request's preset, then the
// workspace default preset, then the baseline calibration.
func (s *scenarioService) CreateScenario(ctx context.Context, workspaceID string, req dto.CreateScenarioRequest, creatorUserID string) (*domain.Scenario, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	base, err := s.resolveBaseParams(ctx, workspaceID, req.PresetCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	scenario := domain.Scenario{
		ScenarioID:   uuid.NewString(),
		WorkspaceID:  workspaceID,
		Name:         req.Name,
		Description:  req.Description,
		SavingsRate:  pick(req.SavingsRate, base.SavingsRate),
		Depreciation: pick(req.Depreciation, base.Depreciation),
		PopGrowth:    pick(req.PopGrowth, base.PopGrowth),
		TechGrowth:   pick(req.TechGrowth, base.TechGrowth),
		CapitalShare: pick(req.CapitalShare, base.CapitalShare),
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := scenario.ModelParams().Validate(); err != nil {
		return nil, err
	}

	if err := s.scenarioRepo.SaveScenario(ctx, scenario); err != nil {
		s.LogError(ctx, err, "Failed to save scenario",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Scenario created successfully",
		slog.String("scenario_id", scenario.ScenarioID),
		slog.String("workspace_id", workspaceID))
	return &scenario, nil
}

// resolveBaseParams picks the calibration new scenario parameters start from.
func (s *scenarioService) resolveBaseParams(ctx context.Context, workspaceID, presetCode string) (*domain.CalibrationPreset, error) {
	if presetCode == "" {
		workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		if workspace.DefaultPresetCode != nil {
			presetCode = *workspace.DefaultPresetCode
		}
	}

	if presetCode != "" {
		preset, err := s.presetRepo.FindPresetByCode(ctx, presetCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewBadRequestError("unknown calibration preset: " + presetCode)
			}
			return nil, err
		}
		return preset, nil
	}

	// Baseline calibration when neither the request nor the workspace names a preset.
	baseline := solow.Baseline()
	return &domain.CalibrationPreset{
		SavingsRate:  decimal.NewFromFloat(baseline.SavingsRate),
		Depreciation: decimal.NewFromFloat(baseline.Depreciation),
		PopGrowth:    decimal.NewFromFloat(baseline.PopGrowth),
		TechGrowth:   decimal.NewFromFloat(baseline.TechGrowth),
		CapitalShare: decimal.NewFromFloat(baseline.CapitalShare),
	}, nil
}

func pick(override *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return fallback
}

// UpdateScenario applies partial updates to a scenario.
func (s *scenarioService) UpdateScenario(ctx context.Context, workspaceID, scenarioID string, req dto.UpdateScenarioRequest, requestingUserID string) (*domain.Scenario, error) {
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
		return nil, apperrors.NewBadRequestError("cannot update a deactivated scenario")
	}

	if req.Name != nil {
		scenario.Name = *req.Name
	}
	if req.Description != nil {
		scenario.Description = *req.Description
	}
	if req.SavingsRate != nil {
		scenario.SavingsRate = *req.SavingsRate
	}
	if req.Depreciation != nil {
		scenario.Depreciation = *req.Depreciation
	}
	if req.PopGrowth != nil {
		scenario.PopGrowth = *req.PopGrowth
	}
	if req.TechGrowth != nil {
		scenario.TechGrowth = *req.TechGrowth
	}
	if req.CapitalShare != nil {
		scenario.CapitalShare = *req.CapitalShare
	}

	if err := scenario.ModelParams().Validate(); err != nil {
		return nil, err
	}

	scenario.LastUpdatedAt = time.Now()
	scenario.LastUpdatedBy = requestingUserID

	if err := s.scenarioRepo.UpdateScenario(ctx, *scenario); err != nil {
		s.LogError(ctx, err, "Failed to update scenario",
			slog.String("scenario_id", scenarioID))
		return nil, err
	}

	s.LogInfo(ctx, "Scenario updated successfully",
		slog.String("scenario_id", scenarioID))
	return scenario, nil
}

// DeactivateScenario marks a scenario as inactive. Admin only.
func (s *scenarioService) DeactivateScenario(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	scenario, err := s.scenarioRepo.FindScenarioByID(ctx, scenarioID)
	if err != nil {
		return err
	}
	if scenario.WorkspaceID != workspaceID {
		return apperrors.ErrNotFound
	}

	if err := s.scenarioRepo.DeactivateScenario(ctx, scenarioID, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate scenario",
			slog.String("scenario_id", scenarioID))
		return err
	}

	s.LogInfo(ctx, "Scenario deactivated",
		slog.String("scenario_id", scenarioID))
	return nil
}

// ComputeSteadyState computes the balanced-growth summary for a scenario.
func (s *scenarioService) ComputeSteadyState(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) (*solow.SteadyState, error) {
	scenario, err := s.GetScenarioByID(ctx, workspaceID, scenarioID, requestingUserID)
	if err != nil {
		return nil, err
	}

	steadyState, err := scenario.ModelParams().ComputeSteadyState()
	if err != nil {
		return nil, fmt.Errorf("failed to compute steady state for scenario %s: %w", scenarioID, err)
	}
	return &steadyState, nil
}

// ComputePhase computes phase-diagram series for a scenario over a capital grid.
func (s *scenarioService) ComputePhase(ctx context.Context, workspaceID, scenarioID string, requestingUserID string, kMin, kMax float64, points int) (*solow.PhaseSeries, error) {
	scenario, err := s.GetScenarioByID(ctx, workspaceID, scenarioID, requestingUserID)
	if err != nil {
		return nil, err
	}

	series, err := scenario.ModelParams().Phase(kMin, kMax, points)
	if err != nil {
		return nil, err
	}
	return &series, nil
}
