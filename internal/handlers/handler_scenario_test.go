package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/core/solow"
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/macrodyn/solow_model_app/internal/handlers"
	"github.com/macrodyn/solow_model_app/internal/middleware"
	"github.com/macrodyn/solow_model_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ScenarioService ---
type MockScenarioService struct {
	mock.Mock
}

func (m *MockScenarioService) GetScenarioByID(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) (*domain.Scenario, error) {
	args := m.Called(ctx, workspaceID, scenarioID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioService) ListScenarios(ctx context.Context, workspaceID string, requestingUserID string, limit int, nextToken *string) ([]domain.Scenario, *string, error) {
	args := m.Called(ctx, workspaceID, requestingUserID, limit, nextToken)
	var scenarios []domain.Scenario
	if args.Get(0) != nil {
		scenarios = args.Get(0).([]domain.Scenario)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return scenarios, token, args.Error(2)
}

func (m *MockScenarioService) CreateScenario(ctx context.Context, workspaceID string, req dto.CreateScenarioRequest, creatorUserID string) (*domain.Scenario, error) {
	args := m.Called(ctx, workspaceID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioService) UpdateScenario(ctx context.Context, workspaceID, scenarioID string, req dto.UpdateScenarioRequest, requestingUserID string) (*domain.Scenario, error) {
	args := m.Called(ctx, workspaceID, scenarioID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioService) DeactivateScenario(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) error {
	args := m.Called(ctx, workspaceID, scenarioID, requestingUserID)
	return args.Error(0)
}

func (m *MockScenarioService) ComputeSteadyState(ctx context.Context, workspaceID, scenarioID string, requestingUserID string) (*solow.SteadyState, error) {
	args := m.Called(ctx, workspaceID, scenarioID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*solow.SteadyState), args.Error(1)
}

func (m *MockScenarioService) ComputePhase(ctx context.Context, workspaceID, scenarioID string, requestingUserID string, kMin, kMax float64, points int) (*solow.PhaseSeries, error) {
	args := m.Called(ctx, workspaceID, scenarioID, requestingUserID, kMin, kMax, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*solow.PhaseSeries), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ScenarioSvcFacade = (*MockScenarioService)(nil)

// --- Mock SimulationService ---
type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) RunSimulation(ctx context.Context, workspaceID, scenarioID string, req dto.CreateSimulationRunRequest, requestingUserID string) (*domain.SimulationRun, error) {
	args := m.Called(ctx, workspaceID, scenarioID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationRun), args.Error(1)
}

func (m *MockSimulationService) GetRunByID(ctx context.Context, workspaceID, runID string, requestingUserID string) (*domain.SimulationRun, error) {
	args := m.Called(ctx, workspaceID, runID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationRun), args.Error(1)
}

func (m *MockSimulationService) ListRuns(ctx context.Context, workspaceID, scenarioID string, requestingUserID string, limit int, nextToken *string) ([]domain.SimulationRun, *string, error) {
	args := m.Called(ctx, workspaceID, scenarioID, requestingUserID, limit, nextToken)
	var runs []domain.SimulationRun
	if args.Get(0) != nil {
		runs = args.Get(0).([]domain.SimulationRun)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return runs, token, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.SimulationSvcFacade = (*MockSimulationService)(nil)

// --- Test Suite ---
type ScenarioHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockScenarioService   *MockScenarioService
	mockSimulationService *MockSimulationService
	cfg                   *config.Config
}

func (suite *ScenarioHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret: "test-secret-key-that-is-long-enough",
		JWTIssuer: "solow-model-app-test",
	}

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(suite.cfg))

	suite.mockScenarioService = new(MockScenarioService)
	suite.mockSimulationService = new(MockSimulationService)

	workspaces := suite.router.Group("/api/v1/workspaces/:workspace_id")
	handlers.RegisterScenarioRoutes(workspaces, suite.mockScenarioService, suite.mockSimulationService)
}

// generateTestToken creates a signed JWT accepted by the auth middleware.
func (suite *ScenarioHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    suite.cfg.JWTIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.cfg.JWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ScenarioHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ScenarioHandlerTestSuite) TestGetScenario_Success() {
	workspaceID := uuid.NewString()
	userID := uuid.NewString()
	scenario := &domain.Scenario{
		ScenarioID:   uuid.NewString(),
		WorkspaceID:  workspaceID,
		Name:         "Baseline",
		SavingsRate:  decimal.RequireFromString("0.30"),
		Depreciation: decimal.RequireFromString("0.05"),
		PopGrowth:    decimal.RequireFromString("0.02"),
		TechGrowth:   decimal.RequireFromString("0.02"),
		CapitalShare: decimal.RequireFromString("0.33"),
		IsActive:     true,
	}

	suite.mockScenarioService.On("GetScenarioByID",
		mock.Anything, workspaceID, scenario.ScenarioID, userID).
		Return(scenario, nil).Once()

	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios/%s", workspaceID, scenario.ScenarioID)
	w := suite.authedRequest(http.MethodGet, url, nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ScenarioResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(scenario.ScenarioID, body.ScenarioID)
	suite.Equal("Baseline", body.Name)
	suite.mockScenarioService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestGetScenario_NotFound() {
	workspaceID := uuid.NewString()
	scenarioID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockScenarioService.On("GetScenarioByID",
		mock.Anything, workspaceID, scenarioID, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios/%s", workspaceID, scenarioID)
	w := suite.authedRequest(http.MethodGet, url, nil, userID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockScenarioService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestGetScenario_NoToken() {
	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios/%s", uuid.NewString(), uuid.NewString())
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockScenarioService.AssertNotCalled(suite.T(), "GetScenarioByID",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScenarioHandlerTestSuite) TestCreateScenario_Success() {
	workspaceID := uuid.NewString()
	userID := uuid.NewString()
	created := &domain.Scenario{
		ScenarioID:  uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        "High saving",
		IsActive:    true,
	}

	suite.mockScenarioService.On("CreateScenario",
		mock.Anything, workspaceID,
		mock.MatchedBy(func(req dto.CreateScenarioRequest) bool {
			return req.Name == "High saving" && req.PresetCode == "HIGH_SAVING"
		}),
		userID).
		Return(created, nil).Once()

	payload := []byte(`{"name":"High saving","presetCode":"HIGH_SAVING"}`)
	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios", workspaceID)
	w := suite.authedRequest(http.MethodPost, url, payload, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.ScenarioResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.ScenarioID, body.ScenarioID)
	suite.mockScenarioService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestCreateScenario_MissingName() {
	workspaceID := uuid.NewString()
	userID := uuid.NewString()

	payload := []byte(`{"presetCode":"BASELINE"}`)
	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios", workspaceID)
	w := suite.authedRequest(http.MethodPost, url, payload, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockScenarioService.AssertNotCalled(suite.T(), "CreateScenario",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScenarioHandlerTestSuite) TestCreateScenario_Forbidden() {
	workspaceID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockScenarioService.On("CreateScenario",
		mock.Anything, workspaceID, mock.AnythingOfType("dto.CreateScenarioRequest"), userID).
		Return(nil, apperrors.ErrForbidden).Once()

	payload := []byte(`{"name":"Read only"}`)
	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios", workspaceID)
	w := suite.authedRequest(http.MethodPost, url, payload, userID)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockScenarioService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestListScenarios_Success() {
	workspaceID := uuid.NewString()
	userID := uuid.NewString()
	scenarios := []domain.Scenario{
		{ScenarioID: uuid.NewString(), WorkspaceID: workspaceID, Name: "A", IsActive: true},
		{ScenarioID: uuid.NewString(), WorkspaceID: workspaceID, Name: "B", IsActive: true},
	}
	nextToken := "page-2"

	suite.mockScenarioService.On("ListScenarios",
		mock.Anything, workspaceID, userID, 10, (*string)(nil)).
		Return(scenarios, &nextToken, nil).Once()

	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios?limit=10", workspaceID)
	w := suite.authedRequest(http.MethodGet, url, nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListScenariosResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Scenarios, 2)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(nextToken, *body.NextToken)
	suite.mockScenarioService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestDeactivateScenario_Success() {
	workspaceID := uuid.NewString()
	scenarioID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockScenarioService.On("DeactivateScenario",
		mock.Anything, workspaceID, scenarioID, userID).
		Return(nil).Once()

	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios/%s", workspaceID, scenarioID)
	w := suite.authedRequest(http.MethodDelete, url, nil, userID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockScenarioService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestComputeSteadyState_Success() {
	workspaceID := uuid.NewString()
	scenarioID := uuid.NewString()
	userID := uuid.NewString()
	ss := &solow.SteadyState{Capital: 6.03, Output: 1.81, ConvergenceRate: 0.0603}

	suite.mockScenarioService.On("ComputeSteadyState",
		mock.Anything, workspaceID, scenarioID, userID).
		Return(ss, nil).Once()

	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios/%s/steady-state", workspaceID, scenarioID)
	w := suite.authedRequest(http.MethodGet, url, nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body solow.SteadyState
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.InDelta(ss.Capital, body.Capital, 1e-9)
	suite.mockScenarioService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestComputePhase_DefaultGrid() {
	workspaceID := uuid.NewString()
	scenarioID := uuid.NewString()
	userID := uuid.NewString()
	series := &solow.PhaseSeries{
		Capital:    []float64{0, 5, 10},
		Investment: []float64{0, 0.5, 0.7},
		BreakEven:  []float64{0, 0.45, 0.9},
	}

	// No query parameters: the handler falls back to the kernel grid defaults
	suite.mockScenarioService.On("ComputePhase",
		mock.Anything, workspaceID, scenarioID, userID,
		solow.DefaultPhaseMin, solow.DefaultPhaseMax, solow.DefaultPhasePoints).
		Return(series, nil).Once()

	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios/%s/phase", workspaceID, scenarioID)
	w := suite.authedRequest(http.MethodGet, url, nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockScenarioService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestRunSimulation_Success() {
	workspaceID := uuid.NewString()
	scenarioID := uuid.NewString()
	userID := uuid.NewString()
	run := &domain.SimulationRun{
		RunID:          uuid.NewString(),
		ScenarioID:     scenarioID,
		WorkspaceID:    workspaceID,
		InitialCapital: 1.0,
		StepSize:       solow.DefaultStepSize,
		Steps:          solow.DefaultSteps,
		SteadyState:    6.03,
		FinalCapital:   6.01,
		Path:           []solow.PathPoint{{Time: 0, Capital: 1.0, Output: 1.0}},
	}

	suite.mockSimulationService.On("RunSimulation",
		mock.Anything, workspaceID, scenarioID,
		mock.MatchedBy(func(req dto.CreateSimulationRunRequest) bool {
			return req.InitialCapital == 1.0 && req.StepSize == nil
		}),
		userID).
		Return(run, nil).Once()

	payload := []byte(`{"initialCapital":1.0}`)
	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios/%s/runs", workspaceID, scenarioID)
	w := suite.authedRequest(http.MethodPost, url, payload, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.SimulationRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(run.RunID, body.RunID)
	// Single-run responses include the stored path
	suite.Len(body.Path, 1)
	suite.mockSimulationService.AssertExpectations(suite.T())
}

func (suite *ScenarioHandlerTestSuite) TestListRuns_OmitsPaths() {
	workspaceID := uuid.NewString()
	scenarioID := uuid.NewString()
	userID := uuid.NewString()
	runs := []domain.SimulationRun{
		{
			RunID:       uuid.NewString(),
			ScenarioID:  scenarioID,
			WorkspaceID: workspaceID,
			Path:        []solow.PathPoint{{Time: 0, Capital: 1}},
		},
	}

	suite.mockSimulationService.On("ListRuns",
		mock.Anything, workspaceID, scenarioID, userID, 20, (*string)(nil)).
		Return(runs, nil, nil).Once()

	url := fmt.Sprintf("/api/v1/workspaces/%s/scenarios/%s/runs", workspaceID, scenarioID)
	w := suite.authedRequest(http.MethodGet, url, nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListSimulationRunsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Runs, 1)
	suite.Empty(body.Runs[0].Path)
	suite.mockSimulationService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestScenarioHandler(t *testing.T) {
	suite.Run(t, new(ScenarioHandlerTestSuite))
}
