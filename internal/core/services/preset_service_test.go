package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockPresetRepository is a mock type for the PresetRepositoryFacade interface
type MockPresetRepository struct {
	mock.Mock
}

func (m *MockPresetRepository) FindPresetByCode(ctx context.Context, presetCode string) (*domain.CalibrationPreset, error) {
	args := m.Called(ctx, presetCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalibrationPreset), args.Error(1)
}

func (m *MockPresetRepository) ListPresets(ctx context.Context) ([]domain.CalibrationPreset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CalibrationPreset), args.Error(1)
}

func (m *MockPresetRepository) SavePreset(ctx context.Context, preset domain.CalibrationPreset) error {
	args := m.Called(ctx, preset)
	return args.Error(0)
}

// --- Test Suite Setup ---

type PresetServiceTestSuite struct {
	suite.Suite
	mockPresetRepo *MockPresetRepository
	service        portssvc.PresetSvcFacade
}

func (suite *PresetServiceTestSuite) SetupTest() {
	suite.mockPresetRepo = new(MockPresetRepository)
	suite.service = services.NewPresetService(suite.mockPresetRepo)
}

func validPreset(code string) domain.CalibrationPreset {
	return domain.CalibrationPreset{
		PresetCode:   code,
		Name:         "Custom",
		SavingsRate:  decimal.RequireFromString("0.25"),
		Depreciation: decimal.RequireFromString("0.04"),
		PopGrowth:    decimal.RequireFromString("0.01"),
		TechGrowth:   decimal.RequireFromString("0.02"),
		CapitalShare: decimal.RequireFromString("0.40"),
	}
}

// --- GetPresetByCode Tests ---

func (suite *PresetServiceTestSuite) TestGetPresetByCode_Success() {
	ctx := context.Background()
	preset := validPreset("BASELINE")

	suite.mockPresetRepo.On("FindPresetByCode", ctx, "BASELINE").Return(&preset, nil).Once()

	result, err := suite.service.GetPresetByCode(ctx, "BASELINE")

	suite.Require().NoError(err)
	suite.Equal(&preset, result)
	suite.mockPresetRepo.AssertExpectations(suite.T())
}

func (suite *PresetServiceTestSuite) TestGetPresetByCode_NotFound() {
	ctx := context.Background()

	suite.mockPresetRepo.On("FindPresetByCode", ctx, "MISSING").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.GetPresetByCode(ctx, "MISSING")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPresetRepo.AssertExpectations(suite.T())
}

// --- ListPresets Tests ---

func (suite *PresetServiceTestSuite) TestListPresets_Success() {
	ctx := context.Background()
	presets := []domain.CalibrationPreset{validPreset("A"), validPreset("B")}

	suite.mockPresetRepo.On("ListPresets", ctx).Return(presets, nil).Once()

	result, err := suite.service.ListPresets(ctx)

	suite.Require().NoError(err)
	suite.Equal(presets, result)
	suite.mockPresetRepo.AssertExpectations(suite.T())
}

func (suite *PresetServiceTestSuite) TestListPresets_EmptyReturnsNonNil() {
	ctx := context.Background()

	suite.mockPresetRepo.On("ListPresets", ctx).Return(nil, nil).Once()

	result, err := suite.service.ListPresets(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Empty(result)
}

// --- CreatePreset Tests ---

func (suite *PresetServiceTestSuite) TestCreatePreset_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	preset := validPreset("CUSTOM")

	suite.mockPresetRepo.On("SavePreset", ctx, mock.MatchedBy(func(p domain.CalibrationPreset) bool {
		return p.PresetCode == "CUSTOM" && p.CreatedBy == creatorUserID && p.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	result, err := suite.service.CreatePreset(ctx, preset, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(creatorUserID, result.CreatedBy)
	suite.mockPresetRepo.AssertExpectations(suite.T())
}

func (suite *PresetServiceTestSuite) TestCreatePreset_ParamOutOfRange() {
	ctx := context.Background()
	preset := validPreset("BROKEN")
	preset.Depreciation = decimal.RequireFromString("0.50") // above the 0.2 cap

	result, err := suite.service.CreatePreset(ctx, preset, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPresetRepo.AssertNotCalled(suite.T(), "SavePreset", mock.Anything, mock.Anything)
}

func (suite *PresetServiceTestSuite) TestCreatePreset_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockPresetRepo.On("SavePreset", ctx, mock.AnythingOfType("domain.CalibrationPreset")).
		Return(expectedErr).Once()

	result, err := suite.service.CreatePreset(ctx, validPreset("CUSTOM"), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, expectedErr)
	suite.mockPresetRepo.AssertExpectations(suite.T())
}

// --- InitializeStaticData Tests ---

func (suite *PresetServiceTestSuite) TestInitializeStaticData_SeedsBuiltins() {
	ctx := context.Background()
	seeded := map[string]bool{}

	suite.mockPresetRepo.On("SavePreset", ctx, mock.MatchedBy(func(p domain.CalibrationPreset) bool {
		seeded[p.PresetCode] = true
		return p.CreatedBy == "SYSTEM"
	})).Return(nil).Times(3)

	seeder, ok := suite.service.(portssvc.StaticDataService)
	suite.Require().True(ok)

	err := seeder.InitializeStaticData(ctx)

	suite.Require().NoError(err)
	suite.True(seeded["BASELINE"])
	suite.True(seeded["HIGH_SAVING"])
	suite.True(seeded["STAGNANT"])
	suite.mockPresetRepo.AssertExpectations(suite.T())
}

func (suite *PresetServiceTestSuite) TestInitializeStaticData_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockPresetRepo.On("SavePreset", ctx, mock.AnythingOfType("domain.CalibrationPreset")).
		Return(expectedErr).Once()

	seeder := suite.service.(portssvc.StaticDataService)
	err := seeder.InitializeStaticData(ctx)

	suite.ErrorIs(err, expectedErr)
	suite.mockPresetRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestPresetService(t *testing.T) {
	suite.Run(t, new(PresetServiceTestSuite))
}
