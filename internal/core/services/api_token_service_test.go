package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/core/services"
	"github.com/macrodyn/solow_model_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAPITokenRepository is a mock type for the APITokenRepositoryFacade interface
type MockAPITokenRepository struct {
	mock.Mock
}

func (m *MockAPITokenRepository) FindTokenByHash(ctx context.Context, tokenHash string) (*domain.APIToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIToken), args.Error(1)
}

func (m *MockAPITokenRepository) ListTokensByUser(ctx context.Context, userID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIToken), args.Error(1)
}

func (m *MockAPITokenRepository) SaveToken(ctx context.Context, token domain.APIToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAPITokenRepository) RevokeToken(ctx context.Context, tokenID string, userID string, now time.Time) error {
	args := m.Called(ctx, tokenID, userID, now)
	return args.Error(0)
}

func (m *MockAPITokenRepository) TouchToken(ctx context.Context, tokenID string, now time.Time) error {
	args := m.Called(ctx, tokenID, now)
	return args.Error(0)
}

// MockUserReaderSvc is a mock type for the UserReaderSvc interface
type MockUserReaderSvc struct {
	mock.Mock
}

func (m *MockUserReaderSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderSvc) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderSvc) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type APITokenServiceTestSuite struct {
	suite.Suite
	mockTokenRepo *MockAPITokenRepository
	mockUserSvc   *MockUserReaderSvc
	service       portssvc.APITokenSvc
}

func (suite *APITokenServiceTestSuite) SetupTest() {
	suite.mockTokenRepo = new(MockAPITokenRepository)
	suite.mockUserSvc = new(MockUserReaderSvc)
	suite.service = services.NewAPITokenService(suite.mockTokenRepo, suite.mockUserSvc)
}

// --- CreateToken Tests ---

func (suite *APITokenServiceTestSuite) TestCreateToken_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	var savedHash string

	suite.mockTokenRepo.On("SaveToken", ctx, mock.MatchedBy(func(t domain.APIToken) bool {
		savedHash = t.TokenHash
		return t.UserID == userID && t.Name == "batch runner" && t.ExpiresAt == nil
	})).Return(nil).Once()

	raw, token, err := suite.service.CreateToken(ctx, userID, "batch runner", nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(token)
	suite.NotEmpty(raw)
	// The plaintext never touches storage; only its hash does
	suite.NotEqual(raw, token.TokenHash)
	suite.Equal(utils.HashToken(raw), savedHash)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestCreateToken_WithExpiry() {
	ctx := context.Background()
	userID := uuid.NewString()
	expiresIn := 24 * time.Hour

	suite.mockTokenRepo.On("SaveToken", ctx, mock.MatchedBy(func(t domain.APIToken) bool {
		return t.ExpiresAt != nil && time.Until(*t.ExpiresAt) > 23*time.Hour
	})).Return(nil).Once()

	_, token, err := suite.service.CreateToken(ctx, userID, "short lived", &expiresIn)

	suite.Require().NoError(err)
	suite.Require().NotNil(token.ExpiresAt)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestCreateToken_MissingName() {
	ctx := context.Background()

	raw, token, err := suite.service.CreateToken(ctx, uuid.NewString(), "", nil)

	suite.Require().Error(err)
	suite.Empty(raw)
	suite.Nil(token)
	suite.mockTokenRepo.AssertNotCalled(suite.T(), "SaveToken", mock.Anything, mock.Anything)
}

// --- ListTokens Tests ---

func (suite *APITokenServiceTestSuite) TestListTokens_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	tokens := []domain.APIToken{{TokenID: uuid.NewString(), UserID: userID}}

	suite.mockTokenRepo.On("ListTokensByUser", ctx, userID).Return(tokens, nil).Once()

	result, err := suite.service.ListTokens(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(tokens, result)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestListTokens_EmptyReturnsNonNil() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockTokenRepo.On("ListTokensByUser", ctx, userID).Return(nil, nil).Once()

	result, err := suite.service.ListTokens(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Empty(result)
}

// --- RevokeToken Tests ---

func (suite *APITokenServiceTestSuite) TestRevokeToken_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	tokenID := uuid.NewString()

	suite.mockTokenRepo.On("RevokeToken", ctx, tokenID, userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.RevokeToken(ctx, userID, tokenID)

	suite.Require().NoError(err)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestRevokeToken_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	tokenID := uuid.NewString()

	suite.mockTokenRepo.On("RevokeToken", ctx, tokenID, userID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.RevokeToken(ctx, userID, tokenID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

// --- ValidateToken Tests ---

func (suite *APITokenServiceTestSuite) TestValidateToken_Success() {
	ctx := context.Background()
	raw := "raw-api-token"
	userID := uuid.NewString()
	token := &domain.APIToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		TokenHash: utils.HashToken(raw),
		CreatedAt: time.Now(),
	}
	user := &domain.User{UserID: userID, Username: "rsolow"}

	suite.mockTokenRepo.On("FindTokenByHash", ctx, utils.HashToken(raw)).Return(token, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockTokenRepo.On("TouchToken", ctx, token.TokenID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	result, err := suite.service.ValidateToken(ctx, raw)

	suite.Require().NoError(err)
	suite.Equal(user, result)
	suite.mockTokenRepo.AssertExpectations(suite.T())
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestValidateToken_UnknownToken() {
	ctx := context.Background()
	raw := "unknown-token"

	suite.mockTokenRepo.On("FindTokenByHash", ctx, utils.HashToken(raw)).
		Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ValidateToken(ctx, raw)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *APITokenServiceTestSuite) TestValidateToken_Expired() {
	ctx := context.Background()
	raw := "expired-token"
	expiredAt := time.Now().Add(-time.Hour)
	token := &domain.APIToken{
		TokenID:   uuid.NewString(),
		UserID:    uuid.NewString(),
		TokenHash: utils.HashToken(raw),
		ExpiresAt: &expiredAt,
	}

	suite.mockTokenRepo.On("FindTokenByHash", ctx, utils.HashToken(raw)).Return(token, nil).Once()

	result, err := suite.service.ValidateToken(ctx, raw)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *APITokenServiceTestSuite) TestValidateToken_Revoked() {
	ctx := context.Background()
	raw := "revoked-token"
	revokedAt := time.Now().Add(-time.Minute)
	token := &domain.APIToken{
		TokenID:   uuid.NewString(),
		UserID:    uuid.NewString(),
		TokenHash: utils.HashToken(raw),
		RevokedAt: &revokedAt,
	}

	suite.mockTokenRepo.On("FindTokenByHash", ctx, utils.HashToken(raw)).Return(token, nil).Once()

	result, err := suite.service.ValidateToken(ctx, raw)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *APITokenServiceTestSuite) TestValidateToken_DeletedUser() {
	ctx := context.Background()
	raw := "orphaned-token"
	userID := uuid.NewString()
	token := &domain.APIToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		TokenHash: utils.HashToken(raw),
	}

	suite.mockTokenRepo.On("FindTokenByHash", ctx, utils.HashToken(raw)).Return(token, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ValidateToken(ctx, raw)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *APITokenServiceTestSuite) TestValidateToken_TouchFailureIgnored() {
	ctx := context.Background()
	raw := "raw-api-token"
	userID := uuid.NewString()
	token := &domain.APIToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		TokenHash: utils.HashToken(raw),
	}
	user := &domain.User{UserID: userID}

	suite.mockTokenRepo.On("FindTokenByHash", ctx, utils.HashToken(raw)).Return(token, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockTokenRepo.On("TouchToken", ctx, token.TokenID, mock.AnythingOfType("time.Time")).
		Return(assert.AnError).Once()

	result, err := suite.service.ValidateToken(ctx, raw)

	suite.Require().NoError(err)
	suite.Equal(user, result)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestValidateToken_EmptyString() {
	ctx := context.Background()

	result, err := suite.service.ValidateToken(ctx, "")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockTokenRepo.AssertNotCalled(suite.T(), "FindTokenByHash", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestAPITokenService(t *testing.T) {
	suite.Run(t, new(APITokenServiceTestSuite))
}
