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
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/macrodyn/solow_model_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string, now time.Time) error {
	args := m.Called(ctx, userID, deletedByUserID, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	password := "password123"
	req := dto.CreateUserRequest{
		Username: "rsolow",
		Password: password,
		Name:     "Robert Solow",
		Email:    "rsolow@example.edu",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username && user.Name == req.Name &&
			user.PasswordHash != "" && user.PasswordHash != password &&
			user.AuthProvider == domain.ProviderLocal
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Username, user.Username)
	suite.NotEqual(password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(password, user.PasswordHash))
	// Self-registration audits against the new user's own ID
	suite.Equal(user.UserID, user.CreatedBy)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	req := dto.CreateUserRequest{Username: "rsolow", Password: "password123", Name: "Robert Solow"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedUser := &domain.User{UserID: userID, Name: "Found User"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ListUsers Tests ---

func (suite *UserServiceTestSuite) TestListUsers_Success() {
	ctx := context.Background()
	limit, offset := 10, 0
	expectedUsers := []domain.User{{UserID: uuid.NewString()}, {UserID: uuid.NewString()}}

	suite.mockUserRepo.On("ListUsers", ctx, limit, offset).Return(expectedUsers, nil).Once()

	users, err := suite.service.ListUsers(ctx, limit, offset)

	suite.Require().NoError(err)
	suite.Equal(expectedUsers, users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_EmptyReturnsNonNil() {
	ctx := context.Background()

	suite.mockUserRepo.On("ListUsers", ctx, 5, 10).Return(nil, nil).Once()

	users, err := suite.service.ListUsers(ctx, 5, 10)

	suite.Require().NoError(err)
	suite.Require().NotNil(users)
	suite.Empty(users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	newName := "Updated Name"
	existing := &domain.User{UserID: userID, Name: "Old Name"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == userID && user.Name == newName && user.LastUpdatedBy == userID
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Name: &newName}, userID)

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_OtherUserForbidden() {
	ctx := context.Background()
	newName := "Sneaky"

	user, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{Name: &newName}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_OtherUserForbidden() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	username := "rsolow"
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	storedUser := &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(storedUser, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, username, password)

	suite.Require().NoError(err)
	suite.Equal(storedUser.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	username := "rsolow"
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	storedUser := &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(storedUser, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, username, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()
	username := "ghost"

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, username, "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown user and bad password are indistinguishable to the caller
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthUserRejected() {
	ctx := context.Background()
	username := "google-user"
	storedUser := &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		AuthProvider: domain.ProviderGoogle,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, username).Return(storedUser, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, username, "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetOrCreateUserByProvider Tests ---

func (suite *UserServiceTestSuite) TestGetOrCreateUserByProvider_ExistingUser() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "google-123", Email: "rsolow@example.edu", Name: "Robert Solow"}
	existing := &domain.User{UserID: uuid.NewString(), ProviderID: info.ID, AuthProvider: domain.ProviderGoogle}

	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, info.ID).
		Return(existing, nil).Once()

	user, err := suite.service.GetOrCreateUserByProvider(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateUserByProvider_FirstSignIn() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "google-456", Email: "new@example.edu", Name: "New User"}

	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, info.ID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.ProviderID == info.ID && user.Email == info.Email &&
			user.AuthProvider == domain.ProviderGoogle && user.Username == info.Email
	})).Return(nil).Once()

	user, err := suite.service.GetOrCreateUserByProvider(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(info.Name, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Refresh Token Tests ---

func (suite *UserServiceTestSuite) TestUpdateRefreshToken_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	hash := utils.HashToken("some-refresh-token")
	expiry := time.Now().Add(168 * time.Hour)

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, userID, hash, expiry).Return(nil).Once()

	err := suite.service.UpdateRefreshToken(ctx, userID, hash, expiry)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("ClearRefreshToken", ctx, userID).Return(expectedErr).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
