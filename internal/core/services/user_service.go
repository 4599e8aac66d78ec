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
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/macrodyn/solow_model_app/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new local user with a bcrypt-hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalServerError("failed to process password")
	}

	now := time.Now()
	userID := uuid.NewString()

	user := domain.User{
		UserID:       userID,
		Username:     req.Username,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Email:        req.Email,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID, // Self-registration
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user",
			slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User created successfully",
		slog.String("user_id", user.UserID))
	return &user, nil
}

// CreateOAuthUser creates a user from an external identity provider profile.
func (s *userService) CreateOAuthUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	now := time.Now()
	userID := uuid.NewString()

	user := domain.User{
		UserID:       userID,
		Username:     info.Email,
		Name:         info.Name,
		Email:        info.Email,
		AuthProvider: domain.ProviderGoogle,
		ProviderID:   info.ID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save OAuth user",
			slog.String("provider_id", info.ID))
		return nil, err
	}

	s.LogInfo(ctx, "OAuth user created successfully",
		slog.String("user_id", user.UserID))
	return &user, nil
}

// GetOrCreateUserByProvider resolves an external identity to a local user,
// creating one on first sign-in.
func (s *userService) GetOrCreateUserByProvider(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, domain.ProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider ID")
		return nil, err
	}

	return s.CreateOAuthUser(ctx, info)
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by username")
		}
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateUser updates an existing user. Users may only update themselves.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	if userID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated successfully",
		slog.String("user_id", userID))
	return user, nil
}

// DeleteUser soft deletes a user. Users may only delete themselves.
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if userID != requestingUserID {
		return apperrors.ErrForbidden
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to mark user deleted",
			slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted",
		slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies a username/password pair. Authentication errors
// deliberately collapse to ErrUnauthorized so the caller can't distinguish
// unknown users from bad passwords.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to find user during authentication")
		return nil, err
	}

	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// UpdateRefreshToken stores the refresh token hash and expiry for a user.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		s.LogError(ctx, err, "Failed to update refresh token",
			slog.String("user_id", userID))
		return err
	}
	return nil
}

// ClearRefreshToken removes the stored refresh token for a user.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token",
			slog.String("user_id", userID))
		return err
	}
	return nil
}
