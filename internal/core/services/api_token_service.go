package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/utils"
)

// apiTokenService implements the APITokenSvc interface. Tokens are stored as
// SHA256 hashes so validation is a single indexed lookup.
type apiTokenService struct {
	BaseService
	tokenRepo portsrepo.APITokenRepositoryFacade
	userSvc   portssvc.UserReaderSvc
}

// NewAPITokenService creates a new instance of apiTokenService
func NewAPITokenService(tokenRepo portsrepo.APITokenRepositoryFacade, userSvc portssvc.UserReaderSvc) portssvc.APITokenSvc {
	return &apiTokenService{
		tokenRepo: tokenRepo,
		userSvc:   userSvc,
	}
}

// Ensure apiTokenService implements the APITokenSvc interface
var _ portssvc.APITokenSvc = (*apiTokenService)(nil)

// CreateToken generates a new API token for the user.
// Returns the plaintext token (only shown once) and the token details.
func (s *apiTokenService) CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	if userID == "" {
		return "", nil, errors.New("user ID is required")
	}
	if name == "" {
		return "", nil, errors.New("token name is required")
	}

	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	var expiresAt *time.Time
	if expiresIn != nil {
		expiry := time.Now().Add(*expiresIn)
		expiresAt = &expiry
	}

	apiToken := domain.APIToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		Name:      name,
		TokenHash: utils.HashToken(rawToken),
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}

	if err := s.tokenRepo.SaveToken(ctx, apiToken); err != nil {
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	// The plaintext token is only available here, at creation.
	return rawToken, &apiToken, nil
}

// ListTokens returns all API tokens for a user
func (s *apiTokenService) ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	tokens, err := s.tokenRepo.ListTokensByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	if tokens == nil {
		return []domain.APIToken{}, nil
	}
	return tokens, nil
}

// RevokeToken revokes a specific API token for a user
func (s *apiTokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	if userID == "" || tokenID == "" {
		return errors.New("user ID and token ID are required")
	}

	if err := s.tokenRepo.RevokeToken(ctx, tokenID, userID, time.Now()); err != nil {
		return err
	}
	return nil
}

// ValidateToken checks if a token is valid and returns the associated user.
// Updates the last_used_at timestamp if the token is valid.
func (s *apiTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	if tokenString == "" {
		return nil, apperrors.ErrUnauthorized
	}

	token, err := s.tokenRepo.FindTokenByHash(ctx, utils.HashToken(tokenString))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !token.IsUsable(time.Now()) {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userSvc.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	// Best effort; a failed touch must not block authentication.
	if err := s.tokenRepo.TouchToken(ctx, token.TokenID, time.Now()); err != nil {
		s.LogDebug(ctx, "Failed to update token last_used_at")
	}

	return user, nil
}
