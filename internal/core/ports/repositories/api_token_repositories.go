package repositories

import (
	"context"
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// APITokenReader defines read operations for API tokens
type APITokenReader interface {
	// FindTokenByHash retrieves a token by its SHA256 hash.
	FindTokenByHash(ctx context.Context, tokenHash string) (*domain.APIToken, error)

	// ListTokensByUser retrieves all tokens belonging to a user.
	ListTokensByUser(ctx context.Context, userID string) ([]domain.APIToken, error)
}

// APITokenWriter defines write operations for API tokens
type APITokenWriter interface {
	// SaveToken persists a new token.
	SaveToken(ctx context.Context, token domain.APIToken) error

	// RevokeToken marks a token as revoked.
	RevokeToken(ctx context.Context, tokenID string, userID string, now time.Time) error

	// TouchToken records when a token was last used.
	TouchToken(ctx context.Context, tokenID string, now time.Time) error
}

// APITokenRepositoryFacade combines all API-token repository interfaces
type APITokenRepositoryFacade interface {
	APITokenReader
	APITokenWriter
}
