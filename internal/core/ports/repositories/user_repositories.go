package repositories

import (
	"context"
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID. Soft-deleted users are excluded.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByProviderID retrieves a user by OAuth provider and the
	// provider's user ID.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string, now time.Time) error

	// UpdateRefreshToken stores the refresh token hash and expiry for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// UserRepositoryWithTx extends UserRepositoryFacade with transaction capabilities
type UserRepositoryWithTx interface {
	UserRepositoryFacade
	TransactionManager
}
