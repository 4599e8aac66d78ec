package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portsrepo "github.com/macrodyn/solow_model_app/internal/core/ports/repositories"
	"github.com/macrodyn/solow_model_app/internal/models"
	"github.com/macrodyn/solow_model_app/internal/utils/mapping"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

// newPgxAPITokenRepository creates a new instance of PgxAPITokenRepository
func newPgxAPITokenRepository(pool *pgxpool.Pool) portsrepo.APITokenRepositoryFacade {
	return &PgxAPITokenRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAPITokenRepository implements portsrepo.APITokenRepositoryFacade
var _ portsrepo.APITokenRepositoryFacade = (*PgxAPITokenRepository)(nil)

const apiTokenSelectColumns = `
	token_id, user_id, name, token_hash,
	created_at, expires_at, last_used_at, revoked_at
`

func scanAPIToken(row pgx.Row) (models.APIToken, error) {
	var m models.APIToken
	err := row.Scan(
		&m.TokenID,
		&m.UserID,
		&m.Name,
		&m.TokenHash,
		&m.CreatedAt,
		&m.ExpiresAt,
		&m.LastUsedAt,
		&m.RevokedAt,
	)
	return m, err
}

// SaveToken persists a new token.
func (r *PgxAPITokenRepository) SaveToken(ctx context.Context, token domain.APIToken) error {
	m := mapping.ToModelAPIToken(token)
	query := `
		INSERT INTO api_tokens (token_id, user_id, name, token_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TokenID,
		m.UserID,
		m.Name,
		m.TokenHash,
		m.CreatedAt,
		m.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save API token %s: %w", token.TokenID, err)
	}
	return nil
}

// FindTokenByHash retrieves a token by its SHA256 hash.
func (r *PgxAPITokenRepository) FindTokenByHash(ctx context.Context, tokenHash string) (*domain.APIToken, error) {
	query := `
		SELECT ` + apiTokenSelectColumns + `
		FROM api_tokens
		WHERE token_hash = $1;
	`
	m, err := scanAPIToken(r.Pool.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find API token by hash: %w", err)
	}

	token := mapping.ToDomainAPIToken(m)
	return &token, nil
}

// ListTokensByUser retrieves all tokens belonging to a user, newest first.
func (r *PgxAPITokenRepository) ListTokensByUser(ctx context.Context, userID string) ([]domain.APIToken, error) {
	query := `
		SELECT ` + apiTokenSelectColumns + `
		FROM api_tokens
		WHERE user_id = $1 AND revoked_at IS NULL
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query API tokens for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTokens, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.APIToken, error) {
		return scanAPIToken(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.APIToken{}, nil
		}
		return nil, fmt.Errorf("failed to scan API tokens: %w", err)
	}

	return mapping.ToDomainAPITokenSlice(modelTokens), nil
}

// RevokeToken marks a token as revoked. The user ID guards against revoking
// another user's token.
func (r *PgxAPITokenRepository) RevokeToken(ctx context.Context, tokenID string, userID string, now time.Time) error {
	query := `
		UPDATE api_tokens
		SET revoked_at = $1
		WHERE token_id = $2 AND user_id = $3 AND revoked_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, now, tokenID, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke API token %s: %w", tokenID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// TouchToken records when a token was last used.
func (r *PgxAPITokenRepository) TouchToken(ctx context.Context, tokenID string, now time.Time) error {
	query := `
		UPDATE api_tokens
		SET last_used_at = $1
		WHERE token_id = $2;
	`
	_, err := r.Pool.Exec(ctx, query, now, tokenID)
	if err != nil {
		return fmt.Errorf("failed to touch API token %s: %w", tokenID, err)
	}
	return nil
}
