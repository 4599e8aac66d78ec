package models

import (
	"database/sql"
	"time"
)

// APIToken represents an api_tokens row. Only the SHA256 hash of the token
// is persisted; the raw token is shown to the user once at creation.
type APIToken struct {
	TokenID    string       `db:"token_id"`
	UserID     string       `db:"user_id"`
	Name       string       `db:"name"`
	TokenHash  string       `db:"token_hash"`
	CreatedAt  time.Time    `db:"created_at"`
	ExpiresAt  sql.NullTime `db:"expires_at"`
	LastUsedAt sql.NullTime `db:"last_used_at"`
	RevokedAt  sql.NullTime `db:"revoked_at"`
}
