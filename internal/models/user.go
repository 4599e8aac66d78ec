package models

import (
	"database/sql"
	"time"
)

// User represents a user row. Local users carry a password hash; OAuth users
// carry the provider and the provider's user ID instead.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash sql.NullString `db:"password_hash"`
	Name         string         `db:"name"`
	Email        sql.NullString `db:"email"`
	AuthProvider string         `db:"auth_provider"`
	ProviderID   sql.NullString `db:"provider_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
