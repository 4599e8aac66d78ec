package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	AuthProvider AuthProvider `json:"authProvider"`
	ProviderID   string       `json:"-"` // External provider's user ID, empty for local users
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete marker

	// Refresh token state; only the hash is ever stored.
	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
}

// GoogleUserInfo mirrors the userinfo payload returned by Google's OAuth API.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
