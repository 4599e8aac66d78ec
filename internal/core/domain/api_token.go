package domain

import "time"

// APIToken is a named personal token for programmatic access (batch
// simulation scripts and the like). The raw token value is returned exactly
// once at creation; only its hash is stored.
type APIToken struct {
	TokenID    string     `json:"tokenID"` // Primary Key (UUID)
	UserID     string     `json:"userID"`
	Name       string     `json:"name"`
	TokenHash  string     `json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
}

// IsUsable reports whether the token can still authenticate requests.
func (t APIToken) IsUsable(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	if t.ExpiresAt != nil && now.After(*t.ExpiresAt) {
		return false
	}
	return true
}
