package dto

import "time"

// LoginRequest defines the credentials for a local login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token after a successful login. The
// refresh token travels in an HTTPOnly cookie, not in the body.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
