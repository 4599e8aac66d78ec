package dto

import (
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a new user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"` // Only name is updatable for now
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID        string    `json:"userID"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	AuthProvider  string    `json:"authProvider"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Username:      user.Username,
		Name:          user.Name,
		Email:         user.Email,
		AuthProvider:  string(user.AuthProvider),
		CreatedAt:     user.CreatedAt,
		LastUpdatedAt: user.LastUpdatedAt,
	}
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{Users: userResponses}
}
