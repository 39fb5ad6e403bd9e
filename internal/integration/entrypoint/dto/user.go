// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/equivet/backend/internal/application/usecase/user"
	"github.com/equivet/backend/internal/domain/entity"
)

// CreateUserRequest represents the request body for staff account creation.
type CreateUserRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Name     string   `json:"name" binding:"required,min=1,max=100"`
	Password string   `json:"password" binding:"required,min=8"`
	Roles    []string `json:"roles" binding:"required,min=1"`
}

// UpdateUserRequest represents the request body for staff account updates.
type UpdateUserRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Roles    []string `json:"roles,omitempty"`
	IsActive *bool    `json:"is_active,omitempty"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse represents the response for listing users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Roles:     roles,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponseFromOutput converts a UserOutput to a UserResponse DTO.
func ToUserResponseFromOutput(output *user.UserOutput) UserResponse {
	roles := make([]string, len(output.Roles))
	for i, r := range output.Roles {
		roles[i] = string(r)
	}
	return UserResponse{
		ID:        output.ID.String(),
		Email:     output.Email,
		Name:      output.Name,
		Roles:     roles,
		IsActive:  output.IsActive,
		CreatedAt: output.CreatedAt,
	}
}

// ToUserListResponse converts a list of UserOutput to UserListResponse.
func ToUserListResponse(outputs []*user.UserOutput) UserListResponse {
	users := make([]UserResponse, len(outputs))
	for i, output := range outputs {
		users[i] = ToUserResponseFromOutput(output)
	}
	return UserListResponse{Users: users}
}
